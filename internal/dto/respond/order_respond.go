package respond

// OrderRespond is one order row; Status is the wire name.
type OrderRespond struct {
	Uuid          string `json:"uuid"`
	UserId        string `json:"user_id"`
	UserNickname  string `json:"user_nickname"`
	UserEmail     string `json:"user_email"`
	Platform      string `json:"platform"`
	ServiceUuid   string `json:"service_uuid"`
	ServiceName   string `json:"service_name"`
	Quantity      int    `json:"quantity"`
	UnitPricePerK int64  `json:"unit_price_per_k"`
	TotalPrice    int64  `json:"total_price"`
	TargetUrl     string `json:"target_url"`
	PaymentMethod string `json:"payment_method"`
	ProofKey      string `json:"proof_key,omitempty"`
	Status        string `json:"status"`
	PlacedAt      string `json:"placed_at"`
}

// OrderListWrapper pages the admin order listing.
type OrderListWrapper struct {
	Orders []OrderRespond `json:"orders"`
	Total  int64          `json:"total"`
}

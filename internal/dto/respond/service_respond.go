package respond

// ServiceRespond is one catalog entry.
type ServiceRespond struct {
	Uuid        string `json:"uuid"`
	Platform    string `json:"platform"`
	Name        string `json:"name"`
	PricePerK   int64  `json:"price_per_k"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
	Active      bool   `json:"active"`
}

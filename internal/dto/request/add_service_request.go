package request

// AddServiceRequest creates a catalog entry (admin).
type AddServiceRequest struct {
	Platform    string `json:"platform" binding:"required,max=30"`
	Name        string `json:"name" binding:"required,max=60"`
	PricePerK   int64  `json:"price_per_k" binding:"required,gt=0"`
	MinQuantity int    `json:"min_quantity" binding:"omitempty,gt=0"`
	MaxQuantity int    `json:"max_quantity" binding:"omitempty,gt=0"`
}

package request

// PlaceOrderRequest places an order. It arrives as multipart form data
// with the proof-of-payment image in the "proof" file field.
type PlaceOrderRequest struct {
	ServiceUuid   string `form:"service_uuid" binding:"required"`
	Quantity      int    `form:"quantity" binding:"required,gt=0"`
	TargetUrl     string `form:"target_url" binding:"required,url"`
	PaymentMethod string `form:"payment_method" binding:"required,max=30"`
}

// ProofUpload is the in-memory proof-of-payment image extracted from
// the multipart request.
type ProofUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

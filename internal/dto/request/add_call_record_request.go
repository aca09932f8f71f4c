package request

// AddCallRecordRequest appends a call log entry.
type AddCallRecordRequest struct {
	CalleeId        string `json:"callee_id" binding:"required"`
	Kind            int8   `json:"kind" binding:"gte=0,lte=1"`
	Outcome         int8   `json:"outcome" binding:"gte=0,lte=2"`
	StartedAt       string `json:"started_at" binding:"required"` // RFC 3339
	DurationSeconds int    `json:"duration_seconds" binding:"gte=0"`
}

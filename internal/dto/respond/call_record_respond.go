package respond

// CallRecordRespond is one call-log entry.
type CallRecordRespond struct {
	Id              uint   `json:"id"`
	CallerId        string `json:"caller_id"`
	CalleeId        string `json:"callee_id"`
	Kind            int8   `json:"kind"`
	Outcome         int8   `json:"outcome"`
	StartedAt       string `json:"started_at"`
	DurationSeconds int    `json:"duration_seconds"`
}

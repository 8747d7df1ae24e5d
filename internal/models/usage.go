package models

// UsageEvent is published for every applied credit deduction.
type UsageEvent struct {
	EventID   string `json:"event_id"`
	Email     string `json:"email"`
	Operation string `json:"operation"` // "admit" or "conversion"
	Timestamp int64  `json:"timestamp"`
}

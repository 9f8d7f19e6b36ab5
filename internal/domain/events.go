package domain

import "time"

// AvailabilityEvent is published to the broker after every overlay mutation.
// Publishing is best-effort; the overlay itself never depends on it.
type AvailabilityEvent struct {
	EventType string    `json:"event_type"`
	ItemID    string    `json:"item_id"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason"`
	Mobile    string    `json:"mobile"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventItemAvailabilityChanged = "item.availability_changed"
	EventAvailabilityReset       = "availability.reset"
)

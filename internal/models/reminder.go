package models

import "time"

// Reminder is a recurring user-defined prompt.
type Reminder struct {
	ID      string
	OwnerID string
	Message string
	// Repeat is "daily" or "weekly".
	Repeat string
	// Clock is the local time of day in HH:MM (24h).
	Clock string
	// Weekday is used by weekly reminders only.
	Weekday   time.Weekday
	CreatedAt time.Time
}

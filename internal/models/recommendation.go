package models

import "time"

// Recommendation is an advisory derived from a user's recent records.
type Recommendation struct {
	ID      string
	OwnerID string
	// GeneratedOn is a calendar date; the time part is always midnight.
	GeneratedOn time.Time
	Text        string
	Source      string
}

// Package models defines the data shapes shared by the server, the client
// and the recommendation engine.
package models

import "time"

// HealthRecord is one mood/vitals entry logged by a user.
type HealthRecord struct {
	// ID is assigned by the store on insert.
	ID string
	// OwnerID identifies the authenticated user. Immutable once set.
	OwnerID string
	// Timestamp is the point in time the entry describes.
	Timestamp time.Time
	// Mood is the free mood label as typed by the user.
	Mood string
	// BloodPressure is a "systolic/diastolic" pair kept as free text.
	BloodPressure string
	// HeartRate in beats per minute. Zero means no reading.
	HeartRate int
	// Weight is nil when the user did not record it.
	Weight *float64
	// Symptoms keeps the order the user entered them in.
	Symptoms []string
	Notes    string
}

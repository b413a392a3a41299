package types

import "time"

// Check-in moments during the day.
const (
	CheckInMorning = "morning"
	CheckInMidday  = "midday"
	CheckInEvening = "evening"
)

// DailyCheckIn records mood at a moment of a given day. By convention at
// most one check-in exists per (date, type) pair; the store does not enforce
// this structurally, callers use the upsert helper to keep the convention.
type DailyCheckIn struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"` // ISO date-only
	Type       string    `json:"type"`
	Mood       string    `json:"mood"`
	Reflection string    `json:"reflection,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

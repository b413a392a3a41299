package types

import "time"

// Habit frequencies.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Habit tracking types. Checkbox habits record only completion; numeric and
// time habits additionally record a value per completed date.
const (
	TrackingCheckbox = "checkbox"
	TrackingNumeric  = "numeric"
	TrackingTime     = "time"
)

// Habit is a recurring action tracked by date. CompletedDates holds ISO
// date-only strings, unique and unordered. TrackingData maps completed dates
// to recorded values for numeric and time tracking. GoalID is a strong
// reference (deleting the goal deletes the habit); AspirationID and LifeArea
// are weak, inherited from the goal's life area at creation time.
type Habit struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Frequency      string             `json:"frequency"`
	WeekDays       []int              `json:"weekDays,omitempty"` // 0-6, weekly only
	TrackingType   string             `json:"trackingType,omitempty"`
	TargetValue    float64            `json:"targetValue,omitempty"`
	Unit           string             `json:"unit,omitempty"`
	CompletedDates []string           `json:"completedDates,omitempty"`
	TrackingData   map[string]float64 `json:"trackingData,omitempty"`
	GoalID         string             `json:"goalId,omitempty"`
	AspirationID   string             `json:"aspirationId,omitempty"`
	LifeArea       string             `json:"lifeArea,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// CompletedOn reports whether the habit was marked done on the given ISO
// date-only string.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// ValueOn returns the tracked value recorded for the given date, if any.
func (h *Habit) ValueOn(date string) (float64, bool) {
	v, ok := h.TrackingData[date]
	return v, ok
}

// DueOn reports whether the habit is scheduled for the given weekday: daily
// habits always are, weekly habits only on their configured weekdays.
func (h *Habit) DueOn(weekday time.Weekday) bool {
	if h.Frequency == FrequencyDaily {
		return true
	}
	if h.Frequency != FrequencyWeekly {
		return false
	}
	for _, d := range h.WeekDays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

package types

import "time"

// ReflectionInsights is structured output attached to a journal entry after
// an external analysis pass. The store treats it as opaque: it persists
// whatever the calling layer hands it.
type ReflectionInsights struct {
	LifeAreas     []string `json:"lifeAreas,omitempty"`
	GoalAlignment []string `json:"goalAlignment,omitempty"`
	Emotions      []string `json:"emotions,omitempty"`
	Wins          []string `json:"wins,omitempty"`
	Energizers    []string `json:"energizers,omitempty"`
	Drainers      []string `json:"drainers,omitempty"`
}

// JournalEntry is a free-form journal record. LinkedGoalID is a weak
// reference to a goal.
type JournalEntry struct {
	ID                 string              `json:"id"`
	Content            string              `json:"content"`
	Mood               string              `json:"mood,omitempty"`
	Tags               []string            `json:"tags,omitempty"`
	LinkedGoalID       string              `json:"linkedGoalId,omitempty"`
	ReflectionInsights *ReflectionInsights `json:"reflectionInsights,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
}

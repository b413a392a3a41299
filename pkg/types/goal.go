package types

import "time"

// Goal statuses. A missing status on persisted data is defaulted to active
// by the load normalizer.
const (
	GoalStatusActive    = "active"
	GoalStatusArchived  = "archived"
	GoalStatusCompleted = "completed"
)

// validGoalStatuses is the set of recognized goal status values.
var validGoalStatuses = map[string]bool{
	GoalStatusActive:    true,
	GoalStatusArchived:  true,
	GoalStatusCompleted: true,
}

// IsValidGoalStatus reports whether s is a recognized goal status.
func IsValidGoalStatus(s string) bool {
	return validGoalStatuses[s]
}

// Goal represents a long-running objective tied to a life area.
//
// GoalTaskIDs is an ordered list of owned tasks (strong references; deleting
// the goal deletes them). HabitIDs records membership of habits that support
// the goal (weak references). IsFocusGoal is a derived flag: it is rewritten
// by the focus resolution pass after every goal-affecting mutation and must
// never be assigned anywhere else.
type Goal struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Why             string     `json:"why,omitempty"`
	SuccessCriteria string     `json:"successCriteria,omitempty"`
	TargetDate      string     `json:"targetDate,omitempty"` // ISO date-only
	LifeArea        string     `json:"lifeArea,omitempty"`
	AspirationID    string     `json:"aspirationId,omitempty"`
	AspirationIDs   []string   `json:"aspirationIds,omitempty"`
	GoalTaskIDs     []string   `json:"goalTaskIds,omitempty"`
	HabitIDs        []string   `json:"habitIds,omitempty"`
	Status          string     `json:"status,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	IsFocusGoal     bool       `json:"isFocusGoal,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// FocusEligible reports whether the goal can hold focus: not archived, not
// completed, and no completion timestamp set.
func (g *Goal) FocusEligible() bool {
	return g.Status != GoalStatusArchived &&
		g.Status != GoalStatusCompleted &&
		g.CompletedAt == nil
}

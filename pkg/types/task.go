package types

import "time"

// GoalTask is a unit of work owned by a single goal. GoalID is a strong
// reference: deleting the goal deletes its tasks. CompletedAt is set and
// cleared in lockstep with Completed.
type GoalTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	GoalID      string     `json:"goalId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"` // ISO date-only
	CreatedAt   time.Time  `json:"createdAt"`
}

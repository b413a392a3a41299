package types

import "time"

// Todo groups. Todos are bucketed into a "now" list and a "later" list.
const (
	TodoGroupNow   = "now"
	TodoGroupLater = "later"
)

// Todo is a standalone to-do item, independent of goals. Insertion order of
// the todos collection is user-visible and replaceable wholesale via reorder.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Group       string     `json:"group,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

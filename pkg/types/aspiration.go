package types

import "time"

// Aspiration describes what the user wants from one life area. By convention
// there is one aspiration per life area; the store keeps this permissive and
// offers an upsert helper. Goals and habits reference aspirations weakly:
// deleting an aspiration leaves those references unresolved.
type Aspiration struct {
	ID          string    `json:"id"`
	LifeArea    string    `json:"lifeArea"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Vision is the user's single long-term vision statement.
type Vision struct {
	Text      string    `json:"text"`
	ImageURLs []string  `json:"imageUrls,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

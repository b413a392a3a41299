package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// JournalParams holds the fields for creating a journal entry.
type JournalParams struct {
	Content      string
	Mood         string
	Tags         []string
	LinkedGoalID string
}

// JournalUpdate holds a partial-field merge for a journal entry.
// ReflectionInsights is written as handed in; the store defines no schema
// for it beyond the field lists.
type JournalUpdate struct {
	Content            *string
	Mood               *string
	Tags               *[]string
	LinkedGoalID       *string
	ReflectionInsights *types.ReflectionInsights
}

// AddJournalEntry creates a journal entry and awards the journaling XP.
// Entries are never un-created for XP purposes.
func (s *Store) AddJournalEntry(p JournalParams) types.JournalEntry {
	s.mu.Lock()
	entry := types.JournalEntry{
		ID:           s.newID(),
		Content:      p.Content,
		Mood:         p.Mood,
		Tags:         p.Tags,
		LinkedGoalID: p.LinkedGoalID,
		CreatedAt:    s.now(),
	}
	s.state.JournalEntries = append(s.state.JournalEntries, entry)
	s.state.Progress = applyXP(s.state.Progress, XPJournalEntry)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Journal entry saved")
	return entry
}

// UpdateJournalEntry merges the given fields into the entry. Returns false
// if the entry does not exist.
func (s *Store) UpdateJournalEntry(id string, u JournalUpdate) (types.JournalEntry, bool) {
	s.mu.Lock()
	entry, ok := s.state.JournalEntryByID(id)
	if !ok {
		s.mu.Unlock()
		return types.JournalEntry{}, false
	}
	if u.Content != nil {
		entry.Content = *u.Content
	}
	if u.Mood != nil {
		entry.Mood = *u.Mood
	}
	if u.Tags != nil {
		entry.Tags = *u.Tags
	}
	if u.LinkedGoalID != nil {
		entry.LinkedGoalID = *u.LinkedGoalID
	}
	if u.ReflectionInsights != nil {
		entry.ReflectionInsights = u.ReflectionInsights
	}
	updated := *entry
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "Journal entry updated")
	return updated, true
}

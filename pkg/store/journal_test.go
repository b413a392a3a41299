package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func TestAddJournalEntry(t *testing.T) {
	s, _, _ := newTestStore(t)

	entry := s.AddJournalEntry(JournalParams{
		Content:      "Long run done",
		Mood:         "great",
		Tags:         []string{"training"},
		LinkedGoalID: "g1",
	})

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, testDay, entry.CreatedAt)
	assert.Equal(t, "g1", entry.LinkedGoalID)
	assert.Len(t, s.State().JournalEntries, 1)
}

func TestUpdateJournalEntry(t *testing.T) {
	s, _, _ := newTestStore(t)
	entry := s.AddJournalEntry(JournalParams{Content: "Draft"})

	content := "Final"
	insights := &types.ReflectionInsights{
		Wins:     []string{"Finished the draft"},
		Drainers: []string{"Kept getting distracted"},
	}
	got, ok := s.UpdateJournalEntry(entry.ID, JournalUpdate{
		Content:            &content,
		ReflectionInsights: insights,
	})
	require.True(t, ok)
	assert.Equal(t, "Final", got.Content)
	require.NotNil(t, got.ReflectionInsights)
	assert.Equal(t, []string{"Finished the draft"}, got.ReflectionInsights.Wins)

	// XP is awarded on creation only.
	assert.Equal(t, XPJournalEntry, s.Progress().XP)
}

func TestUpdateJournalEntryUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)
	content := "x"
	_, ok := s.UpdateJournalEntry("ghost", JournalUpdate{Content: &content})
	assert.False(t, ok)
}

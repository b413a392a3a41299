package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

func TestDecodeSnapshotLegacyTasks(t *testing.T) {
	raw := []byte(`{
		"tasks": [{"id": "t1", "title": "Old style todo"}]
	}`)

	state, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, state.Todos, 1)
	assert.Equal(t, "t1", state.Todos[0].ID)
}

func TestDecodeSnapshotTodosWinOverLegacy(t *testing.T) {
	raw := []byte(`{
		"todos": [{"id": "new", "title": "Current"}],
		"tasks": [{"id": "old", "title": "Legacy"}]
	}`)

	state, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, state.Todos, 1)
	assert.Equal(t, "new", state.Todos[0].ID)
}

func TestDecodeSnapshotDefaults(t *testing.T) {
	state, err := decodeSnapshot([]byte(`{}`))
	require.NoError(t, err)

	assert.NotNil(t, state.Goals)
	assert.NotNil(t, state.GoalTasks)
	assert.NotNil(t, state.Habits)
	assert.NotNil(t, state.Todos)
	assert.NotNil(t, state.JournalEntries)
	assert.NotNil(t, state.DailyCheckIns)
	assert.NotNil(t, state.Aspirations)
	assert.Equal(t, types.UserProgress{XP: 0, Level: 1}, state.Progress)
	assert.Equal(t, types.FocusModeAuto, state.FocusMode)
}

func TestDecodeSnapshotGoalStatusDefault(t *testing.T) {
	raw := []byte(`{
		"goals": [
			{"id": "g1", "title": "No status"},
			{"id": "g2", "title": "Archived", "status": "archived"}
		]
	}`)

	state, err := decodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, types.GoalStatusActive, state.Goals[0].Status)
	assert.Equal(t, types.GoalStatusArchived, state.Goals[1].Status)
}

func TestDecodeSnapshotFocusInference(t *testing.T) {
	t.Run("focus id inferred from flagged goal", func(t *testing.T) {
		raw := []byte(`{
			"goals": [
				{"id": "g1", "title": "A"},
				{"id": "g2", "title": "B", "isFocusGoal": true}
			]
		}`)
		state, err := decodeSnapshot(raw)
		require.NoError(t, err)
		assert.Equal(t, "g2", state.FocusGoalID)
		assert.Equal(t, types.FocusModeManual, state.FocusMode)
	})

	t.Run("explicit fields untouched", func(t *testing.T) {
		raw := []byte(`{
			"focusGoalId": "g9",
			"focusGoalSelectionMode": "auto"
		}`)
		state, err := decodeSnapshot(raw)
		require.NoError(t, err)
		assert.Equal(t, "g9", state.FocusGoalID)
		assert.Equal(t, types.FocusModeAuto, state.FocusMode)
	})
}

func TestDecodeSnapshotInvalid(t *testing.T) {
	_, err := decodeSnapshot([]byte(`{broken`))
	assert.Error(t, err)
}

func TestDecodeSnapshotProgressPreserved(t *testing.T) {
	raw := []byte(`{"userProgress": {"xp": 42, "level": 3}}`)

	state, err := decodeSnapshot(raw)
	require.NoError(t, err)
	assert.Equal(t, types.UserProgress{XP: 42, Level: 3}, state.Progress)
}

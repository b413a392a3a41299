package store

import (
	"encoding/json"

	"github.com/mesh-intelligence/daybook/pkg/types"
)

// persistedState is the on-disk shape of a snapshot. It carries the legacy
// "tasks" collection name used by old snapshots predating the todos rename.
type persistedState struct {
	types.AppState
	LegacyTasks []types.Todo `json:"tasks"`
}

// decodeSnapshot unmarshals raw snapshot bytes and applies the named
// migrations in order. There is no schema version field; evolution is
// handled entirely by defensive defaulting here.
func decodeSnapshot(raw []byte) (types.AppState, error) {
	var p persistedState
	if err := json.Unmarshal(raw, &p); err != nil {
		return types.AppState{}, err
	}
	state := p.AppState
	migrateLegacyTodos(&state, p.LegacyTasks)
	migrateGoalStatus(&state)
	migrateCollections(&state)
	migrateProgress(&state)
	migrateFocusFields(&state)
	return state, nil
}

// migrateLegacyTodos substitutes a legacy "tasks" collection for a missing
// "todos" collection.
func migrateLegacyTodos(state *types.AppState, legacy []types.Todo) {
	if state.Todos == nil && legacy != nil {
		state.Todos = legacy
	}
}

// migrateGoalStatus defaults a missing goal status to active. Snapshots
// written before the status field existed carry goals with no status at all.
func migrateGoalStatus(state *types.AppState) {
	for i := range state.Goals {
		if state.Goals[i].Status == "" {
			state.Goals[i].Status = types.GoalStatusActive
		}
	}
}

// migrateCollections replaces missing optional collections with empty ones
// so consumers never see a nil slice.
func migrateCollections(state *types.AppState) {
	if state.Goals == nil {
		state.Goals = []types.Goal{}
	}
	if state.GoalTasks == nil {
		state.GoalTasks = []types.GoalTask{}
	}
	if state.Habits == nil {
		state.Habits = []types.Habit{}
	}
	if state.Todos == nil {
		state.Todos = []types.Todo{}
	}
	if state.JournalEntries == nil {
		state.JournalEntries = []types.JournalEntry{}
	}
	if state.DailyCheckIns == nil {
		state.DailyCheckIns = []types.DailyCheckIn{}
	}
	if state.Aspirations == nil {
		state.Aspirations = []types.Aspiration{}
	}
}

// migrateProgress defaults missing gamification state to level one with no XP.
func migrateProgress(state *types.AppState) {
	if state.Progress.Level < 1 {
		state.Progress = types.UserProgress{XP: 0, Level: 1}
	}
}

// migrateFocusFields reconciles the persisted focus bookkeeping: a missing
// focus goal ID is inferred from any goal still flagged as focus, and a
// missing selection mode is inferred as manual when a focus ID exists.
func migrateFocusFields(state *types.AppState) {
	if state.FocusGoalID == "" {
		for i := range state.Goals {
			if state.Goals[i].IsFocusGoal {
				state.FocusGoalID = state.Goals[i].ID
				break
			}
		}
	}
	if state.FocusMode == "" {
		if state.FocusGoalID != "" {
			state.FocusMode = types.FocusModeManual
		} else {
			state.FocusMode = types.FocusModeAuto
		}
	}
}

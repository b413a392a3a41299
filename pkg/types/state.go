package types

// Focus selection modes. In auto mode the store picks the eligible goal with
// the earliest creation time; in manual mode a user-pinned goal holds focus
// until it becomes ineligible, at which point the mode degrades back to auto.
const (
	FocusModeAuto   = "auto"
	FocusModeManual = "manual"
)

// AppState is the aggregate root: every user-visible collection plus the
// focus-goal bookkeeping. It is persisted as a single JSON document and
// replaced wholesale on every mutation.
type AppState struct {
	Goals          []Goal         `json:"goals"`
	GoalTasks      []GoalTask     `json:"goalTasks"`
	Habits         []Habit        `json:"habits"`
	Todos          []Todo         `json:"todos"`
	JournalEntries []JournalEntry `json:"journalEntries"`
	DailyCheckIns  []DailyCheckIn `json:"dailyCheckIns"`
	Aspirations    []Aspiration   `json:"aspirations"`
	Vision         *Vision        `json:"vision,omitempty"`
	Profile        *UserProfile   `json:"profile,omitempty"`
	Progress       UserProgress   `json:"userProgress"`
	FocusGoalID    string         `json:"focusGoalId,omitempty"`
	FocusMode      string         `json:"focusGoalSelectionMode,omitempty"`
}

// DefaultState returns the fresh state used when no snapshot exists or a
// snapshot cannot be decoded.
func DefaultState() AppState {
	return AppState{
		Goals:          []Goal{},
		GoalTasks:      []GoalTask{},
		Habits:         []Habit{},
		Todos:          []Todo{},
		JournalEntries: []JournalEntry{},
		DailyCheckIns:  []DailyCheckIn{},
		Aspirations:    []Aspiration{},
		Progress:       UserProgress{XP: 0, Level: 1},
		FocusMode:      FocusModeAuto,
	}
}

// GoalByID returns the goal with the given ID, or false when the reference
// does not resolve.
func (s *AppState) GoalByID(id string) (*Goal, bool) {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i], true
		}
	}
	return nil, false
}

// GoalTaskByID returns the goal task with the given ID.
func (s *AppState) GoalTaskByID(id string) (*GoalTask, bool) {
	for i := range s.GoalTasks {
		if s.GoalTasks[i].ID == id {
			return &s.GoalTasks[i], true
		}
	}
	return nil, false
}

// HabitByID returns the habit with the given ID.
func (s *AppState) HabitByID(id string) (*Habit, bool) {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i], true
		}
	}
	return nil, false
}

// TodoByID returns the todo with the given ID.
func (s *AppState) TodoByID(id string) (*Todo, bool) {
	for i := range s.Todos {
		if s.Todos[i].ID == id {
			return &s.Todos[i], true
		}
	}
	return nil, false
}

// JournalEntryByID returns the journal entry with the given ID.
func (s *AppState) JournalEntryByID(id string) (*JournalEntry, bool) {
	for i := range s.JournalEntries {
		if s.JournalEntries[i].ID == id {
			return &s.JournalEntries[i], true
		}
	}
	return nil, false
}

// CheckInByID returns the daily check-in with the given ID.
func (s *AppState) CheckInByID(id string) (*DailyCheckIn, bool) {
	for i := range s.DailyCheckIns {
		if s.DailyCheckIns[i].ID == id {
			return &s.DailyCheckIns[i], true
		}
	}
	return nil, false
}

// AspirationByID returns the aspiration with the given ID.
func (s *AppState) AspirationByID(id string) (*Aspiration, bool) {
	for i := range s.Aspirations {
		if s.Aspirations[i].ID == id {
			return &s.Aspirations[i], true
		}
	}
	return nil, false
}

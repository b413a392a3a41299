package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's focus goal, habits, tasks, and progress",
	RunE:  runStatus,
}

// statusView is the JSON shape of the status command output.
type statusView struct {
	FocusGoal   string              `json:"focusGoal,omitempty"`
	FocusGoalID string              `json:"focusGoalId,omitempty"`
	Level       int                 `json:"level"`
	XP          int                 `json:"xp"`
	XPToNext    int                 `json:"xpToNext"`
	Habits      []store.HabitStatus `json:"habits"`
	Tasks       []types.GoalTask    `json:"tasks"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	state := st.State()
	progress := st.Progress()
	habits := st.TodaysHabits()
	tasks := st.TodaysGoalTasks()

	if flagJSON {
		view := statusView{
			FocusGoalID: state.FocusGoalID,
			Level:       progress.Level,
			XP:          progress.XP,
			XPToNext:    store.CostToLevel(progress.Level),
			Habits:      habits,
			Tasks:       tasks,
		}
		if goal, ok := state.GoalByID(state.FocusGoalID); ok {
			view.FocusGoal = goal.Title
		}
		return printJSON(view)
	}

	if goal, ok := state.GoalByID(state.FocusGoalID); ok {
		fmt.Printf("Focus goal: %s (%.0f%%)\n", goal.Title, st.GoalProgress(goal.ID))
	} else {
		fmt.Println("Focus goal: none")
	}
	fmt.Printf("Level %d, %d/%d XP\n", progress.Level, progress.XP, store.CostToLevel(progress.Level))

	fmt.Printf("\nHabits today (%d):\n", len(habits))
	for _, h := range habits {
		streak := st.HabitStreak(h.ID)
		fmt.Printf("  %s %s (streak %d)\n", checkbox(h.CompletedToday), h.Title, streak)
	}

	fmt.Printf("\nTasks today (%d):\n", len(tasks))
	for _, t := range tasks {
		due := ""
		if t.DueDate != "" {
			due = " due " + t.DueDate
		}
		fmt.Printf("  %s %s%s\n", checkbox(t.Completed), t.Title, due)
	}
	return nil
}

// Goal commands: add, list, done, delete, focus.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
	"github.com/mesh-intelligence/daybook/pkg/types"
)

var (
	goalTitle      string
	goalWhy        string
	goalLifeArea   string
	goalTargetDate string
	goalAll        bool
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new goal",
	Long: `Add creates a new goal. The focus goal is recomputed afterwards:
in auto mode the oldest active goal holds focus.

Example:
  daybook goal add --title "Run a marathon" --life-area health
  daybook goal add --title "Read 12 books" --why "Make reading a routine"`,
	RunE: runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE:  runGoalList,
}

var goalDoneCmd = &cobra.Command{
	Use:   "done <goal-id>",
	Short: "Mark a goal completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDone,
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <goal-id>",
	Short: "Delete a goal and its tasks and habits",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDelete,
}

var goalFocusCmd = &cobra.Command{
	Use:   "focus [goal-id]",
	Short: "Pin a goal as the focus goal, or clear the pin",
	Long: `Focus pins the given goal as the focus goal (manual mode). With no
argument the pin is cleared and focus selection returns to auto mode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGoalFocus,
}

func init() {
	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "goal title (required)")
	goalAddCmd.Flags().StringVar(&goalWhy, "why", "", "why this goal matters")
	goalAddCmd.Flags().StringVar(&goalLifeArea, "life-area", "", "life area the goal belongs to")
	goalAddCmd.Flags().StringVar(&goalTargetDate, "target-date", "", "target date (YYYY-MM-DD)")
	_ = goalAddCmd.MarkFlagRequired("title")

	goalListCmd.Flags().BoolVar(&goalAll, "all", false, "include archived and completed goals")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalDoneCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalFocusCmd)
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	goal := st.AddGoal(store.GoalParams{
		Title:      goalTitle,
		Why:        goalWhy,
		LifeArea:   goalLifeArea,
		TargetDate: goalTargetDate,
	})
	if flagJSON {
		return printJSON(goal)
	}
	fmt.Printf("Created goal: %s\n", goal.ID)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	var goals []types.Goal
	if goalAll {
		goals = st.State().Goals
	} else {
		goals = st.ActiveGoals()
	}
	if flagJSON {
		return printJSON(goals)
	}
	for _, g := range goals {
		focus := "  "
		if g.IsFocusGoal {
			focus = "* "
		}
		fmt.Printf("%s%s  %s (%s, %.0f%%)\n", focus, g.ID, g.Title, g.Status, st.GoalProgress(g.ID))
	}
	return nil
}

func runGoalDone(cmd *cobra.Command, args []string) error {
	status := types.GoalStatusCompleted
	goal, ok := st.UpdateGoal(args[0], store.GoalUpdate{Status: &status})
	if !ok {
		return fmt.Errorf("goal not found: %s", args[0])
	}
	if flagJSON {
		return printJSON(goal)
	}
	fmt.Printf("Completed goal: %s\n", goal.Title)
	return nil
}

func runGoalDelete(cmd *cobra.Command, args []string) error {
	if !st.DeleteGoal(args[0]) {
		return fmt.Errorf("goal not found: %s", args[0])
	}
	fmt.Printf("Deleted goal: %s\n", args[0])
	return nil
}

func runGoalFocus(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	st.SetFocusGoal(id)
	state := st.State()
	if goal, ok := state.GoalByID(state.FocusGoalID); ok {
		fmt.Printf("Focus goal: %s\n", goal.Title)
	} else {
		fmt.Println("Focus goal: none")
	}
	return nil
}

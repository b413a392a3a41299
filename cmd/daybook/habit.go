// Habit commands: add, list, check, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
)

var (
	habitTitle     string
	habitFrequency string
	habitWeekDays  []int
	habitTracking  string
	habitTarget    float64
	habitUnit      string
	habitGoalID    string
	habitDate      string
	habitValue     float64
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new habit",
	Long: `Add creates a new habit. Weekly habits take --week-days with weekday
indices (0 = Sunday).

Example:
  daybook habit add --title "Meditate"
  daybook habit add --title "Long run" --frequency weekly --week-days 0,6
  daybook habit add --title "Read" --tracking numeric --target 30 --unit pages`,
	RunE: runHabitAdd,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with streaks",
	RunE:  runHabitList,
}

var habitCheckCmd = &cobra.Command{
	Use:   "check <habit-id>",
	Short: "Toggle a habit's completion for a date",
	Long: `Check toggles the habit's completion for today, or for --date when
given. Numeric and time habits record --value on completion.`,
	Args: cobra.ExactArgs(1),
	RunE: runHabitCheck,
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <habit-id>",
	Short: "Delete a habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitDelete,
}

func init() {
	habitAddCmd.Flags().StringVar(&habitTitle, "title", "", "habit title (required)")
	habitAddCmd.Flags().StringVar(&habitFrequency, "frequency", "", "daily or weekly (default: daily)")
	habitAddCmd.Flags().IntSliceVar(&habitWeekDays, "week-days", nil, "weekday indices for weekly habits (0-6)")
	habitAddCmd.Flags().StringVar(&habitTracking, "tracking", "", "checkbox, numeric, or time (default: checkbox)")
	habitAddCmd.Flags().Float64Var(&habitTarget, "target", 0, "target value for numeric/time tracking")
	habitAddCmd.Flags().StringVar(&habitUnit, "unit", "", "unit for numeric tracking")
	habitAddCmd.Flags().StringVar(&habitGoalID, "goal", "", "goal this habit supports")
	_ = habitAddCmd.MarkFlagRequired("title")

	habitCheckCmd.Flags().StringVar(&habitDate, "date", "", "date to toggle (YYYY-MM-DD, default: today)")
	habitCheckCmd.Flags().Float64Var(&habitValue, "value", 0, "tracked value for numeric/time habits")

	habitCmd.AddCommand(habitAddCmd)
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitCheckCmd)
	habitCmd.AddCommand(habitDeleteCmd)
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	habit := st.AddHabit(store.HabitParams{
		Title:        habitTitle,
		Frequency:    habitFrequency,
		WeekDays:     habitWeekDays,
		TrackingType: habitTracking,
		TargetValue:  habitTarget,
		Unit:         habitUnit,
		GoalID:       habitGoalID,
	})
	if flagJSON {
		return printJSON(habit)
	}
	fmt.Printf("Created habit: %s\n", habit.ID)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	habits := st.State().Habits
	if flagJSON {
		return printJSON(habits)
	}
	for _, h := range habits {
		fmt.Printf("%s  %s (%s, streak %d)\n", h.ID, h.Title, h.Frequency, st.HabitStreak(h.ID))
	}
	return nil
}

func runHabitCheck(cmd *cobra.Command, args []string) error {
	date := habitDate
	var value *float64
	if cmd.Flags().Changed("value") {
		value = &habitValue
	}
	if date == "" {
		date = todayDate()
	}
	habit, ok := st.ToggleHabitDate(args[0], date, value)
	if !ok {
		return fmt.Errorf("habit not found: %s", args[0])
	}
	if flagJSON {
		return printJSON(habit)
	}
	fmt.Printf("%s %s on %s\n", checkbox(habit.CompletedOn(date)), habit.Title, date)
	return nil
}

func runHabitDelete(cmd *cobra.Command, args []string) error {
	if !st.DeleteHabit(args[0]) {
		return fmt.Errorf("habit not found: %s", args[0])
	}
	fmt.Printf("Deleted habit: %s\n", args[0])
	return nil
}

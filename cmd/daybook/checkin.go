// Check-in commands: record, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
)

var (
	checkinType       string
	checkinDate       string
	checkinMood       string
	checkinReflection string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Manage daily check-ins",
}

var checkinRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a daily check-in",
	Long: `Record writes the check-in for the given date and type. Running it
again for the same date and type updates the existing check-in, so a day
holds at most one check-in per type.

Example:
  daybook checkin record --type morning --mood rested
  daybook checkin record --type evening --reflection "Shipped the draft"`,
	RunE: runCheckinRecord,
}

var checkinListCmd = &cobra.Command{
	Use:   "list",
	Short: "List check-ins",
	RunE:  runCheckinList,
}

func init() {
	checkinRecordCmd.Flags().StringVar(&checkinType, "type", "", "morning, midday, or evening (required)")
	checkinRecordCmd.Flags().StringVar(&checkinDate, "date", "", "date (YYYY-MM-DD, default: today)")
	checkinRecordCmd.Flags().StringVar(&checkinMood, "mood", "", "mood label")
	checkinRecordCmd.Flags().StringVar(&checkinReflection, "reflection", "", "free-form reflection")
	_ = checkinRecordCmd.MarkFlagRequired("type")

	checkinCmd.AddCommand(checkinRecordCmd)
	checkinCmd.AddCommand(checkinListCmd)
}

func runCheckinRecord(cmd *cobra.Command, args []string) error {
	checkIn := st.UpsertCheckIn(store.CheckInParams{
		Date:       checkinDate,
		Type:       checkinType,
		Mood:       checkinMood,
		Reflection: checkinReflection,
	})
	if flagJSON {
		return printJSON(checkIn)
	}
	fmt.Printf("Recorded %s check-in for %s\n", checkIn.Type, checkIn.Date)
	return nil
}

func runCheckinList(cmd *cobra.Command, args []string) error {
	checkIns := st.State().DailyCheckIns
	if flagJSON {
		return printJSON(checkIns)
	}
	for _, c := range checkIns {
		mood := ""
		if c.Mood != "" {
			mood = "  " + c.Mood
		}
		fmt.Printf("%s  %s %s%s\n", c.ID, c.Date, c.Type, mood)
	}
	return nil
}

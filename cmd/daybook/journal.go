// Journal commands: add, list.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
)

var (
	journalContent string
	journalMood    string
	journalTags    []string
	journalGoalID  string
	journalLimit   int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a journal entry",
	Long: `Add records a journal entry and awards journaling XP.

Example:
  daybook journal add --content "Good training day" --mood great
  daybook journal add --content "Chapter 3 done" --goal <goal-id> --tags reading`,
	RunE: runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries, newest first",
	RunE:  runJournalList,
}

func init() {
	journalAddCmd.Flags().StringVar(&journalContent, "content", "", "entry text (required)")
	journalAddCmd.Flags().StringVar(&journalMood, "mood", "", "mood label")
	journalAddCmd.Flags().StringSliceVar(&journalTags, "tags", nil, "tags for the entry")
	journalAddCmd.Flags().StringVar(&journalGoalID, "goal", "", "goal this entry relates to")
	_ = journalAddCmd.MarkFlagRequired("content")

	journalListCmd.Flags().IntVar(&journalLimit, "limit", 10, "number of entries to show (0 = all)")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	entry := st.AddJournalEntry(store.JournalParams{
		Content:      journalContent,
		Mood:         journalMood,
		Tags:         journalTags,
		LinkedGoalID: journalGoalID,
	})
	if flagJSON {
		return printJSON(entry)
	}
	fmt.Printf("Created journal entry: %s\n", entry.ID)
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries := st.State().JournalEntries
	// Newest first.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if journalLimit > 0 && len(entries) > journalLimit {
		entries = entries[:journalLimit]
	}
	if flagJSON {
		return printJSON(entries)
	}
	for _, e := range entries {
		mood := ""
		if e.Mood != "" {
			mood = " (" + e.Mood + ")"
		}
		fmt.Printf("%s  %s%s\n    %s\n", e.ID, e.CreatedAt.Format("2006-01-02"), mood, e.Content)
	}
	return nil
}

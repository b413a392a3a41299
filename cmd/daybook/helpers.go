package main

import (
	"encoding/json"
	"fmt"
	"time"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// todayDate returns today's ISO date-only string.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// checkbox renders a completion flag the way list output shows it.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

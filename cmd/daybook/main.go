// Package main provides the daybook CLI, a thin surface over the daybook
// state store for inspecting and mutating journal, goal, habit, and to-do
// data from the terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

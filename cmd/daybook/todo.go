// To-do commands: add, list, toggle, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daybook/pkg/store"
)

var (
	todoTitle       string
	todoDescription string
	todoGroup       string
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage to-dos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new to-do",
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List to-dos",
	RunE:  runTodoList,
}

var todoToggleCmd = &cobra.Command{
	Use:   "toggle <todo-id>",
	Short: "Toggle a to-do's completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoToggle,
}

var todoDeleteCmd = &cobra.Command{
	Use:   "delete <todo-id>",
	Short: "Delete a to-do",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDelete,
}

func init() {
	todoAddCmd.Flags().StringVar(&todoTitle, "title", "", "to-do title (required)")
	todoAddCmd.Flags().StringVar(&todoDescription, "description", "", "longer description")
	todoAddCmd.Flags().StringVar(&todoGroup, "group", "", "group: now or later (default: now)")
	_ = todoAddCmd.MarkFlagRequired("title")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoToggleCmd)
	todoCmd.AddCommand(todoDeleteCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	todo := st.AddTodo(store.TodoParams{
		Title:       todoTitle,
		Description: todoDescription,
		Group:       todoGroup,
	})
	if flagJSON {
		return printJSON(todo)
	}
	fmt.Printf("Created to-do: %s\n", todo.ID)
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	todos := st.State().Todos
	if flagJSON {
		return printJSON(todos)
	}
	for _, t := range todos {
		fmt.Printf("%s %s  %s (%s)\n", checkbox(t.Completed), t.ID, t.Title, t.Group)
	}
	return nil
}

func runTodoToggle(cmd *cobra.Command, args []string) error {
	todo, ok := st.ToggleTodo(args[0])
	if !ok {
		return fmt.Errorf("to-do not found: %s", args[0])
	}
	if flagJSON {
		return printJSON(todo)
	}
	fmt.Printf("%s %s\n", checkbox(todo.Completed), todo.Title)
	return nil
}

func runTodoDelete(cmd *cobra.Command, args []string) error {
	if !st.DeleteTodo(args[0]) {
		return fmt.Errorf("to-do not found: %s", args[0])
	}
	fmt.Printf("Deleted to-do: %s\n", args[0])
	return nil
}

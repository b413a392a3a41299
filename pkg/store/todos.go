package store

import (
	"github.com/mesh-intelligence/daybook/pkg/types"
)

// TodoParams holds the fields for creating a todo.
type TodoParams struct {
	Title       string
	Description string
	Group       string
}

// TodoUpdate holds a partial-field merge for a todo.
type TodoUpdate struct {
	Title       *string
	Description *string
	Group       *string
}

// AddTodo creates a standalone todo. An empty group defaults to "now".
func (s *Store) AddTodo(p TodoParams) types.Todo {
	s.mu.Lock()
	group := p.Group
	if group == "" {
		group = types.TodoGroupNow
	}
	todo := types.Todo{
		ID:          s.newID(),
		Title:       p.Title,
		Description: p.Description,
		Group:       group,
		CreatedAt:   s.now(),
	}
	s.state.Todos = append(s.state.Todos, todo)
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "To-do added")
	return todo
}

// UpdateTodo merges the given fields into the todo. Returns false if the
// todo does not exist.
func (s *Store) UpdateTodo(id string, u TodoUpdate) (types.Todo, bool) {
	s.mu.Lock()
	todo, ok := s.state.TodoByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Todo{}, false
	}
	if u.Title != nil {
		todo.Title = *u.Title
	}
	if u.Description != nil {
		todo.Description = *u.Description
	}
	if u.Group != nil {
		todo.Group = *u.Group
	}
	updated := *todo
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "To-do updated")
	return updated, true
}

// ToggleTodo flips the todo's completion, keeps CompletedAt in lockstep, and
// awards or revokes the todo XP in the same transition. Returns false if the
// todo does not exist.
func (s *Store) ToggleTodo(id string) (types.Todo, bool) {
	s.mu.Lock()
	todo, ok := s.state.TodoByID(id)
	if !ok {
		s.mu.Unlock()
		return types.Todo{}, false
	}

	if todo.Completed {
		todo.Completed = false
		todo.CompletedAt = nil
		s.state.Progress = applyXP(s.state.Progress, -XPTodoComplete)
	} else {
		now := s.now()
		todo.Completed = true
		todo.CompletedAt = &now
		s.state.Progress = applyXP(s.state.Progress, XPTodoComplete)
	}
	updated := *todo
	data := s.encode()
	s.mu.Unlock()

	msg := "To-do completed"
	if !updated.Completed {
		msg = "To-do reopened"
	}
	s.commit(data, msg)
	return updated, true
}

// DeleteTodo removes the todo. Returns false if it does not exist.
func (s *Store) DeleteTodo(id string) bool {
	s.mu.Lock()
	if _, ok := s.state.TodoByID(id); !ok {
		s.mu.Unlock()
		return false
	}
	todos := make([]types.Todo, 0, len(s.state.Todos)-1)
	for _, t := range s.state.Todos {
		if t.ID != id {
			todos = append(todos, t)
		}
	}
	s.state.Todos = todos
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "To-do deleted")
	return true
}

// ReorderTodos replaces the todo ordering wholesale. Todos are rearranged to
// match the given ID order; IDs that do not resolve are ignored and todos
// missing from the list keep their relative order at the end.
func (s *Store) ReorderTodos(ids []string) {
	s.mu.Lock()
	seen := make(map[string]bool, len(ids))
	reordered := make([]types.Todo, 0, len(s.state.Todos))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if todo, ok := s.state.TodoByID(id); ok {
			reordered = append(reordered, *todo)
			seen[id] = true
		}
	}
	for _, t := range s.state.Todos {
		if !seen[t.ID] {
			reordered = append(reordered, t)
		}
	}
	s.state.Todos = reordered
	data := s.encode()
	s.mu.Unlock()

	s.commit(data, "To-dos reordered")
}

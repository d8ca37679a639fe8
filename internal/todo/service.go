package todo

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"tuilab/internal/session"
)

// Service implements task list operations on top of the session store.
type Service struct {
	Store *session.Store
}

// AddResult reports what happened to an add request. Blank input is a
// no-op (Added=false); near-duplicates still append but carry a warning.
type AddResult struct {
	Todo    session.Todo
	Added   bool
	Warning string
}

// Add trims the text and appends it as a pending task. Whitespace-only
// input changes nothing.
func (s *Service) Add(ctx context.Context, text string) (AddResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return AddResult{}, nil
	}

	existing, err := s.Store.Todos(ctx)
	if err != nil {
		return AddResult{}, err
	}
	warning := ""
	for _, t := range existing {
		if t.Done {
			continue
		}
		if nearDuplicate(trimmed, t.Text) {
			warning = "Looks similar to existing task: " + t.Text
			break
		}
	}

	added, err := s.Store.AppendTodo(ctx, trimmed)
	if err != nil {
		return AddResult{}, err
	}
	return AddResult{Todo: added, Added: true, Warning: warning}, nil
}

// List returns all tasks in insertion order.
func (s *Service) List(ctx context.Context) ([]session.Todo, error) {
	return s.Store.Todos(ctx)
}

// Toggle sets the done flag on the task at the given display index.
// Out-of-range indexes are ignored.
func (s *Service) Toggle(ctx context.Context, index int, done bool) error {
	todos, err := s.Store.Todos(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(todos) {
		return nil
	}
	return s.Store.SetTodoDone(ctx, todos[index].ID, done)
}

// ClearCompleted removes done tasks and reports how many went away.
func (s *Service) ClearCompleted(ctx context.Context) (int64, error) {
	return s.Store.ClearCompleted(ctx)
}

// Counts returns pending and done totals for the stats display.
func (s *Service) Counts(ctx context.Context) (pending, done int, err error) {
	return s.Store.Counts(ctx)
}

func nearDuplicate(a, b string) bool {
	dist := levenshtein.ComputeDistance(strings.ToUpper(a), strings.ToUpper(b))
	// ComputeDistance counts runes, so the denominator must too.
	maxlen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxlen {
		maxlen = n
	}
	if maxlen == 0 {
		return false
	}
	return float64(dist)/float64(maxlen) < 0.4
}

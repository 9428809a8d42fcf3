package view

import "context"

// Loader fetches the items a view shows after mount.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Matcher returns the designated text field searched by the free-text box.
type Matcher[T any] func(item T) string

// Predicate reports whether item satisfies an applied filter value.
type Predicate[T any] func(item T, value string) bool

// Filter describes a selectable filter offered by a view.
type Filter struct {
	Key          string
	Label        string
	OperatorText string
	Options      []string
}

// AppliedFilter is a filter the user picked.
type AppliedFilter struct {
	Key   string
	Value string
}

// Cursor is the pagination position. First <= Current <= Last.
type Cursor struct {
	First   int
	Current int
	Last    int
}

// HasPrevious is derived from the cursor.
func (c Cursor) HasPrevious() bool { return c.Current > c.First }

// HasNext is derived from the cursor.
func (c Cursor) HasNext() bool { return c.Current < c.Last }

// Config builds a ListView.
type Config[T any] struct {
	Title      string
	Singular   string
	Plural     string
	Filters    []Filter
	Match      Matcher[T]
	Predicates map[string]Predicate[T]
	ID         func(item T) string
}

// State is a render snapshot. Items is already filtered.
type State[T any] struct {
	Title          string
	Singular       string
	Plural         string
	Filters        []Filter
	Item           T
	Items          []T
	Total          int
	Loading        bool
	ModalOpen      bool
	SearchValue    string
	AppliedFilters []AppliedFilter
	Cursor         Cursor
	HasPrevious    bool
	HasNext        bool
	Selected       map[string]bool
	Err            error
}

package view

import (
	"context"
	"strings"

	"storefront-admin/pkg/log"
)

// ListView owns the state of one paginated, filterable list page.
// It is not safe for concurrent use; callers serialize access.
type ListView[T any] struct {
	cfg Config[T]
	l   log.Logger

	item        T
	items       []T
	loading     bool
	modalOpen   bool
	searchValue string
	applied     []AppliedFilter
	cursor      Cursor
	selected    map[string]bool
	err         error
}

// New creates an empty ListView.
func New[T any](cfg Config[T], l log.Logger) *ListView[T] {
	return &ListView[T]{
		cfg:      cfg,
		l:        l,
		selected: map[string]bool{},
	}
}

// Mount loads the items. A failure keeps the previous items and is kept in Err for rendering.
func (v *ListView[T]) Mount(ctx context.Context, load Loader[T]) error {
	v.loading = true
	defer func() { v.loading = false }()

	items, err := load(ctx)
	if err != nil {
		v.l.Errorf(ctx, "internal.view.Mount %s: %v", v.cfg.Title, err)
		v.err = err
		return err
	}

	v.items = items
	v.err = nil
	return nil
}

// Filter applies the search value and applied filters to the current items.
// With no search value and no applied filters it returns the items unchanged.
func (v *ListView[T]) Filter() []T {
	if v.searchValue == "" && len(v.applied) == 0 {
		return v.items
	}

	needle := strings.ToLower(v.searchValue)
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if needle != "" && (v.cfg.Match == nil || !strings.Contains(strings.ToLower(v.cfg.Match(item)), needle)) {
			continue
		}
		if !v.matchesApplied(item) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (v *ListView[T]) matchesApplied(item T) bool {
	for _, f := range v.applied {
		pred, ok := v.cfg.Predicates[f.Key]
		if !ok {
			continue
		}
		if !pred(item, f.Value) {
			return false
		}
	}
	return true
}

// SetSearch replaces the free-text search value.
func (v *ListView[T]) SetSearch(value string) {
	v.searchValue = value
}

// SetAppliedFilters replaces the applied filters.
func (v *ListView[T]) SetAppliedFilters(filters []AppliedFilter) {
	v.applied = append([]AppliedFilter(nil), filters...)
}

// ApplyFilter sets one filter by key; an empty value removes it.
func (v *ListView[T]) ApplyFilter(key, value string) {
	next := make([]AppliedFilter, 0, len(v.applied)+1)
	for _, f := range v.applied {
		if f.Key != key {
			next = append(next, f)
		}
	}
	if value != "" {
		next = append(next, AppliedFilter{Key: key, Value: value})
	}
	v.applied = next
}

// SetBounds sets the first and last page and clamps the current page into them.
func (v *ListView[T]) SetBounds(first, last int) {
	if last < first {
		last = first
	}
	v.cursor.First = first
	v.cursor.Last = last
	v.cursor.Current = clamp(v.cursor.Current, first, last)
}

// HandlePaginationGeneric moves the cursor by direction, clamped into the bounds.
// It never fetches a page.
func (v *ListView[T]) HandlePaginationGeneric(direction int) {
	v.cursor.Current = clamp(v.cursor.Current+direction, v.cursor.First, v.cursor.Last)
}

func (v *ListView[T]) HandlePaginationPrev() { v.HandlePaginationGeneric(-1) }
func (v *ListView[T]) HandlePaginationNext() { v.HandlePaginationGeneric(+1) }

// Select opens the detail modal for item.
func (v *ListView[T]) Select(item T) {
	v.item = item
	v.modalOpen = true
}

// SelectByID selects the loaded item with the given id.
func (v *ListView[T]) SelectByID(id string) bool {
	if v.cfg.ID == nil {
		return false
	}
	for _, item := range v.items {
		if v.cfg.ID(item) == id {
			v.Select(item)
			return true
		}
	}
	return false
}

// CloseModal closes the modal and leaves the selected item in place.
func (v *ListView[T]) CloseModal() {
	v.modalOpen = false
}

// ToggleSelected flips the bulk-selection mark of an item id.
func (v *ListView[T]) ToggleSelected(id string) {
	if v.selected[id] {
		delete(v.selected, id)
		return
	}
	v.selected[id] = true
}

// Item returns the item shown in the modal.
func (v *ListView[T]) Item() T { return v.item }

// Items returns the unfiltered items.
func (v *ListView[T]) Items() []T { return v.items }

// Loading is true only while Mount's loader runs, so only the loader itself can observe it.
func (v *ListView[T]) Loading() bool   { return v.loading }
func (v *ListView[T]) ModalOpen() bool { return v.modalOpen }
func (v *ListView[T]) Cursor() Cursor  { return v.cursor }
func (v *ListView[T]) Err() error      { return v.err }

// State snapshots the view for rendering.
func (v *ListView[T]) State() State[T] {
	selected := make(map[string]bool, len(v.selected))
	for k := range v.selected {
		selected[k] = true
	}

	return State[T]{
		Title:          v.cfg.Title,
		Singular:       v.cfg.Singular,
		Plural:         v.cfg.Plural,
		Filters:        v.cfg.Filters,
		Item:           v.item,
		Items:          v.Filter(),
		Total:          len(v.items),
		Loading:        v.loading,
		ModalOpen:      v.modalOpen,
		SearchValue:    v.searchValue,
		AppliedFilters: append([]AppliedFilter(nil), v.applied...),
		Cursor:         v.cursor,
		HasPrevious:    v.cursor.HasPrevious(),
		HasNext:        v.cursor.HasNext(),
		Selected:       selected,
		Err:            v.err,
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

package view_test

import (
	"context"
	"errors"
	"testing"

	"storefront-admin/internal/model"
	"storefront-admin/internal/view"
	"storefront-admin/pkg/log"
)

func newLogsView() *view.ListView[model.Log] {
	return view.New(view.Config[model.Log]{
		Title: "Logs",
		Match: func(l model.Log) string { return l.Message },
		Predicates: map[string]view.Predicate[model.Log]{
			"type": func(l model.Log, value string) bool { return string(l.Type) == value },
		},
		ID: func(l model.Log) string { return l.ID },
	}, log.NewNop())
}

func loadLogs(items ...model.Log) view.Loader[model.Log] {
	return func(ctx context.Context) ([]model.Log, error) { return items, nil }
}

func TestMount(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Replaces Items", func(t *testing.T) {
		v := newLogsView()
		var loadingDuringLoad bool
		err := v.Mount(ctx, func(ctx context.Context) ([]model.Log, error) {
			loadingDuringLoad = v.Loading()
			return []model.Log{{ID: "0"}, {ID: "1"}}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !loadingDuringLoad {
			t.Errorf("expected loading while the loader runs")
		}
		if v.Loading() {
			t.Errorf("expected loading cleared after settle")
		}
		if len(v.Items()) != 2 {
			t.Errorf("expected 2 items, got %d", len(v.Items()))
		}
	})

	t.Run("Failure Is Surfaced", func(t *testing.T) {
		v := newLogsView()
		boom := errors.New("network down")
		err := v.Mount(ctx, func(ctx context.Context) ([]model.Log, error) { return nil, boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if v.Loading() {
			t.Errorf("expected loading cleared after failure")
		}
		if !errors.Is(v.State().Err, boom) {
			t.Errorf("expected error in render state")
		}
		if len(v.Items()) != 0 {
			t.Errorf("expected empty list")
		}

		// a later successful mount clears the error
		v.Mount(ctx, loadLogs(model.Log{ID: "0"}))
		if v.Err() != nil {
			t.Errorf("expected error cleared, got %v", v.Err())
		}
	})
}

func TestFilter(t *testing.T) {
	ctx := context.Background()
	v := newLogsView()
	v.Mount(ctx, loadLogs(
		model.Log{ID: "0", Type: model.LogTypeWarning, Message: "Foo BAD"},
		model.Log{ID: "1", Type: model.LogTypeInfo, Message: "Foo ok"},
		model.Log{ID: "2", Type: model.LogTypeSuccess, Message: "Foo good"},
	))

	t.Run("Empty Search Is Identity", func(t *testing.T) {
		got := v.Filter()
		if len(got) != 3 || got[0].ID != "0" || got[2].ID != "2" {
			t.Errorf("expected all items unchanged, got %+v", got)
		}
	})

	t.Run("Case Insensitive Substring", func(t *testing.T) {
		v.SetSearch("bad")
		got := v.Filter()
		if len(got) != 1 || got[0].ID != "0" {
			t.Errorf("expected only Foo BAD, got %+v", got)
		}

		v.SetSearch("FOO")
		if len(v.Filter()) != 3 {
			t.Errorf("expected every item to match FOO")
		}
		v.SetSearch("")
	})

	t.Run("Regex Characters Are Literal", func(t *testing.T) {
		v.SetSearch(".*")
		if len(v.Filter()) != 0 {
			t.Errorf("expected no match for literal .*")
		}
		v.SetSearch("")
	})

	t.Run("Applied Filters", func(t *testing.T) {
		v.ApplyFilter("type", "info")
		got := v.Filter()
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("expected the info log, got %+v", got)
		}

		v.SetSearch("good")
		if len(v.Filter()) != 0 {
			t.Errorf("expected search and filter to be combined")
		}

		v.SetSearch("")
		v.ApplyFilter("type", "")
		if len(v.Filter()) != 3 {
			t.Errorf("expected removing the filter to restore all items")
		}

		v.SetAppliedFilters([]view.AppliedFilter{{Key: "unknown", Value: "x"}})
		if len(v.Filter()) != 3 {
			t.Errorf("expected unknown filter keys to be ignored")
		}
	})
}

func TestPagination(t *testing.T) {
	v := newLogsView()
	v.SetBounds(0, 3)
	v.HandlePaginationNext()

	v.HandlePaginationGeneric(+1)
	c := v.Cursor()
	if c.Current != 2 || !c.HasPrevious() || !c.HasNext() {
		t.Errorf("after +1 expected current=2 prev next, got %+v", c)
	}

	v.HandlePaginationNext()
	c = v.Cursor()
	if c.Current != 3 || c.HasNext() {
		t.Errorf("after second +1 expected current=3 and no next, got %+v", c)
	}

	v.HandlePaginationNext()
	if v.Cursor().Current != 3 {
		t.Errorf("expected cursor clamped at last, got %d", v.Cursor().Current)
	}

	for i := 0; i < 10; i++ {
		v.HandlePaginationPrev()
	}
	c = v.Cursor()
	if c.Current != 0 || c.HasPrevious() || !c.HasNext() {
		t.Errorf("expected cursor clamped at first, got %+v", c)
	}

	st := v.State()
	if st.HasPrevious != st.Cursor.HasPrevious() || st.HasNext != st.Cursor.HasNext() {
		t.Errorf("state flags must be derived from the cursor")
	}

	v.SetBounds(5, 2)
	c = v.Cursor()
	if c.First != 5 || c.Last != 5 || c.Current != 5 {
		t.Errorf("expected degenerate bounds collapsed to first, got %+v", c)
	}
}

func TestModal(t *testing.T) {
	v := newLogsView()
	v.Mount(context.Background(), loadLogs(model.Log{ID: "0", Message: "a"}, model.Log{ID: "1", Message: "b"}))

	if !v.SelectByID("1") {
		t.Fatalf("expected item 1 to be found")
	}
	if !v.ModalOpen() || v.Item().ID != "1" {
		t.Errorf("expected modal open on item 1")
	}

	v.CloseModal()
	if v.ModalOpen() {
		t.Errorf("expected modal closed")
	}
	if v.Item().ID != "1" {
		t.Errorf("expected item unchanged after close, got %q", v.Item().ID)
	}

	if v.SelectByID("missing") {
		t.Errorf("expected unknown id not to select")
	}
}

func TestToggleSelected(t *testing.T) {
	v := newLogsView()
	v.ToggleSelected("a")
	v.ToggleSelected("b")
	v.ToggleSelected("a")

	st := v.State()
	if st.Selected["a"] || !st.Selected["b"] {
		t.Errorf("unexpected selection %v", st.Selected)
	}
}

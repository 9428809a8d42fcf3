package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront-admin/internal/database"
	repo "storefront-admin/internal/database/repository"
	"storefront-admin/internal/database/repository/fixture"
	"storefront-admin/internal/database/usecase"
	"storefront-admin/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type failingRepo struct{}

func (failingRepo) FindLogs(ctx context.Context, opt repo.FindLogsOptions) ([]model.Log, error) {
	return nil, repo.ErrFailedToList
}

func (failingRepo) FindTemplates(ctx context.Context, opt repo.FindTemplatesOptions) ([]model.Template, error) {
	return nil, repo.ErrFailedToList
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(fixture.New(&mockLogger{}), &mockLogger{})

	t.Run("Log Model", func(t *testing.T) {
		out, err := uc.Find(ctx, database.FindInput{Model: "log"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Model != model.ModelLog || len(out.Logs) != 4 {
			t.Fatalf("expected 4 logs, got %+v", out)
		}
		for i, l := range out.Logs {
			if l.ID != []string{"0", "1", "2", "3"}[i] {
				t.Errorf("logs out of order at %d: %s", i, l.ID)
			}
		}
		if out.Templates != nil {
			t.Errorf("expected no templates for log model")
		}
	})

	t.Run("Template Model", func(t *testing.T) {
		out, err := uc.Find(ctx, database.FindInput{Model: "template"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Model != model.ModelTemplate || len(out.Templates) != 2 {
			t.Fatalf("expected 2 templates, got %+v", out)
		}
	})

	t.Run("Invalid Model", func(t *testing.T) {
		_, err := uc.Find(ctx, database.FindInput{Model: "bogus"})
		var invalid *database.InvalidModelError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidModelError, got %v", err)
		}
		if !strings.Contains(err.Error(), "bogus") {
			t.Errorf("expected message to name the model, got %q", err.Error())
		}
	})

	t.Run("Missing Model", func(t *testing.T) {
		_, err := uc.Find(ctx, database.FindInput{})
		if !errors.Is(err, database.ErrModelRequired) {
			t.Errorf("expected ErrModelRequired, got %v", err)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		bad := usecase.New(failingRepo{}, &mockLogger{})
		if _, err := bad.Find(ctx, database.FindInput{Model: "log"}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
		if _, err := bad.Find(ctx, database.FindInput{Model: "template"}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestFindLogsIgnoresModel(t *testing.T) {
	uc := usecase.New(fixture.New(&mockLogger{}), &mockLogger{})

	out, err := uc.FindLogs(context.Background(), database.FindInput{Model: "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Logs) != 4 {
		t.Errorf("expected 4 logs, got %d", len(out.Logs))
	}
}

package database

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Find dispatches on input.Model.
	Find(ctx context.Context, input FindInput) (FindOutput, error)
	// FindLogs serves the single-model log route; input.Model is ignored.
	FindLogs(ctx context.Context, input FindInput) (FindOutput, error)
}

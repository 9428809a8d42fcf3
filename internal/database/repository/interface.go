package repository

import (
	"context"

	"storefront-admin/internal/model"
)

// Repository is the composed interface for the database domain data source.
type Repository interface {
	LogRepository
	TemplateRepository
}

type LogRepository interface {
	FindLogs(ctx context.Context, opt FindLogsOptions) ([]model.Log, error)
}

type TemplateRepository interface {
	FindTemplates(ctx context.Context, opt FindTemplatesOptions) ([]model.Template, error)
}

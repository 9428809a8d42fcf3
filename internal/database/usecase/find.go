package usecase

import (
	"context"

	"storefront-admin/internal/database"
	repo "storefront-admin/internal/database/repository"
	"storefront-admin/internal/model"
)

// Find selects the data source by input.Model. Unknown models yield *database.InvalidModelError.
func (uc *implUseCase) Find(ctx context.Context, input database.FindInput) (database.FindOutput, error) {
	switch input.Model {
	case model.ModelLog:
		return uc.FindLogs(ctx, input)
	case model.ModelTemplate:
		return uc.findTemplates(ctx)
	case "":
		return database.FindOutput{}, database.ErrModelRequired
	default:
		return database.FindOutput{}, &database.InvalidModelError{Model: input.Model}
	}
}

// FindLogs returns every log from the data source.
func (uc *implUseCase) FindLogs(ctx context.Context, input database.FindInput) (database.FindOutput, error) {
	logs, err := uc.repo.FindLogs(ctx, repo.FindLogsOptions{Between: input.Between})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindLogs repo.FindLogs: %v", err)
		return database.FindOutput{}, err
	}
	return database.FindOutput{Model: model.ModelLog, Logs: logs}, nil
}

func (uc *implUseCase) findTemplates(ctx context.Context) (database.FindOutput, error) {
	templates, err := uc.repo.FindTemplates(ctx, repo.FindTemplatesOptions{Shop: model.ShopGlobal})
	if err != nil {
		uc.l.Errorf(ctx, "uc.findTemplates repo.FindTemplates: %v", err)
		return database.FindOutput{}, err
	}
	return database.FindOutput{Model: model.ModelTemplate, Templates: templates}, nil
}

package database

import (
	"time"

	"storefront-admin/internal/model"
)

// --- UseCase Inputs ---

type FindInput struct {
	Model   string
	Between []time.Time
}

// --- UseCase Outputs ---

// FindOutput carries the records of exactly one model.
type FindOutput struct {
	Model     string
	Logs      []model.Log
	Templates []model.Template
}

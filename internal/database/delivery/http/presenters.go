package http

import (
	"encoding/json"
	"net/http"
	"time"

	"storefront-admin/internal/database"
	"storefront-admin/internal/model"
)

// --- Request DTOs ---

type findQuery struct {
	Between []time.Time `json:"between,omitempty" binding:"omitempty,max=2"`
}

type findReq struct {
	Model string    `json:"model" binding:"required"`
	Query findQuery `json:"query"`
}

// validate accepts an absent range or exactly two ordered bounds.
func (q findQuery) validate() error {
	if len(q.Between) == 0 {
		return nil
	}
	if len(q.Between) != 2 || q.Between[1].Before(q.Between[0]) {
		return database.ErrInvalidBetween
	}
	return nil
}

func (r findReq) validate() error { return r.Query.validate() }

func (r findReq) toInput() database.FindInput {
	return database.FindInput{
		Model:   r.Model,
		Between: r.Query.Between,
	}
}

// ---

type findLogReq struct {
	Model string    `json:"model,omitempty"`
	Query findQuery `json:"query"`
}

func (r findLogReq) validate() error { return r.Query.validate() }

func (r findLogReq) toInput() database.FindInput {
	return database.FindInput{
		Model:   r.Model,
		Between: r.Query.Between,
	}
}

// --- Response DTOs ---

// newFindResp echoes the request next to the items, the way the caller sent it.
func (h *handler) newFindResp(req any, out database.FindOutput) any {
	raw, _ := json.Marshal(req)

	switch out.Model {
	case model.ModelTemplate:
		return model.FindEnvelope[model.Template]{
			Request:  raw,
			Code:     http.StatusOK,
			Response: model.FindItems[model.Template]{Items: nonNil(out.Templates)},
		}
	default:
		return model.FindEnvelope[model.Log]{
			Request:  raw,
			Code:     http.StatusOK,
			Response: model.FindItems[model.Log]{Items: nonNil(out.Logs)},
		}
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

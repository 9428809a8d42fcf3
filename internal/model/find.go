package model

import (
	"encoding/json"
	"time"
)

// Models accepted by the database find discriminator.
const (
	ModelLog      = "log"
	ModelTemplate = "template"
)

// FindQuery is accepted on find requests. Between is not applied by the fixture source.
type FindQuery struct {
	Between []time.Time `json:"between,omitempty"`
}

// FindRequest is the body of POST /api/database/find.
type FindRequest struct {
	Model string    `json:"model,omitempty"`
	Query FindQuery `json:"query"`
}

// FindEnvelope is the handler response: the echoed request, a code and the items.
type FindEnvelope[T any] struct {
	Request  json.RawMessage `json:"request,omitempty"`
	Code     int             `json:"code"`
	Response FindItems[T]    `json:"response"`
}

// FindItems wraps the items of a FindEnvelope.
type FindItems[T any] struct {
	Items []T `json:"items"`
}

// OrdersEnvelope is the storefront platform order listing body.
type OrdersEnvelope struct {
	Orders []Order `json:"orders"`
}

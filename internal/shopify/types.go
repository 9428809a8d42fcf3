package shopify

import "encoding/json"

// --- UseCase Inputs ---

type ListOrdersInput struct {
	// Status is the platform order status filter; empty means "any".
	Status string
}

// --- UseCase Outputs ---

// ListOrdersOutput holds the platform body byte-for-byte.
type ListOrdersOutput struct {
	Body json.RawMessage
}

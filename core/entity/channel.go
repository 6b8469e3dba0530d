package entity

import "context"

// Type identifies the kind of record a request targets.
type Type string

const (
	// TypeEntry is the ledger order entry record type.
	TypeEntry Type = "entry"
)

// Operation identifies the requested mutation.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Item is one record in a batched request. Token and Location are
// mandatory; Entity carries the full record payload for creations.
type Item struct {
	Token    string `json:"token"`
	Location string `json:"location"`
	Entity   any    `json:"entity,omitempty"`
}

// Channel submits batched record requests to the ledger backend.
type Channel interface {
	// RequestMany submits one batch of requests for the given type and
	// operation. The whole batch is accepted or rejected as one call.
	RequestMany(ctx context.Context, typ Type, op Operation, items []Item) error
}

// Package entity provides the request channel to the external ledger backend.
//
// Financially authoritative order entries are owned by the ledger system;
// this service only proposes batched creations and removals for them. The
// Channel interface abstracts that submission path so the dispatcher can be
// tested against a mock (see core/entity/mocks).
//
// # Wire Shape
//
// Each item in a batch is wrapped as {operation, type, params: {entity,
// token, location}} and the whole batch is posted as a single JSON array.
// Items without a token or location are invalid by contract and are skipped
// with an error log instead of failing the batch.
//
// # Usage
//
//	channel, err := entity.NewClient(cfg.Backend)
//	err = channel.RequestMany(ctx, entity.TypeEntry, entity.OperationCreate, items)
package entity

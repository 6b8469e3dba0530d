package entry

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/core/entity"

	"go.uber.org/zap"
)

// Dispatcher propagates reconciliation digests to the ledger backend.
//
// Dispatch is best-effort: call sites invoke Process detached from the
// request path and only log its error, so ledger propagation can never
// fail an editor-facing operation.
type Dispatcher struct {
	channel entity.Channel
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher over the given request channel.
func NewDispatcher(channel entity.Channel, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		channel: channel,
		logger:  logger,
	}
}

// Process submits the digest's creation batch and then its removal batch.
// The two submissions run strictly sequentially with one batch in flight,
// so a removal is never observed before the creation that replaced it.
// Create and remove are independent request types to the backend, so the
// removal batch is attempted even when the creation batch failed; per-step
// failures are logged and joined into the returned error.
func (d *Dispatcher) Process(ctx context.Context, digest *Digest) error {
	if digest.Empty() {
		return nil
	}

	var errs []error

	if len(digest.Created) > 0 {
		items := make([]entity.Item, 0, len(digest.Created))
		for _, e := range digest.Created {
			items = append(items, entity.Item{
				Token:    e.Token,
				Location: e.Location,
				Entity:   e,
			})
		}

		if err := d.channel.RequestMany(ctx, entity.TypeEntry, entity.OperationCreate, items); err != nil {
			d.logger.Warn("Unable to create new entries",
				zap.Error(err),
				zap.Int("count", len(items)))
			errs = append(errs, fmt.Errorf("create entries: %w", err))
		}
	}

	// Never ask the ledger to delete a non-canonical identifier.
	removed := make([]entity.Item, 0, len(digest.Removed))
	for _, r := range digest.Removed {
		if !IsValidToken(r.Token) {
			d.logger.Debug("Skipping removal of legacy entry token",
				zap.String("token", r.Token))
			continue
		}

		removed = append(removed, entity.Item{
			Token:    r.Token,
			Location: r.Location,
		})
	}

	if len(removed) > 0 {
		if err := d.channel.RequestMany(ctx, entity.TypeEntry, entity.OperationDelete, removed); err != nil {
			d.logger.Warn("Unable to delete entries",
				zap.Error(err),
				zap.Int("count", len(removed)))
			errs = append(errs, fmt.Errorf("delete entries: %w", err))
		}
	}

	return errors.Join(errs...)
}

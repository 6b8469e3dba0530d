package modifier

import (
	"context"
	"time"

	"menu-manager/core/entry"
	"menu-manager/feature/modifier/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles modifier group operations. Items carry a single order
// slot, so the reconcile flow is the same as for menus minus the refill
// and variant slots.
type Service struct {
	repo       *Repository
	dispatcher *entry.Dispatcher
	logger     *zap.Logger
}

// NewService creates a new modifier service.
func NewService(repo *Repository, dispatcher *entry.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Get returns one modifier group by token.
func (s *Service) Get(ctx context.Context, token string) (*models.Modifier, error) {
	return s.repo.Get(ctx, token)
}

// List returns all modifier groups for a location.
func (s *Service) List(ctx context.Context, location string) ([]models.Modifier, error) {
	return s.repo.ListByLocation(ctx, location)
}

// Create reconciles the payload's items against an empty previous state,
// persists the group, and dispatches the digest.
func (s *Service) Create(ctx context.Context, payload *models.Modifier) (*models.Modifier, error) {
	token := payload.Token
	if token == "" {
		token = uuid.NewString()
	}

	items, digest, err := entry.SyncModifierEntries(payload.Location, token, payload.Items, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	modifier := &models.Modifier{
		Token:      token,
		Location:   payload.Location,
		Title:      payload.Title,
		Position:   payload.Position,
		MinChoices: payload.MinChoices,
		MaxChoices: payload.MaxChoices,
		Items:      items,
		Created:    now,
		Modified:   now,
	}

	if err := s.repo.Create(ctx, modifier); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return modifier, nil
}

// Update reconciles the payload's items against the stored state, persists
// the rebuilt group, and dispatches the digest.
func (s *Service) Update(ctx context.Context, token string, payload *models.Modifier) (*models.Modifier, error) {
	source, err := s.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	items, digest, err := entry.SyncModifierEntries(source.Location, token, payload.Items, source.Items)
	if err != nil {
		return nil, err
	}

	source.Title = payload.Title
	source.Position = payload.Position
	source.MinChoices = payload.MinChoices
	source.MaxChoices = payload.MaxChoices
	source.Items = items
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return source, nil
}

// Delete removes the modifier group and retires every ledger entry it carried.
func (s *Service) Delete(ctx context.Context, token string) error {
	source, err := s.repo.Get(ctx, token)
	if err != nil {
		return err
	}

	_, digest, err := entry.SyncModifierEntries(source.Location, token, nil, source.Items)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, token); err != nil {
		return err
	}

	s.dispatch(digest)

	return nil
}

// dispatch hands the digest to the dispatcher on a detached goroutine.
func (s *Service) dispatch(digest *entry.Digest) {
	if digest.Empty() {
		return
	}

	go func() {
		if err := s.dispatcher.Process(context.Background(), digest); err != nil {
			s.logger.Error("Unable to process entries",
				zap.Error(err),
				zap.Int("created", len(digest.Created)),
				zap.Int("removed", len(digest.Removed)))
		}
	}()
}

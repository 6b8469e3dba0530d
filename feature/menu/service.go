package menu

import (
	"context"
	"time"

	"menu-manager/core/entry"
	"menu-manager/feature/menu/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles menu operations. Every mutation of order-bearing items
// runs the entry reconciler before persisting and hands the resulting
// digest to the dispatcher detached from the request path.
type Service struct {
	repo       *Repository
	dispatcher *entry.Dispatcher
	logger     *zap.Logger
}

// NewService creates a new menu service.
func NewService(repo *Repository, dispatcher *entry.Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Get returns one menu by token.
func (s *Service) Get(ctx context.Context, token string) (*models.Menu, error) {
	return s.repo.Get(ctx, token)
}

// List returns all menus for a location.
func (s *Service) List(ctx context.Context, location string) ([]models.Menu, error) {
	return s.repo.ListByLocation(ctx, location)
}

// Create reconciles the payload's items against an empty previous state,
// persists the menu, and dispatches the digest.
func (s *Service) Create(ctx context.Context, payload *models.Menu) (*models.Menu, error) {
	token := payload.Token
	if token == "" {
		token = uuid.NewString()
	}

	items, digest, err := entry.SyncMenuEntries(payload.Location, token, payload.Items, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	menu := &models.Menu{
		Token:      token,
		Location:   payload.Location,
		Title:      payload.Title,
		Position:   payload.Position,
		Categories: withCategoryTokens(payload.Categories),
		Items:      items,
		Created:    now,
		Modified:   now,
	}

	if err := s.repo.Create(ctx, menu); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return menu, nil
}

// Update reconciles the payload's items against the stored state, persists
// the rebuilt tree, and dispatches the digest.
func (s *Service) Update(ctx context.Context, token string, payload *models.Menu) (*models.Menu, error) {
	source, err := s.repo.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	items, digest, err := entry.SyncMenuEntries(source.Location, token, payload.Items, source.Items)
	if err != nil {
		return nil, err
	}

	source.Title = payload.Title
	source.Position = payload.Position
	source.Categories = withCategoryTokens(payload.Categories)
	source.Items = items
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return source, nil
}

// Delete removes the menu and retires every ledger entry it carried.
func (s *Service) Delete(ctx context.Context, token string) error {
	source, err := s.repo.Get(ctx, token)
	if err != nil {
		return err
	}

	_, digest, err := entry.SyncMenuEntries(source.Location, token, nil, source.Items)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, token); err != nil {
		return err
	}

	s.dispatch(digest)

	return nil
}

// CreateItem appends one item to the menu. Only the new item is
// reconciled; existing slots keep their identities untouched.
func (s *Service) CreateItem(ctx context.Context, menuToken string, item *entry.MenuItem) (*entry.MenuItem, error) {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return nil, err
	}

	if item.Token == "" {
		item.Token = uuid.NewString()
	}

	items, digest, err := entry.SyncMenuEntries(source.Location, menuToken, []entry.MenuItem{*item}, nil)
	if err != nil {
		return nil, err
	}

	source.Items = append(source.Items, items[0])
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return &items[0], nil
}

// UpdateItem replaces one item in the menu. The payload is reconciled
// against all of the menu's previous slots so a slot keeps its token when
// its financial identity did not change.
func (s *Service) UpdateItem(ctx context.Context, menuToken, itemToken string, item *entry.MenuItem) (*entry.MenuItem, error) {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return nil, err
	}

	idx := itemIndex(source.Items, itemToken)
	if idx < 0 {
		return nil, ErrNotFound
	}

	item.Token = itemToken

	items, digest, err := entry.SyncMenuEntries(source.Location, menuToken, []entry.MenuItem{*item}, source.Items)
	if err != nil {
		return nil, err
	}

	source.Items[idx] = items[0]
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	s.dispatch(digest)

	return &items[0], nil
}

// DeleteItem removes one item and retires its ledger entries.
func (s *Service) DeleteItem(ctx context.Context, menuToken, itemToken string) error {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return err
	}

	idx := itemIndex(source.Items, itemToken)
	if idx < 0 {
		return ErrNotFound
	}

	_, digest, err := entry.SyncMenuEntries(source.Location, menuToken, nil, []entry.MenuItem{source.Items[idx]})
	if err != nil {
		return err
	}

	source.Items = append(source.Items[:idx], source.Items[idx+1:]...)
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return err
	}

	s.dispatch(digest)

	return nil
}

// CreateCategory appends a category. Categories carry no order slots, so
// no reconciliation happens.
func (s *Service) CreateCategory(ctx context.Context, menuToken string, category models.Category) (*models.Category, error) {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return nil, err
	}

	if category.Token == "" {
		category.Token = uuid.NewString()
	}

	source.Categories = append(source.Categories, category)
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	return &category, nil
}

// UpdateCategory replaces a category by token.
func (s *Service) UpdateCategory(ctx context.Context, menuToken, categoryToken string, category models.Category) (*models.Category, error) {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return nil, err
	}

	idx := categoryIndex(source.Categories, categoryToken)
	if idx < 0 {
		return nil, ErrNotFound
	}

	category.Token = categoryToken
	source.Categories[idx] = category
	source.Modified = time.Now()

	if err := s.repo.Update(ctx, source); err != nil {
		return nil, err
	}

	return &category, nil
}

// DeleteCategory removes a category by token.
func (s *Service) DeleteCategory(ctx context.Context, menuToken, categoryToken string) error {
	source, err := s.repo.Get(ctx, menuToken)
	if err != nil {
		return err
	}

	idx := categoryIndex(source.Categories, categoryToken)
	if idx < 0 {
		return ErrNotFound
	}

	source.Categories = append(source.Categories[:idx], source.Categories[idx+1:]...)
	source.Modified = time.Now()

	return s.repo.Update(ctx, source)
}

// dispatch hands the digest to the dispatcher on a detached goroutine.
// Ledger propagation failures are observable only via logs and can never
// fail the editor-facing operation.
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

func itemIndex(items []entry.MenuItem, token string) int {
	for i := range items {
		if items[i].Token == token {
			return i
		}
	}
	return -1
}

func categoryIndex(categories []models.Category, token string) int {
	for i := range categories {
		if categories[i].Token == token {
			return i
		}
	}
	return -1
}

func withCategoryTokens(categories []models.Category) []models.Category {
	result := make([]models.Category, len(categories))
	for i, c := range categories {
		if c.Token == "" {
			c.Token = uuid.NewString()
		}
		result[i] = c
	}
	return result
}

package modifier

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/feature/modifier/models"

	"gorm.io/gorm"
)

// ErrNotFound indicates the requested modifier group does not exist.
var ErrNotFound = errors.New("modifier not found")

// Repository persists modifier documents.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a modifier repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads one modifier group by token.
func (r *Repository) Get(ctx context.Context, token string) (*models.Modifier, error) {
	var record models.Record

	err := r.db.WithContext(ctx).First(&record, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load modifier: %w", err)
	}

	return record.ToModifier()
}

// ListByLocation loads all modifier groups for a location, ordered by position.
func (r *Repository) ListByLocation(ctx context.Context, location string) ([]models.Modifier, error) {
	var records []models.Record

	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("position").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list modifiers: %w", err)
	}

	modifiers := make([]models.Modifier, 0, len(records))
	for i := range records {
		modifier, err := records[i].ToModifier()
		if err != nil {
			return nil, err
		}
		modifiers = append(modifiers, *modifier)
	}

	return modifiers, nil
}

// Create inserts a new modifier group.
func (r *Repository) Create(ctx context.Context, modifier *models.Modifier) error {
	record, err := models.FromModifier(modifier)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create modifier: %w", err)
	}

	return nil
}

// Update saves an existing modifier group.
func (r *Repository) Update(ctx context.Context, modifier *models.Modifier) error {
	record, err := models.FromModifier(modifier)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.Record{}).
		Where("token = ?", record.Token).
		Updates(map[string]any{
			"title":       record.Title,
			"position":    record.Position,
			"min_choices": record.MinChoices,
			"max_choices": record.MaxChoices,
			"items":       record.Items,
			"modified":    record.Modified,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update modifier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a modifier group by token.
func (r *Repository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Delete(&models.Record{}, "token = ?", token)
	if result.Error != nil {
		return fmt.Errorf("failed to delete modifier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

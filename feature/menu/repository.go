package menu

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/feature/menu/models"

	"gorm.io/gorm"
)

// ErrNotFound indicates the requested menu or sub-resource does not exist.
var ErrNotFound = errors.New("menu not found")

// Repository persists menu documents.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a menu repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads one menu by token.
func (r *Repository) Get(ctx context.Context, token string) (*models.Menu, error) {
	var record models.Record

	err := r.db.WithContext(ctx).First(&record, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	return record.ToMenu()
}

// ListByLocation loads all menus for a location, ordered by position.
func (r *Repository) ListByLocation(ctx context.Context, location string) ([]models.Menu, error) {
	var records []models.Record

	err := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("position").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	menus := make([]models.Menu, 0, len(records))
	for i := range records {
		menu, err := records[i].ToMenu()
		if err != nil {
			return nil, err
		}
		menus = append(menus, *menu)
	}

	return menus, nil
}

// Create inserts a new menu.
func (r *Repository) Create(ctx context.Context, menu *models.Menu) error {
	record, err := models.FromMenu(menu)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create menu: %w", err)
	}

	return nil
}

// Update saves an existing menu.
func (r *Repository) Update(ctx context.Context, menu *models.Menu) error {
	record, err := models.FromMenu(menu)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&models.Record{}).
		Where("token = ?", record.Token).
		Updates(map[string]any{
			"title":      record.Title,
			"position":   record.Position,
			"categories": record.Categories,
			"items":      record.Items,
			"modified":   record.Modified,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update menu: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a menu by token.
func (r *Repository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Delete(&models.Record{}, "token = ?", token)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

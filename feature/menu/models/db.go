package models

import (
	"encoding/json"
	"fmt"
	"time"

	"menu-manager/core/entry"
)

// Record is the persisted shape of a menu. The nested item and category
// trees are stored as JSON documents; the reconciler is the only writer of
// slot identities inside them.
type Record struct {
	Token      string    `gorm:"column:token;primaryKey;size:36"`
	Location   string    `gorm:"column:location;size:36;index"`
	Title      string    `gorm:"column:title"`
	Position   int       `gorm:"column:position"`
	Categories []byte    `gorm:"column:categories"`
	Items      []byte    `gorm:"column:items"`
	Created    time.Time `gorm:"column:created"`
	Modified   time.Time `gorm:"column:modified"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "menus"
}

// ToMenu decodes the stored record into the domain model.
func (r *Record) ToMenu() (*Menu, error) {
	menu := &Menu{
		Token:    r.Token,
		Location: r.Location,
		Title:    r.Title,
		Position: r.Position,
		Created:  r.Created,
		Modified: r.Modified,
	}

	if len(r.Categories) > 0 {
		if err := json.Unmarshal(r.Categories, &menu.Categories); err != nil {
			return nil, fmt.Errorf("failed to decode menu categories: %w", err)
		}
	}

	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &menu.Items); err != nil {
			return nil, fmt.Errorf("failed to decode menu items: %w", err)
		}
	}

	return menu, nil
}

// FromMenu encodes the domain model into its persisted shape.
func FromMenu(m *Menu) (*Record, error) {
	record := &Record{
		Token:    m.Token,
		Location: m.Location,
		Title:    m.Title,
		Position: m.Position,
		Created:  m.Created,
		Modified: m.Modified,
	}

	categories := m.Categories
	if categories == nil {
		categories = []Category{}
	}

	items := m.Items
	if items == nil {
		items = []entry.MenuItem{}
	}

	var err error
	if record.Categories, err = json.Marshal(categories); err != nil {
		return nil, fmt.Errorf("failed to encode menu categories: %w", err)
	}

	if record.Items, err = json.Marshal(items); err != nil {
		return nil, fmt.Errorf("failed to encode menu items: %w", err)
	}

	return record, nil
}

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"menu-manager/core/entry"
)

// Record is the persisted shape of a modifier group. The item tree is
// stored as a JSON document.
type Record struct {
	Token      string    `gorm:"column:token;primaryKey;size:36"`
	Location   string    `gorm:"column:location;size:36;index"`
	Title      string    `gorm:"column:title"`
	Position   int       `gorm:"column:position"`
	MinChoices int       `gorm:"column:min_choices"`
	MaxChoices int       `gorm:"column:max_choices"`
	Items      []byte    `gorm:"column:items"`
	Created    time.Time `gorm:"column:created"`
	Modified   time.Time `gorm:"column:modified"`
}

// TableName overrides the table name.
func (Record) TableName() string {
	return "modifiers"
}

// ToModifier decodes the stored record into the domain model.
func (r *Record) ToModifier() (*Modifier, error) {
	modifier := &Modifier{
		Token:      r.Token,
		Location:   r.Location,
		Title:      r.Title,
		Position:   r.Position,
		MinChoices: r.MinChoices,
		MaxChoices: r.MaxChoices,
		Created:    r.Created,
		Modified:   r.Modified,
	}

	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &modifier.Items); err != nil {
			return nil, fmt.Errorf("failed to decode modifier items: %w", err)
		}
	}

	return modifier, nil
}

// FromModifier encodes the domain model into its persisted shape.
func FromModifier(m *Modifier) (*Record, error) {
	record := &Record{
		Token:      m.Token,
		Location:   m.Location,
		Title:      m.Title,
		Position:   m.Position,
		MinChoices: m.MinChoices,
		MaxChoices: m.MaxChoices,
		Created:    m.Created,
		Modified:   m.Modified,
	}

	items := m.Items
	if items == nil {
		items = []entry.ModifierItem{}
	}

	var err error
	if record.Items, err = json.Marshal(items); err != nil {
		return nil, fmt.Errorf("failed to encode modifier items: %w", err)
	}

	return record, nil
}

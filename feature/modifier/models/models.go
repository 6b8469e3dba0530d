package models

import (
	"time"

	"menu-manager/core/entry"
)

// Modifier is a group of options attached to menu items, such as sizes or
// toppings. Each item carries a single order slot backed by a ledger entry.
type Modifier struct {
	Token      string               `json:"token"`
	Location   string               `json:"location"`
	Title      string               `json:"title"`
	Position   int                  `json:"position"`
	MinChoices int                  `json:"min_choices"`
	MaxChoices int                  `json:"max_choices"`
	Items      []entry.ModifierItem `json:"items"`
	Created    time.Time            `json:"created"`
	Modified   time.Time            `json:"modified"`
}

package models

import (
	"time"

	"menu-manager/core/entry"
)

// Menu is a menu container: an ordered list of sellable items plus the
// categories used to group them on signage.
type Menu struct {
	// Token is the container-scoped identity, unrelated to any order
	// slot token.
	Token string `json:"token"`

	// Location is the location ID the menu belongs to.
	Location string `json:"location"`

	Title    string `json:"title,omitempty"`
	Position int    `json:"position"`

	Categories []Category       `json:"categories,omitempty"`
	Items      []entry.MenuItem `json:"items"`

	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// Category groups menu items for presentation. Categories carry no order
// slots and never take part in entry reconciliation.
type Category struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	Hidden   bool   `json:"hidden,omitempty"`
}

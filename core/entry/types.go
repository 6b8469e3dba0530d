package entry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidArgument indicates a missing location or container ID.
// It is a programming error upstream and is always surfaced to the caller.
var ErrInvalidArgument = errors.New("invalid argument")

// Entry is the editable order slot embedded in an item. It is a draft
// financial identity; the reconciler replaces its fields with canonical
// values whenever the identity changes.
type Entry struct {
	// Token is the ledger entry ID backing this slot, if any.
	Token string `json:"token,omitempty"`

	// Price is the slot price. Absent is treated as zero.
	Price float64 `json:"price"`

	// Tax is the tax amount (0-1). Absent is treated as zero.
	Tax float64 `json:"tax"`

	// PosID is the external POS mapping ID.
	PosID string `json:"pos_id,omitempty"`

	// Stream is the order management stream ID.
	Stream string `json:"stream,omitempty"`

	// Name is the display name of the slot.
	Name string `json:"name,omitempty"`
}

// LedgerEntry is the canonical, externally tracked record minted when a
// slot's financial identity changes. It is owned by the ledger backend;
// this service only proposes creations and removals.
type LedgerEntry struct {
	// Token is a freshly generated UUIDv4. A caller-supplied token is
	// never reused for a new ledger entry.
	Token string `json:"token"`

	// Location is the location ID the entry belongs to.
	Location string `json:"location"`

	// Price is the entry price, rounded to two decimals.
	Price float64 `json:"price"`

	// Tax is the tax amount, rounded to two decimals.
	Tax float64 `json:"tax"`

	// PosID is the external POS mapping ID, if set.
	PosID string `json:"pos_id,omitempty"`

	// Name is the display name, resolved from the new slot, its
	// predecessor, or the owning item's title.
	Name string `json:"name,omitempty"`

	// Zone is the order stream the entry is routed to.
	Zone string `json:"zone,omitempty"`

	// Created is the minting timestamp.
	Created time.Time `json:"created"`

	// Menu and MenuItem reference the owning menu container and item.
	Menu     string `json:"menu,omitempty"`
	MenuItem string `json:"menu_item,omitempty"`

	// Modifier and ModifierItem reference the owning modifier group and item.
	Modifier     string `json:"modifier,omitempty"`
	ModifierItem string `json:"modifier_item,omitempty"`
}

// Slot returns the canonical editable slot derived from the ledger entry.
// This is the shape written back into the item after reconciliation.
func (l *LedgerEntry) Slot() Entry {
	return Entry{
		Token:  l.Token,
		Price:  l.Price,
		Tax:    l.Tax,
		PosID:  l.PosID,
		Name:   l.Name,
		Stream: l.Zone,
	}
}

// Removal identifies one ledger entry to retire.
type Removal struct {
	Location string `json:"location"`
	Token    string `json:"token"`
}

// Digest is the instruction set produced by one reconciliation pass.
// It is transient: built fresh per call and consumed once by the dispatcher.
type Digest struct {
	Created []LedgerEntry `json:"created"`
	Removed []Removal     `json:"removed"`
}

// Empty reports whether the digest carries no instructions.
func (d *Digest) Empty() bool {
	return d == nil || (len(d.Created) == 0 && len(d.Removed) == 0)
}

// MenuItem is a sellable item inside a menu container. Its order slots are
// financially identified: Order always, OrderRefill optionally, and one
// slot per OrderMain key. OrderMain keys are opaque modifier-group
// references and are never interpreted, only iterated.
type MenuItem struct {
	Token       string           `json:"token"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Position    int              `json:"position"`
	Hidden      bool             `json:"hidden,omitempty"`
	Order       Entry            `json:"order"`
	OrderRefill *Entry           `json:"order_refill,omitempty"`
	OrderMain   map[string]Entry `json:"order_main,omitempty"`
	Modifiers   []string         `json:"modifiers,omitempty"`
}

// Clone returns a deep copy of the item. The reconciler never aliases the
// caller's slots or maps.
func (m MenuItem) Clone() MenuItem {
	c := m

	if m.OrderRefill != nil {
		refill := *m.OrderRefill
		c.OrderRefill = &refill
	}

	if m.OrderMain != nil {
		c.OrderMain = make(map[string]Entry, len(m.OrderMain))
		for k, v := range m.OrderMain {
			c.OrderMain[k] = v
		}
	}

	if m.Modifiers != nil {
		c.Modifiers = append([]string(nil), m.Modifiers...)
	}

	return c
}

// ModifierItem is a selectable item inside a modifier group. It carries a
// single financially identified order slot.
type ModifierItem struct {
	Token     string `json:"token"`
	Title     string `json:"title,omitempty"`
	Position  int    `json:"position"`
	IsDefault bool   `json:"is_default,omitempty"`
	Hidden    bool   `json:"hidden,omitempty"`
	Order     Entry  `json:"order"`
}

// IsValidToken reports whether s is a valid UUIDv4 ledger entry token.
// Legacy identifiers (numeric, empty, or other UUID versions) are not
// valid and force a one-time regeneration when reconciled.
func IsValidToken(s string) bool {
	u, err := uuid.Parse(s)
	return err == nil && u.Version() == 4
}

package entry

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// SyncMenuEntries reconciles a menu's item list against its previous state.
// It returns the rebuilt item list with canonical slot values and a digest
// of ledger creations and removals. The caller's input slices are never
// mutated or aliased; callers replace their working copy with the result.
//
// A nil or empty newItems models a fully deleted container: every previous
// slot becomes a removal.
func SyncMenuEntries(location, menu string, newItems, oldItems []MenuItem) ([]MenuItem, *Digest, error) {
	if location == "" {
		return nil, nil, fmt.Errorf("%w: location not provided", ErrInvalidArgument)
	}

	if menu == "" {
		return nil, nil, fmt.Errorf("%w: menu not provided", ErrInvalidArgument)
	}

	digest := &Digest{}

	old := make(map[string]Entry)
	for _, item := range oldItems {
		indexSlot(old, item.Order)
		if item.OrderRefill != nil {
			indexSlot(old, *item.OrderRefill)
		}
		for _, slot := range item.OrderMain {
			indexSlot(old, slot)
		}
	}

	if len(newItems) == 0 {
		removeAll(location, old, digest)
		zap.L().Debug("Removed all menu entries",
			zap.String("menu", menu),
			zap.Int("count", len(digest.Removed)))
		return nil, digest, nil
	}

	items := make([]MenuItem, 0, len(newItems))

	for _, src := range newItems {
		item := src.Clone()

		if minted := reconcileSlot(location, &item.Order, old, digest); minted != nil {
			digest.Created = append(digest.Created, menuRef(*minted, menu, item))
		}

		if item.OrderRefill != nil {
			if minted := reconcileSlot(location, item.OrderRefill, old, digest); minted != nil {
				digest.Created = append(digest.Created, menuRef(*minted, menu, item))
			}
		}

		// Keys are opaque modifier-group references and are not stable
		// across edits; each slot is matched through the token index
		// like any other. Sorted iteration keeps digests deterministic.
		for _, key := range sortedKeys(item.OrderMain) {
			slot := item.OrderMain[key]
			if minted := reconcileSlot(location, &slot, old, digest); minted != nil {
				digest.Created = append(digest.Created, menuRef(*minted, menu, item))
			}
			item.OrderMain[key] = slot
		}

		items = append(items, item)
	}

	return items, digest, nil
}

// SyncModifierEntries reconciles a modifier group's item list against its
// previous state. Modifier items carry a single order slot. Semantics are
// otherwise identical to SyncMenuEntries.
func SyncModifierEntries(location, modifier string, newItems, oldItems []ModifierItem) ([]ModifierItem, *Digest, error) {
	if location == "" {
		return nil, nil, fmt.Errorf("%w: location not provided", ErrInvalidArgument)
	}

	if modifier == "" {
		return nil, nil, fmt.Errorf("%w: modifier not provided", ErrInvalidArgument)
	}

	digest := &Digest{}

	old := make(map[string]Entry)
	for _, item := range oldItems {
		indexSlot(old, item.Order)
	}

	if len(newItems) == 0 {
		removeAll(location, old, digest)
		zap.L().Debug("Removed all modifier entries",
			zap.String("modifier", modifier),
			zap.Int("count", len(digest.Removed)))
		return nil, digest, nil
	}

	items := make([]ModifierItem, 0, len(newItems))

	for _, src := range newItems {
		item := src

		if minted := reconcileSlot(location, &item.Order, old, digest); minted != nil {
			created := *minted
			created.Modifier = modifier
			created.ModifierItem = item.Token
			created.Name = item.Title
			digest.Created = append(digest.Created, created)
		}

		items = append(items, item)
	}

	return items, digest, nil
}

// indexSlot adds one previous slot to the token-keyed index. The index is
// built once per reconciliation call and discarded with it.
func indexSlot(old map[string]Entry, slot Entry) {
	if slot.Token != "" {
		old[slot.Token] = slot
	}
}

// reconcileSlot runs the change detector for one slot, records the removal
// of its previous identity, and overwrites the slot with the canonical
// shape when a new identity was minted. Unchanged slots are left untouched.
func reconcileSlot(location string, slot *Entry, old map[string]Entry, digest *Digest) *LedgerEntry {
	var prev *Entry
	if slot.Token != "" {
		if e, ok := old[slot.Token]; ok {
			prev = &e
		}
	}

	minted := Changed(location, slot, prev)
	if minted == nil {
		return nil
	}

	if slot.Token != "" {
		digest.Removed = append(digest.Removed, Removal{
			Location: location,
			Token:    slot.Token,
		})
	}

	*slot = minted.Slot()

	return minted
}

// menuRef stamps the owning menu and item onto a minted ledger entry.
func menuRef(minted LedgerEntry, menu string, item MenuItem) LedgerEntry {
	minted.Menu = menu
	minted.MenuItem = item.Token
	minted.Name = item.Title
	return minted
}

// removeAll turns every indexed previous slot into a removal, in token
// order for deterministic digests.
func removeAll(location string, old map[string]Entry, digest *Digest) {
	tokens := make([]string, 0, len(old))
	for token := range old {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		digest.Removed = append(digest.Removed, Removal{
			Location: location,
			Token:    token,
		})
	}
}

func sortedKeys(m map[string]Entry) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

package entry

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Changed compares the new and previous state of one order slot and decides
// whether a new canonical identity must be minted. It returns nil when the
// slot is unchanged, in which case callers must leave the slot exactly as
// it was; this is what makes repeated reconciliation idempotent.
//
// The checks run in a fixed order: missing tokens, legacy non-UUID tokens,
// price, tax, POS mapping, stream. Deterministic except for the generated
// token and timestamp.
func Changed(location string, next, prev *Entry) *LedgerEntry {
	if next == nil {
		return nil
	}

	changed := false

	if next.Token == "" || prev == nil || prev.Token == "" {
		zap.L().Debug("Creating new entry")
		changed = true
	} else if !IsValidToken(prev.Token) || !IsValidToken(next.Token) {
		zap.L().Debug("Generating new entry ID", zap.String("token", prev.Token))
		changed = true
	} else if math.Abs(prev.Price-next.Price) >= 0.01 {
		zap.L().Debug("Switching entry: price changed",
			zap.String("token", prev.Token),
			zap.Float64("old", prev.Price),
			zap.Float64("new", next.Price))
		changed = true
	} else if math.Abs(prev.Tax-next.Tax) >= 0.01 {
		zap.L().Debug("Switching entry: tax changed",
			zap.String("token", prev.Token),
			zap.Float64("old", prev.Tax),
			zap.Float64("new", next.Tax))
		changed = true
	} else if (next.PosID != "" || prev.PosID != "") && prev.PosID != next.PosID {
		zap.L().Debug("Switching entry: pos_id changed",
			zap.String("token", prev.Token),
			zap.String("old", prev.PosID),
			zap.String("new", next.PosID))
		changed = true
	} else if (next.Stream != "" || prev.Stream != "") && prev.Stream != next.Stream {
		zap.L().Debug("Switching entry: stream changed",
			zap.String("token", prev.Token),
			zap.String("old", prev.Stream),
			zap.String("new", next.Stream))
		changed = true
	}

	if !changed {
		return nil
	}

	name := next.Name
	if name == "" && prev != nil {
		name = prev.Name
	}

	return &LedgerEntry{
		Token:    uuid.NewString(),
		Location: location,
		Price:    round2(next.Price),
		Tax:      round2(next.Tax),
		PosID:    next.PosID,
		Name:     name,
		Zone:     next.Stream,
		Created:  time.Now(),
	}
}

// round2 rounds to two decimal places, the ledger's money precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

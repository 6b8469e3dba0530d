// Package entry implements the order entry synchronization engine.
//
// Every sellable item in a menu or modifier group carries one or more
// financially authoritative order slots, each backed by a ledger entry in
// an external system. When an editor mutates an item tree, this package
// decides, per slot, whether the slot's financial identity changed; if so
// the old ledger entry is retired and a new one minted, while unaffected
// slots keep their tokens so downstream references (receipts, POS
// mappings, analytics joins) stay valid.
//
// # Components
//
//  1. Change detector (Changed): pure comparison of one old/new slot pair,
//     returning a freshly minted canonical entry or nil.
//
//  2. Slot reconcilers (SyncMenuEntries, SyncModifierEntries): walk a
//     container's item list, flatten the previous slots into a one-shot
//     token index, apply the detector to every slot, and accumulate a
//     Digest of creations and removals. They return a rebuilt item list
//     and never mutate the caller's input.
//
//  3. Dispatcher (Process): submits the digest to the ledger backend as
//     one creation batch followed by one removal batch, strictly in that
//     order with a single batch in flight.
//
// # Invariants
//
//   - A minted ledger entry always carries a fresh UUIDv4 token.
//   - Reconciling the same before/after state twice yields an empty digest
//     on the second pass (idempotence).
//   - Legacy non-UUID tokens force a one-time regeneration and are never
//     submitted for removal.
//   - Price and tax differences below 0.01 are not identity changes.
//
// The reconcilers perform no I/O and are safe to call synchronously inside
// a request path; the dispatcher performs network I/O and is always invoked
// detached from it.
package entry

// Package modifier implements modifier group management for a location.
//
// A modifier group holds the options attached to menu items, such as
// sizes or toppings. Each option carries a single order slot backed by a
// ledger entry, and every write runs the entry reconciler to keep slot
// identities in step with the option's financial identity.
//
// # HTTP Endpoints
//
//   - POST   /modifier                : Create a modifier group.
//   - GET    /modifier?location=...   : List modifier groups for a location.
//   - GET    /modifier/:token         : Get a modifier group.
//   - PUT    /modifier/:token         : Update a modifier group.
//   - DELETE /modifier/:token         : Delete a modifier group.
package modifier

// Package menu implements menu management for a location.
//
// A menu groups categories and items for a single location. Every item
// carries up to three order slots (order, order_refill and the order_main
// variants), and each slot is backed by a ledger entry that downstream
// POS systems consume. Whenever a menu or one of its items is written,
// the package runs the entry reconciler to decide which slots need fresh
// ledger entries and which old entries must be retired.
//
// # Components
//
//   - Repository: Persists menus as JSON-encoded rows via GORM.
//   - Service: Runs reconciliation, persists the rebuilt tree and hands
//     digests to the dispatcher on a detached goroutine.
//   - Handler: Exposes the HTTP endpoints for menus, items and categories.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST   /menu                              : Create a menu.
//   - GET    /menu?location=...                 : List menus for a location.
//   - GET    /menu/:token                       : Get a menu.
//   - PUT    /menu/:token                       : Update a menu.
//   - DELETE /menu/:token                       : Delete a menu.
//   - POST   /menu/:token/item                  : Append an item.
//   - PUT    /menu/:token/item/:item            : Update an item.
//   - DELETE /menu/:token/item/:item            : Delete an item.
//   - POST   /menu/:token/category              : Append a category.
//   - PUT    /menu/:token/category/:category    : Update a category.
//   - DELETE /menu/:token/category/:category    : Delete a category.
package menu

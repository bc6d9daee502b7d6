// Package delivery provides the Delivery aggregate managed by the delivery resource.
//
// The package includes:
//   - Delivery: the aggregate root holding the delivery attributes and an optional identifier
//   - Status: the set of states a delivery can be reported in
//
// Key rules:
//   - A new delivery (NewDelivery) has no identifier; the repository assigns one on save
//   - A restored delivery (RestoreDelivery) always carries a non-blank identifier
//   - Order number, recipient, address and status are required
//   - Updates replace every attribute; there is no status workflow to enforce
package delivery

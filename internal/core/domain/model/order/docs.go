// Package order provides the order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owning line items, total and status
//   - Item: a line item with the unit price captured at order time
//   - Type: MESA (dine-in) or DELIVERY
//   - Status: the lifecycle state machine
//   - Number: the sequential human-readable order number (ORD-NNNNNN)
//
// Key business rules:
//   - An order needs at least one item; every quantity is positive
//   - The total is the exact decimal sum of price × quantity over the items
//   - MESA orders start ABERTO; ABERTO -> FECHADO/CANCELADO, FECHADO may be
//     reopened to ABERTO, CANCELADO is terminal
//   - DELIVERY orders are born in the DELIVERY status and never leave it
//   - The dedicated close action only applies to ABERTO MESA orders
package order

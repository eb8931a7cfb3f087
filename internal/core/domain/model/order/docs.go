// Package order provides the domain model for bakery orders: the Order
// aggregate root, the Status state machine governing the fulfillment
// pipeline, and the append-only AuditLog trail.
//
// Key business rules:
//   - Orders are created in Pending status with one CREATED audit entry
//   - Status follows Pending -> Paid -> Processing -> Shipped -> Completed,
//     with Cancelled reachable from any non-terminal status
//   - Every status change appends exactly one STATUS_CHANGE audit entry;
//     a wholesale edit appends an EDITED entry
//   - Completed and Cancelled are terminal
//
// The package follows Domain-Driven Design: private fields, factory
// constructors, and validated mutation methods keep every invariant
// inside the aggregate.
package order

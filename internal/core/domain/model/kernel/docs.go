// Package kernel provides the domain primitives shared by the bakery
// domain model.
//
// Its single building block, UUID, is an immutable value object used to
// identify orders, catalog products, and audit-trail entries. It enforces
// construction through factory functions so that zero-value identifiers
// never leak into aggregates.
package kernel

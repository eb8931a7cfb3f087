// Package services contains stateless domain services that operate across
// aggregates. Currently this is the pricing helper that turns a cart's
// line items into the order total snapshot recorded at checkout.
package services

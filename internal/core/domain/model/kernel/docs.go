// Package kernel provides the shared value objects of the order fulfillment domain.
//
// The package includes:
//   - UUID: identity of every aggregate and child entity
//   - Money: non-negative decimal amounts used for prices and order totals
//
// Both are immutable and safe for concurrent use.
package kernel

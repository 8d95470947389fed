// Package services holds domain services that need more than one aggregate.
//
// DispatchGate decides whether an order may leave the shop floor. It reads the
// order aggregate and the inventory levels of the accessories the order needs,
// and never mutates either.
package services

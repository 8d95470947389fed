// Package order implements the Order aggregate together with the line item and
// accessory tracker it owns.
//
// Every state change appends to an audit trail inside the aggregate: status
// changes on the order, step changes on each line item and status changes on each
// item accessory. The current-status fields are caches of the last row of the
// matching trail and are only ever written together with it.
//
// The dispatch gate is not part of this package. TransitionTo and
// AdvanceLineItem receive it as a DispatchPolicy so the rule can consult
// inventory as well as the aggregate.
package order

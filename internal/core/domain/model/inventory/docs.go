// Package inventory implements the Inventory Ledger's domain model.
//
// An Accessory caches its current stock level; every change to that level is
// described by exactly one StockMovement recorded in the same operation, so the
// cached level always equals the NewStockLevel of the latest movement (or 0 when
// there is none). Sign rules per change type:
//
//	IN          quantity > 0
//	OUT         quantity < 0, magnitude at most the current level
//	ADJUSTMENT  quantity != 0, may leave the level negative
package inventory

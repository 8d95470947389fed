package services

import (
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// StockLookup resolves the current stock level of an inventory accessory.
// ok is false when the accessory is unknown to the lookup.
type StockLookup interface {
	StockLevel(accessoryID kernel.UUID) (level int, ok bool)
}

// StockLevels is a StockLookup backed by a map of accessory id to level.
type StockLevels map[kernel.UUID]int

// StockLevelsOf builds StockLevels from loaded inventory accessories.
func StockLevelsOf(accessories []*inventory.Accessory) StockLevels {
	levels := make(StockLevels, len(accessories))
	for _, a := range accessories {
		levels[a.ID()] = a.CurrentStockLevel()
	}
	return levels
}

func (s StockLevels) StockLevel(accessoryID kernel.UUID) (int, bool) {
	level, ok := s[accessoryID]
	return level, ok
}

// GateResult is the outcome of a dispatch check. Blocker is nil when Allowed.
type GateResult struct {
	Allowed bool
	Blocker *order.DispatchBlockedError
}

// DispatchGate checks that every dispatch-required accessory of an order is
// Complete and that none of them is owed to inventory.
//
// Line items are visited in creation order and accessories in position order;
// the first failing accessory is reported. Completeness is checked across the
// whole order before any stock level is consulted.
type DispatchGate struct{}

func NewDispatchGate() DispatchGate {
	return DispatchGate{}
}

// CanDispatch evaluates the gate for o. A nil stock skips the stock rule.
func (g DispatchGate) CanDispatch(o *order.Order, stock StockLookup) GateResult {
	return g.evaluate(o, o.LineItems(), stock)
}

// CanDispatchLineItem evaluates the gate for a single line item of o, as
// needed before that item moves onto the dispatch production step.
func (g DispatchGate) CanDispatchLineItem(o *order.Order, item *order.LineItem, stock StockLookup) GateResult {
	return g.evaluate(o, []*order.LineItem{item}, stock)
}

func (g DispatchGate) evaluate(o *order.Order, items []*order.LineItem, stock StockLookup) GateResult {
	for _, item := range items {
		for _, a := range item.Accessories() {
			if a.BlocksDispatch() {
				return blocked(o, item, a, order.AccessoryIncomplete, 0)
			}
		}
	}

	if stock == nil {
		return GateResult{Allowed: true}
	}

	for _, item := range items {
		for _, a := range item.Accessories() {
			if !a.IsRequiredForDispatch() {
				continue
			}
			if level, ok := stock.StockLevel(a.AccessoryID()); ok && level < 0 {
				return blocked(o, item, a, order.StockUnavailable, level)
			}
		}
	}

	return GateResult{Allowed: true}
}

// Policy binds the gate to stock so it can be handed to Order.TransitionTo
// and Order.AdvanceLineItem.
func (g DispatchGate) Policy(stock StockLookup) order.DispatchPolicy {
	return gatePolicy{gate: g, stock: stock}
}

type gatePolicy struct {
	gate  DispatchGate
	stock StockLookup
}

func (p gatePolicy) Check(o *order.Order) error {
	if res := p.gate.CanDispatch(o, p.stock); !res.Allowed {
		return res.Blocker
	}
	return nil
}

func (p gatePolicy) CheckLineItem(o *order.Order, item *order.LineItem) error {
	if res := p.gate.CanDispatchLineItem(o, item, p.stock); !res.Allowed {
		return res.Blocker
	}
	return nil
}

func blocked(
	o *order.Order,
	item *order.LineItem,
	a *order.ItemAccessory,
	reason order.BlockReason,
	level int,
) GateResult {
	return GateResult{
		Blocker: &order.DispatchBlockedError{
			OrderID:         o.ID(),
			LineItemID:      item.ID(),
			ItemAccessoryID: a.ID(),
			AccessoryID:     a.AccessoryID(),
			Reason:          reason,
			Status:          a.Status(),
			StockLevel:      level,
		},
	}
}

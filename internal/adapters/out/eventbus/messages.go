// Package eventbus delivers committed domain events outside the process:
// to a Kafka topic when brokers are configured, or to the structured log.
package eventbus

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/order"
)

// envelope is the JSON body of every published message.
type envelope struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Payload     any       `json:"payload,omitempty"`
}

type orderCreatedPayload struct {
	Number     string `json:"number"`
	CustomerID string `json:"customer_id"`
}

type orderStatusChangedPayload struct {
	Number string `json:"number"`
	From   string `json:"from"`
	To     string `json:"to"`
	UserID string `json:"user_id"`
}

type stockMovedPayload struct {
	SKU            string  `json:"sku"`
	ChangeType     string  `json:"change_type"`
	QuantityChange int     `json:"quantity_change"`
	NewStockLevel  int     `json:"new_stock_level"`
	MinStockLevel  int     `json:"min_stock_level"`
	LowStock       bool    `json:"low_stock"`
	OrderID        *string `json:"order_id,omitempty"`
}

func newEnvelope(e event.DomainEvent) envelope {
	return envelope{
		ID:          e.EventID().String(),
		Type:        e.EventType(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC(),
		Payload:     payloadOf(e),
	}
}

func payloadOf(e event.DomainEvent) any {
	switch ev := e.(type) {
	case order.CreatedEvent:
		return orderCreatedPayload{
			Number:     ev.Number,
			CustomerID: ev.CustomerID.String(),
		}
	case order.StatusChangedEvent:
		return orderStatusChangedPayload{
			Number: ev.Number,
			From:   ev.From,
			To:     ev.To,
			UserID: ev.UserID,
		}
	case inventory.StockMovedEvent:
		p := stockMovedPayload{
			SKU:            ev.SKU,
			ChangeType:     ev.ChangeType,
			QuantityChange: ev.QuantityChange,
			NewStockLevel:  ev.NewStockLevel,
			MinStockLevel:  ev.MinStockLevel,
			LowStock:       ev.IsLowStock(),
		}
		if ev.OrderID != nil {
			id := ev.OrderID.String()
			p.OrderID = &id
		}
		return p
	default:
		return nil
	}
}

func marshalEvent(e event.DomainEvent) ([]byte, error) {
	return json.Marshal(newEnvelope(e))
}

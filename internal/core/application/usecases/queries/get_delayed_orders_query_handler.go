package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDelayedOrdersQueryHandler reads orders joined with their customers.
// The oldest expected delivery date comes first.
type GetDelayedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetDelayedOrdersQueryHandler(db *gorm.DB) GetDelayedOrdersQueryHandler {
	return GetDelayedOrdersQueryHandler{db: db}
}

func (h GetDelayedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDelayedOrdersQuery,
) ([]GetDelayedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	delayed := make([]GetDelayedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.number_prefix,
			o.number_sequence,
			c.name,
			o.status,
			o.expected_delivery_date
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.expected_delivery_date < ?
			AND o.status IN ?
		ORDER BY o.expected_delivery_date, o.number_prefix, o.number_sequence
	`, query.AsOf(), delayableStatuses()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDelayedOrdersQueryResponse
		var id uuid.UUID
		var prefix, status string
		var sequence int

		err = rows.Scan(
			&id,
			&prefix,
			&sequence,
			&resp.CustomerName,
			&status,
			&resp.ExpectedDeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		number, numErr := order.NewNumber(prefix, sequence)
		if numErr != nil {
			return nil, numErr
		}
		resp.Number = number.String()

		resp.Status, err = order.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		resp.DaysOverdue = int(query.AsOf().Sub(resp.ExpectedDeliveryDate) / (24 * time.Hour))

		delayed = append(delayed, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return delayed, nil
}

func delayableStatuses() []string {
	statuses := make([]string, 0)
	for s := order.Draft; s <= order.Cancelled; s++ {
		if s.IsDelayable() {
			statuses = append(statuses, s.String())
		}
	}
	return statuses
}

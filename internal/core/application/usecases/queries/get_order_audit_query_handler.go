package queries

import (
	"context"
	"database/sql"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderAuditQueryHandler reads the three history tables in one statement.
// Entries are ordered by time; entries sharing a timestamp keep order, line
// item, accessory precedence and then their append order.
type GetOrderAuditQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderAuditQueryHandler(db *gorm.DB) GetOrderAuditQueryHandler {
	return GetOrderAuditQueryHandler{db: db}
}

func (h GetOrderAuditQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAuditQuery,
) ([]GetOrderAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orderID := query.OrderID().Bytes()

	var count int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM orders WHERE id = ?`, orderID,
	).Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	entries := make([]GetOrderAuditQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, subject_id, status_from, status_to, state, variable_value, user_id, notes, changed_at
		FROM (
			SELECT
				'order_status' AS kind, 0 AS precedence, h.order_id AS subject_id, 0 AS position, h.seq,
				h.status_from, h.status_to, '' AS state, '' AS variable_value,
				h.user_id, h.notes, h.changed_at
			FROM order_status_history h
			WHERE h.order_id = @order

			UNION ALL

			SELECT
				'production_status' AS kind, 1 AS precedence, h.line_item_id, li.position, h.seq,
				h.from_step, h.to_step, h.state, '',
				h.user_id, h.notes, h.changed_at
			FROM production_status_history h
			JOIN order_line_items li ON li.id = h.line_item_id
			WHERE li.order_id = @order

			UNION ALL

			SELECT
				'accessory_status' AS kind, 2 AS precedence, h.item_accessory_id, li.position * 1000 + ia.position, h.seq,
				h.status_from, h.status_to, '', h.variable_value,
				h.user_id, h.notes, h.changed_at
			FROM accessory_status_history h
			JOIN order_item_accessories ia ON ia.id = h.item_accessory_id
			JOIN order_line_items li ON li.id = ia.line_item_id
			WHERE li.order_id = @order
		) audit
		ORDER BY changed_at, precedence, position, seq
	`, sql.Named("order", orderID)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderAuditQueryResponse
		var kind string
		var subject uuid.UUID

		err = rows.Scan(
			&kind,
			&subject,
			&resp.From,
			&resp.To,
			&resp.State,
			&resp.VariableValue,
			&resp.UserID,
			&resp.Notes,
			&resp.ChangedAt,
		)
		if err != nil {
			return nil, err
		}

		subjectID, idErr := kernel.UUIDFromBytes(subject[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.Kind = AuditKind(kind)
		resp.SubjectID = subjectID

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Package http exposes the read-only HTTP surface: health, the dispatch gate
// check, and the inventory and delivery reports.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type dispatchReadinessHandler interface {
	Handle(ctx context.Context, query queries.GetDispatchReadinessQuery) (queries.GetDispatchReadinessQueryResponse, error)
}

type lowStockHandler interface {
	Handle(ctx context.Context, query queries.GetLowStockAccessoriesQuery) ([]queries.GetLowStockAccessoriesQueryResponse, error)
}

type delayedOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetDelayedOrdersQuery) ([]queries.GetDelayedOrdersQueryResponse, error)
}

type orderAuditHandler interface {
	Handle(ctx context.Context, query queries.GetOrderAuditQuery) ([]queries.GetOrderAuditQueryResponse, error)
}

type stockMovementsHandler interface {
	Handle(ctx context.Context, query queries.GetStockMovementsQuery) ([]queries.GetStockMovementsQueryResponse, error)
}

// Server coordinates between HTTP handlers and the application queries.
type Server struct {
	dispatchReadinessHandler dispatchReadinessHandler
	lowStockHandler          lowStockHandler
	delayedOrdersHandler     delayedOrdersHandler
	orderAuditHandler        orderAuditHandler
	stockMovementsHandler    stockMovementsHandler
	clock                    ports.Clock
}

func NewServer(
	dispatchReadinessHandler dispatchReadinessHandler,
	lowStockHandler lowStockHandler,
	delayedOrdersHandler delayedOrdersHandler,
	orderAuditHandler orderAuditHandler,
	stockMovementsHandler stockMovementsHandler,
	clock ports.Clock,
) *Server {
	return &Server{
		dispatchReadinessHandler: dispatchReadinessHandler,
		lowStockHandler:          lowStockHandler,
		delayedOrdersHandler:     delayedOrdersHandler,
		orderAuditHandler:        orderAuditHandler,
		stockMovementsHandler:    stockMovementsHandler,
		clock:                    clock,
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	v1 := e.Group("/api/v1")
	v1.GET("/orders/delayed", s.GetDelayedOrders)
	v1.GET("/orders/:id/dispatch-readiness", s.GetDispatchReadiness)
	v1.GET("/orders/:id/audit", s.GetOrderAudit)
	v1.GET("/accessories/low-stock", s.GetLowStockAccessories)
	v1.GET("/accessories/:id/movements", s.GetStockMovements)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "Healthy"})
}

// GetDispatchReadiness handles GET /api/v1/orders/:id/dispatch-readiness.
func (s *Server) GetDispatchReadiness(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetDispatchReadinessQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	readiness, err := s.dispatchReadinessHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to check dispatch readiness")
	}

	response := DispatchReadiness{
		OrderID: readiness.OrderID.String(),
		Number:  readiness.Number,
		Status:  readiness.Status.String(),
		Allowed: readiness.Allowed,
	}
	if b := readiness.Blocker; b != nil {
		response.Blocker = &DispatchBlocker{
			LineItemID:      b.LineItemID.String(),
			ItemAccessoryID: b.ItemAccessoryID.String(),
			AccessoryID:     b.AccessoryID.String(),
			Reason:          string(b.Reason),
			Status:          b.Status.String(),
			StockLevel:      b.StockLevel,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderAudit handles GET /api/v1/orders/:id/audit.
func (s *Server) GetOrderAudit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderAuditQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.orderAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to retrieve order audit")
	}

	response := make([]AuditEntry, len(entries))
	for i, entry := range entries {
		response[i] = AuditEntry{
			Kind:          string(entry.Kind),
			SubjectID:     entry.SubjectID.String(),
			From:          entry.From,
			To:            entry.To,
			State:         entry.State,
			VariableValue: entry.VariableValue,
			UserID:        entry.UserID,
			Notes:         entry.Notes,
			ChangedAt:     entry.ChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelayedOrders handles GET /api/v1/orders/delayed. The optional as_of
// parameter is an RFC 3339 timestamp and defaults to now.
func (s *Server) GetDelayedOrders(ctx echo.Context) error {
	asOf := s.clock.Now()
	if raw := ctx.QueryParam("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(ctx, "as_of must be an RFC 3339 timestamp")
		}
		asOf = parsed
	}

	query, err := queries.NewGetDelayedOrdersQuery(asOf)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.delayedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to retrieve delayed orders")
	}

	response := make([]DelayedOrder, len(orders))
	for i, o := range orders {
		response[i] = DelayedOrder{
			ID:                   o.ID.String(),
			Number:               o.Number,
			CustomerName:         o.CustomerName,
			Status:               o.Status.String(),
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			DaysOverdue:          o.DaysOverdue,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockAccessories handles GET /api/v1/accessories/low-stock.
func (s *Server) GetLowStockAccessories(ctx echo.Context) error {
	accessories, err := s.lowStockHandler.Handle(ctx.Request().Context(), queries.NewGetLowStockAccessoriesQuery())
	if err != nil {
		return failure(ctx, err, "Failed to retrieve low stock accessories")
	}

	response := make([]LowStockAccessory, len(accessories))
	for i, a := range accessories {
		response[i] = LowStockAccessory{
			ID:                a.ID.String(),
			SKU:               a.SKU,
			Name:              a.Name,
			Category:          a.Category,
			CurrentStockLevel: a.CurrentStockLevel,
			MinStockLevel:     a.MinStockLevel,
			Shortfall:         a.Shortfall,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStockMovements handles GET /api/v1/accessories/:id/movements.
func (s *Server) GetStockMovements(ctx echo.Context) error {
	accessoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid accessory id")
	}

	query, err := queries.NewGetStockMovementsQuery(accessoryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	movements, err := s.stockMovementsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return failure(ctx, err, "Failed to retrieve stock movements")
	}

	response := make([]StockMovement, len(movements))
	for i, m := range movements {
		response[i] = StockMovement{
			ID:             m.ID.String(),
			ChangeType:     m.ChangeType.String(),
			QuantityChange: m.QuantityChange,
			NewStockLevel:  m.NewStockLevel,
			Reason:         m.Reason,
			UserID:         m.UserID,
			RecordedAt:     m.RecordedAt,
		}
		if m.OrderID != nil {
			id := m.OrderID.String()
			response[i].OrderID = &id
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// failure maps application errors onto status codes. Unexpected errors keep
// their details out of the response.
func failure(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
	}
}

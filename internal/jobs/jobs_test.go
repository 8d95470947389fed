package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/jobs"
	"orderflow/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

type MockLowStockHandler struct {
	mock.Mock
}

func (m *MockLowStockHandler) Handle(
	ctx context.Context,
	query queries.GetLowStockAccessoriesQuery,
) ([]queries.GetLowStockAccessoriesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetLowStockAccessoriesQueryResponse), args.Error(1)
}

type MockDelayedOrdersHandler struct {
	mock.Mock
}

func (m *MockDelayedOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetDelayedOrdersQuery,
) ([]queries.GetDelayedOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetDelayedOrdersQueryResponse), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLowStockReportJob_Run_LogsEachAccessory(t *testing.T) {
	handler := &MockLowStockHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetLowStockAccessoriesQueryResponse{
		{ID: kernel.NewUUID(), SKU: "GBX-40", Name: "Gearbox", CurrentStockLevel: 1, MinStockLevel: 4, Shortfall: 3},
	}, nil)
	logger, buf := bufferLogger()

	err := jobs.NewLowStockReportJob(handler, "@every 1h", logger).Run(t.Context())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sku=GBX-40")
	assert.Contains(t, buf.String(), "shortfall=3")
	assert.Contains(t, buf.String(), "accessories=1")
	handler.AssertExpectations(t)
}

func TestLowStockReportJob_Run_QueryError(t *testing.T) {
	handler := &MockLowStockHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	logger, buf := bufferLogger()

	err := jobs.NewLowStockReportJob(handler, "@every 1h", logger).Run(t.Context())

	require.Error(t, err)
	assert.Contains(t, buf.String(), "Low stock report failed")
}

func TestDelayedOrdersReportJob_Run_UsesClock(t *testing.T) {
	handler := &MockDelayedOrdersHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDelayedOrdersQuery) bool {
		return q.AsOf().Equal(now)
	})).Return([]queries.GetDelayedOrdersQueryResponse{
		{
			ID:                   kernel.NewUUID(),
			Number:               "EM-000012",
			CustomerName:         "Acme Testing Labs",
			Status:               order.InProduction,
			ExpectedDeliveryDate: now.AddDate(0, 0, -4),
			DaysOverdue:          4,
		},
	}, nil)
	logger, buf := bufferLogger()

	err := jobs.NewDelayedOrdersReportJob(handler, clock.NewFixed(now), "@daily", logger).Run(t.Context())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "number=EM-000012")
	assert.Contains(t, buf.String(), "days_overdue=4")
	handler.AssertExpectations(t)
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, buf := bufferLogger()
	jm := jobs.NewJobManager(&MockLowStockHandler{}, &MockDelayedOrdersHandler{}, clock.NewFixed(now), jobs.Schedules{
		LowStock:      "0 0 * * * *",
		DelayedOrders: "0 0 7 * * *",
	}, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Low stock report job started")
	assert.Contains(t, buf.String(), "Delayed orders report job stopped")
}

func TestJobManager_InvalidScheduleStopsStartedJobs(t *testing.T) {
	logger, buf := bufferLogger()
	jm := jobs.NewJobManager(&MockLowStockHandler{}, &MockDelayedOrdersHandler{}, clock.NewFixed(now), jobs.Schedules{
		LowStock:      "0 0 * * * *",
		DelayedOrders: "not a schedule",
	}, logger)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "delayed orders report")
	assert.Contains(t, buf.String(), "Low stock report job stopped")
}

func TestJobManager_EmptySchedulesDisableJobs(t *testing.T) {
	logger, buf := bufferLogger()
	jm := jobs.NewJobManager(&MockLowStockHandler{}, &MockDelayedOrdersHandler{}, clock.NewFixed(now), jobs.Schedules{}, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Empty(t, buf.String())
}

package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type delayedOrdersQueryHandler interface {
	Handle(ctx context.Context, query queries.GetDelayedOrdersQuery) ([]queries.GetDelayedOrdersQueryResponse, error)
}

// DelayedOrdersReportJob logs every order that is past its expected delivery
// date at the time of the run.
type DelayedOrdersReportJob struct {
	handler  delayedOrdersQueryHandler
	clock    ports.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDelayedOrdersReportJob(
	handler delayedOrdersQueryHandler,
	clock ports.Clock,
	schedule string,
	logger *slog.Logger,
) *DelayedOrdersReportJob {
	return &DelayedOrdersReportJob{
		handler:  handler,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delayed_orders_report_job"),
	}
}

func (j *DelayedOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed orders report job started", "schedule", j.schedule)
	return nil
}

func (j *DelayedOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delayed orders report job stopped")
}

func (j *DelayedOrdersReportJob) Run(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "jobs.delayed_orders_report")
	defer span.End()

	query, err := queries.NewGetDelayedOrdersQuery(j.clock.Now())
	if err != nil {
		return err
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query delayed orders")
		j.logger.ErrorContext(ctx, "Delayed orders report failed", "error", err)
		return err
	}
	span.SetAttributes(attribute.Int("orders.delayed_count", len(orders)))

	for _, o := range orders {
		j.logger.WarnContext(ctx, "Order is past its expected delivery date",
			"order_id", o.ID.String(),
			"number", o.Number,
			"customer", o.CustomerName,
			"status", o.Status.String(),
			"expected_delivery_date", o.ExpectedDeliveryDate,
			"days_overdue", o.DaysOverdue,
		)
	}
	j.logger.InfoContext(ctx, "Delayed orders report finished", "orders", len(orders))
	return nil
}

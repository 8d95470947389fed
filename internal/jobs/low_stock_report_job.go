package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "orderflow/jobs"

type lowStockQueryHandler interface {
	Handle(ctx context.Context, query queries.GetLowStockAccessoriesQuery) ([]queries.GetLowStockAccessoriesQueryResponse, error)
}

// LowStockReportJob logs one warning per accessory below its minimum stock.
type LowStockReportJob struct {
	handler  lowStockQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLowStockReportJob(handler lowStockQueryHandler, schedule string, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_report_job"),
	}
}

func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { _ = j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started", "schedule", j.schedule)
	return nil
}

func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

// Run executes one report immediately.
func (j *LowStockReportJob) Run(ctx context.Context) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "jobs.low_stock_report")
	defer span.End()

	accessories, err := j.handler.Handle(ctx, queries.NewGetLowStockAccessoriesQuery())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query low stock")
		j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
		return err
	}
	span.SetAttributes(attribute.Int("inventory.low_stock_count", len(accessories)))

	for _, a := range accessories {
		j.logger.WarnContext(ctx, "Accessory below minimum stock",
			"accessory_id", a.ID.String(),
			"sku", a.SKU,
			"name", a.Name,
			"current", a.CurrentStockLevel,
			"minimum", a.MinStockLevel,
			"shortfall", a.Shortfall,
		)
	}
	j.logger.InfoContext(ctx, "Low stock report finished", "accessories", len(accessories))
	return nil
}

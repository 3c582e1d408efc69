package jobs

import (
	"context"
	"log/slog"

	"assettransfer/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob reports unfinished orders whose delivery date has passed.
type OverdueOrdersJob struct {
	handler  queries.GetOverdueOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersJob creates the job. schedule is a six-field cron
// expression with seconds.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, schedule string, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Run logs one warning per overdue order and returns how many there were.
func (j *OverdueOrdersJob) Run(ctx context.Context) (int, error) {
	overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery())
	if err != nil {
		return 0, err
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "Order is overdue",
			"order_id", o.ID,
			"status", o.Status,
			"delivery_date", o.DeliveryDate.String(),
			"days_overdue", o.DaysOverdue,
			"assembler", o.Assembler,
		)
	}
	return len(overdue), nil
}

func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

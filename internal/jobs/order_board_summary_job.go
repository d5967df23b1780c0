package jobs

import (
	"context"
	"log/slog"

	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// ClientCounter reports how many socket clients are connected.
type ClientCounter interface {
	ClientCount() int
}

// OrderBoardSummaryJob periodically logs how many orders are in each status.
type OrderBoardSummaryJob struct {
	handler  queries.GetOrdersQueryHandler
	clients  ClientCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBoardSummaryJob creates the summary job. clients may be nil when
// the socket channel is disabled.
func NewOrderBoardSummaryJob(
	handler queries.GetOrdersQueryHandler,
	clients ClientCounter,
	schedule string,
	logger *slog.Logger,
) *OrderBoardSummaryJob {
	return &OrderBoardSummaryJob{
		handler:  handler,
		clients:  clients,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_board_summary_job"),
	}
}

// Start registers the summary and starts the scheduler.
func (j *OrderBoardSummaryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order board summary job started", "schedule", j.schedule)
	return nil
}

// Run logs one summary line.
func (j *OrderBoardSummaryJob) Run(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewGetOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Order board summary failed", "error", err)
		return
	}

	counts := make(map[order.Status]int, len(order.Statuses()))
	for _, o := range orders {
		counts[o.Status()]++
	}

	attrs := make([]any, 0, 2*len(order.Statuses())+4)
	attrs = append(attrs, "orders", len(orders))
	for _, s := range order.Statuses() {
		attrs = append(attrs, s.String(), counts[s])
	}
	if j.clients != nil {
		attrs = append(attrs, "clients", j.clients.ClientCount())
	}

	j.logger.InfoContext(ctx, "Order board summary", attrs...)
}

// Stop stops the scheduler and waits for a running summary to finish.
func (j *OrderBoardSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order board summary job stopped")
}

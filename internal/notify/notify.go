package notify

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Event types emitted on order-core state transitions.
const (
	EventOrderPaid        = "order.paid"
	EventOrderVerified    = "order.verified"
	EventRefundRequested  = "refund.requested"
	EventRefundApproved   = "refund.approved"
	EventRefundRejected   = "refund.rejected"
	EventSettlementDone   = "settlement.completed"
	EventWithdrawalPaid   = "withdrawal.completed"
	EventWithdrawalDenied = "withdrawal.rejected"
)

type Event struct {
	Type    string
	OrderNo string
	ClubID  int
	Message string
}

// Sink delivers a single event somewhere (log, push channel, SMS bridge).
type Sink interface {
	Send(ctx context.Context, event Event) error
}

// Service fans events out to its sinks through a worker pool. Delivery is
// fire-and-forget: a full pool or a failing sink is logged and dropped, never
// surfaced to the caller.
type Service struct {
	pool  WorkerPoolI
	sinks []Sink
}

func New(sinks ...Sink) *Service {
	if len(sinks) == 0 {
		sinks = []Sink{&LogSink{}}
	}
	return &Service{
		pool:  NewWorkerPool(10),
		sinks: sinks,
	}
}

func (s *Service) Notify(ctx context.Context, event Event) {
	err := s.pool.AddTask(ctx, func() error {
		var g errgroup.Group
		for _, sink := range s.sinks {
			sink := sink
			g.Go(func() error {
				return sink.Send(context.Background(), event)
			})
		}
		return g.Wait()
	})
	if err != nil {
		zap.L().Warn("notification dropped",
			zap.String("type", event.Type),
			zap.String("orderNo", event.OrderNo),
			zap.Error(err),
		)
	}
}

func (s *Service) Close() {
	s.pool.Close()
}

// LogSink is the default delivery channel; real channels are registered by
// the application wiring.
type LogSink struct{}

func (l *LogSink) Send(_ context.Context, event Event) error {
	zap.L().Info("notification",
		zap.String("type", event.Type),
		zap.String("orderNo", event.OrderNo),
		zap.Int("clubID", event.ClubID),
		zap.String("message", event.Message),
	)
	return nil
}

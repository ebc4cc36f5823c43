package refundservice

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/config"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/notify"
	"github.com/fengzhui/fengzhui/internal/pg"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error)
}

type Repo interface {
	Save(ctx context.Context, refund *domain.Refund) error
	FindByID(ctx context.Context, id int) (*domain.Refund, error)
	FindPendingByOrderID(ctx context.Context, orderID int) (*domain.Refund, error)
	UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error)
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notify.Event)
}

// Quote is the outcome of applying the refund policy to an order at the
// current moment.
type Quote struct {
	CanRefund bool
	Reason    string
	Percent   int
	Amount    float64
}

type Service struct {
	repo         Repo
	orderRepo    OrderRepo
	activityRepo ActivityRepo
	txManager    pg.TXManager
	notifier     Notifier
	brackets     []config.RefundBracket
}

func New(repo Repo, orderRepo OrderRepo, activityRepo ActivityRepo, txManager pg.TXManager, notifier Notifier, brackets []config.RefundBracket) *Service {
	return &Service{
		repo:         repo,
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		notifier:     notifier,
		brackets:     brackets,
	}
}

// PreviewRefund quotes the refund a user would get right now, without
// changing anything.
func (s *Service) PreviewRefund(ctx context.Context, userID, orderID int) (*Quote, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperrors.NotFound("order not found")
	}
	return s.quote(ctx, order)
}

// CreateRefund applies the policy and moves the order to REFUNDING with a
// PENDING refund awaiting club review.
func (s *Service) CreateRefund(ctx context.Context, userID, orderID int, reason, reasonDetail string) (*domain.Refund, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperrors.NotFound("order not found")
	}
	quote, err := s.quote(ctx, order)
	if err != nil {
		return nil, err
	}
	if !quote.CanRefund {
		return nil, apperrors.InvalidState(quote.Reason)
	}

	to, _ := domain.NextOrderStatus(order.Status, domain.ActionRequestRefund)
	refund := &domain.Refund{
		OrderID:       orderID,
		Reason:        reason,
		ReasonDetail:  reasonDetail,
		RefundAmount:  quote.Amount,
		RefundPercent: quote.Percent,
		Status:        domain.RefundPending,
		CreatedAt:     time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.orderRepo.UpdateStatusCAS(ctx, orderID, order.Status, to)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("order status changed, retry")
		}
		return s.repo.Save(ctx, refund)
	})
	if err != nil {
		zap.L().Error("can't create refund", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventRefundRequested,
		OrderNo: order.OrderNo,
		Message: "refund requested",
	})
	return refund, nil
}

// ApproveRefund is the club review accepting a refund. The money moves back
// to the user out of band; here the order becomes REFUNDED and the amount is
// deducted from the activity's settlement when it runs.
func (s *Service) ApproveRefund(ctx context.Context, clubID, refundID int) error {
	return s.review(ctx, clubID, refundID, domain.ActionApprove)
}

// RejectRefund declines the request and returns the order to PAID.
func (s *Service) RejectRefund(ctx context.Context, clubID, refundID int) error {
	return s.review(ctx, clubID, refundID, domain.ActionReject)
}

func (s *Service) review(ctx context.Context, clubID, refundID int, action domain.Action) error {
	refund, err := s.repo.FindByID(ctx, refundID)
	if err != nil {
		zap.L().Error("can't find refund", zap.Error(err))
		return err
	}
	if refund == nil {
		return apperrors.NotFound("refund not found")
	}
	order, err := s.orderRepo.FindByID(ctx, refund.OrderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return err
	}
	if order == nil {
		return apperrors.NotFound("order not found")
	}
	activity, err := s.activityRepo.FindByID(ctx, order.ActivityID)
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return err
	}
	if activity == nil || activity.ClubID != clubID {
		return apperrors.NotFound("refund not found")
	}

	refundTo, ok := domain.NextRefundStatus(refund.Status, action)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "refund in status %s cannot be reviewed", refund.Status)
	}
	orderTo, ok := domain.NextOrderStatus(order.Status, action)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "order in status %s is not under refund", order.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.repo.UpdateStatusCAS(ctx, refundID, refund.Status, refundTo)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("refund status changed, retry")
		}
		updated, err = s.orderRepo.UpdateStatusCAS(ctx, order.ID, order.Status, orderTo)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("order status changed, retry")
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't review refund", zap.Error(err))
		return err
	}

	eventType := notify.EventRefundApproved
	if action == domain.ActionReject {
		eventType = notify.EventRefundRejected
	}
	s.notifier.Notify(ctx, notify.Event{
		Type:    eventType,
		OrderNo: order.OrderNo,
		ClubID:  clubID,
		Message: "refund reviewed",
	})
	return nil
}

func (s *Service) quote(ctx context.Context, order *domain.Order) (*Quote, error) {
	if !domain.OrderRefundable(order.Status) {
		return &Quote{Reason: "order is not refundable in its current state"}, nil
	}
	pending, err := s.repo.FindPendingByOrderID(ctx, order.ID)
	if err != nil {
		zap.L().Error("can't find pending refund", zap.Error(err))
		return nil, err
	}
	if pending != nil {
		return &Quote{Reason: "refund already requested"}, nil
	}
	activity, err := s.activityRepo.FindByID(ctx, order.ActivityID)
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	if activity == nil {
		return nil, apperrors.NotFound("activity not found")
	}

	percent := s.percentFor(time.Until(activity.StartTime))
	if percent == 0 {
		return &Quote{Reason: "too close to activity start"}, nil
	}
	return &Quote{
		CanRefund: true,
		Percent:   percent,
		Amount:    round2(order.TotalAmount * float64(percent) / 100),
	}, nil
}

// percentFor picks the refund percent for a lead time. Brackets are sorted by
// lead descending, so the first match is the most generous one the lead
// qualifies for.
func (s *Service) percentFor(lead time.Duration) int {
	for _, b := range s.brackets {
		if lead >= b.MinLead {
			return b.Percent
		}
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

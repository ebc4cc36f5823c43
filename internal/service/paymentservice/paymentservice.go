package paymentservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/gateway"
	"github.com/fengzhui/fengzhui/internal/notify"
	"github.com/fengzhui/fengzhui/internal/pg"
)

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error)
	UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error)
	MarkPaid(ctx context.Context, id int, paidAt time.Time) (bool, error)
}

type PaymentRepo interface {
	Save(ctx context.Context, payment *domain.Payment) error
	FindByOrderID(ctx context.Context, orderID int) (*domain.Payment, error)
	SetPrepayParams(ctx context.Context, orderID int, params string) error
	Confirm(ctx context.Context, orderID int, transactionID, status string, confirmedAt time.Time) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notify.Event)
}

type Service struct {
	orderRepo   OrderRepo
	paymentRepo PaymentRepo
	gateway     gateway.ClientI
	txManager   pg.TXManager
	notifier    Notifier
}

func New(orderRepo OrderRepo, paymentRepo PaymentRepo, gw gateway.ClientI, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gw,
		txManager:   txManager,
		notifier:    notifier,
	}
}

// Prepay moves a PENDING order to PAYING and asks the gateway for signed
// client parameters. A gateway failure after the transition leaves the order
// in PAYING; SyncPaymentStatus resolves it either way.
func (s *Service) Prepay(ctx context.Context, userID, orderID int, openID string) (string, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return "", err
	}
	if order == nil || order.UserID != userID {
		return "", apperrors.NotFound("order not found")
	}
	to, ok := domain.NextOrderStatus(order.Status, domain.ActionPrepay)
	if !ok {
		return "", apperrors.Newf(apperrors.KindInvalidState, "order in status %s is not payable", order.Status)
	}

	updated, err := s.orderRepo.UpdateStatusCAS(ctx, orderID, order.Status, to)
	if err != nil {
		zap.L().Error("can't move order to paying", zap.Error(err))
		return "", err
	}
	if !updated {
		return "", apperrors.Conflict("order status changed, retry")
	}

	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return "", err
	}
	if payment == nil {
		payment = &domain.Payment{
			OrderID:   orderID,
			Status:    domain.PaymentCreated,
			CreatedAt: time.Now(),
		}
		if err := s.paymentRepo.Save(ctx, payment); err != nil {
			zap.L().Error("can't save payment", zap.Error(err))
			return "", err
		}
	}

	params, err := s.gateway.Prepay(ctx, order.OrderNo, order.TotalAmount, openID)
	if err != nil {
		zap.L().Error("prepay call failed, order left in paying",
			zap.String("orderNo", order.OrderNo), zap.Error(err))
		return "", err
	}
	if err := s.paymentRepo.SetPrepayParams(ctx, orderID, params); err != nil {
		return "", err
	}
	return params, nil
}

// ConfirmByOrderNo handles the gateway webhook. Replays of the same
// notification are acknowledged without touching state.
func (s *Service) ConfirmByOrderNo(ctx context.Context, orderNo, transactionID string) error {
	order, err := s.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return err
	}
	if order == nil {
		return apperrors.NotFound("order not found")
	}
	return s.confirm(ctx, order, transactionID)
}

// MockSuccess simulates a successful payment for a user's own order. Only
// reachable when the mock endpoint is enabled in the config.
func (s *Service) MockSuccess(ctx context.Context, userID, orderID int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return err
	}
	if order == nil || order.UserID != userID {
		return apperrors.NotFound("order not found")
	}
	return s.confirm(ctx, order, "mock-"+uuid.NewString())
}

func (s *Service) GetStatus(ctx context.Context, userID, orderID int) (*domain.Order, *domain.Payment, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, nil, apperrors.NotFound("order not found")
	}
	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, nil, err
	}
	return order, payment, nil
}

// SyncPaymentStatus reconciles a PAYING order against the gateway. SUCCESS
// confirms the payment; NOTPAY and CLOSED return the order to PENDING so the
// user can start over.
func (s *Service) SyncPaymentStatus(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperrors.NotFound("order not found")
	}
	if order.Status != domain.OrderPaying {
		return order, nil
	}

	status, transactionID, err := s.gateway.Query(ctx, order.OrderNo)
	if err != nil {
		zap.L().Error("gateway query failed", zap.String("orderNo", order.OrderNo), zap.Error(err))
		return nil, err
	}

	switch status {
	case gateway.StatusSuccess:
		if err := s.confirm(ctx, order, transactionID); err != nil {
			return nil, err
		}
	case gateway.StatusNotPay, gateway.StatusClosed:
		to, _ := domain.NextOrderStatus(domain.OrderPaying, domain.ActionPayFail)
		updated, err := s.orderRepo.UpdateStatusCAS(ctx, order.ID, domain.OrderPaying, to)
		if err != nil {
			return nil, err
		}
		if updated {
			order.Status = to
		}
		if status == gateway.StatusClosed {
			if _, err := s.paymentRepo.Confirm(ctx, order.ID, transactionID, domain.PaymentFailed, time.Now()); err != nil {
				return nil, err
			}
		}
	default:
		return nil, apperrors.Newf(apperrors.KindUnknown, "unexpected gateway status %s", status)
	}
	return order, nil
}

// confirm applies a successful payment exactly once. A repeat with the same
// transaction id is a no-op; a different transaction id on a paid order is
// rejected.
func (s *Service) confirm(ctx context.Context, order *domain.Order, transactionID string) error {
	if _, ok := domain.NextOrderStatus(order.Status, domain.ActionConfirmPay); !ok {
		payment, err := s.paymentRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			zap.L().Error("can't find payment", zap.Error(err))
			return err
		}
		if payment != nil && payment.Status == domain.PaymentSuccess && payment.TransactionID == transactionID {
			zap.L().Info("duplicate payment confirmation",
				zap.String("orderNo", order.OrderNo), zap.String("transactionID", transactionID))
			return nil
		}
		return apperrors.Newf(apperrors.KindInvalidState, "order in status %s cannot be confirmed", order.Status)
	}

	now := time.Now()
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.orderRepo.MarkPaid(ctx, order.ID, now)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("order status changed, retry")
		}
		confirmed, err := s.paymentRepo.Confirm(ctx, order.ID, transactionID, domain.PaymentSuccess, now)
		if err != nil {
			return err
		}
		if !confirmed {
			// rolls back MarkPaid, the order and its payment record never diverge
			return apperrors.Conflict("payment status changed, retry")
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't confirm payment", zap.Error(err))
		return err
	}
	order.Status = domain.OrderPaid
	order.PaidAt = &now

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventOrderPaid,
		OrderNo: order.OrderNo,
		Message: "payment confirmed",
	})
	return nil
}

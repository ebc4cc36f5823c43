package orderservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/notify"
	"github.com/fengzhui/fengzhui/internal/pg"
	"github.com/fengzhui/fengzhui/pkg/validate"
)

// insuranceFee is the flat per-order charge applied when insured details are
// provided.
const insuranceFee float64 = 20

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error)
	FindByVerifyCode(ctx context.Context, code string) (*domain.Order, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID int) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error)
	SaveVerification(ctx context.Context, v *domain.Verification) error
	FindVerificationByOrderID(ctx context.Context, orderID int) (*domain.Verification, error)
}

type EnrollmentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notify.Event)
}

type Service struct {
	repo           Repo
	enrollmentRepo EnrollmentRepo
	activityRepo   ActivityRepo
	txManager      pg.TXManager
	notifier       Notifier
}

func New(repo Repo, enrollmentRepo EnrollmentRepo, activityRepo ActivityRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		activityRepo:   activityRepo,
		txManager:      txManager,
		notifier:       notifier,
	}
}

// CreateOrder turns a live enrollment into a payable order. An enrollment
// backs at most one order; the unique index on enrollment_id backstops the
// lookup under races.
func (s *Service) CreateOrder(ctx context.Context, userID, enrollmentID int, insuredName, insuredPhone, insuredIDCard string) (*domain.Order, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, enrollmentID)
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	if enrollment == nil || enrollment.UserID != userID {
		return nil, apperrors.NotFound("enrollment not found")
	}
	if enrollment.Status == domain.EnrollmentCancelled {
		return nil, apperrors.InvalidState("enrollment is cancelled")
	}

	existing, err := s.repo.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		zap.L().Error("can't find order by enrollment", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already exists", zap.Int("enrollmentID", enrollmentID))
		return nil, apperrors.Conflict("order already exists for this enrollment")
	}

	var fee float64
	if insuredName != "" {
		fee = insuranceFee
	}
	order := &domain.Order{
		OrderNo:       generateOrderNo(),
		EnrollmentID:  enrollmentID,
		UserID:        userID,
		ActivityID:    enrollment.ActivityID,
		InsuredName:   insuredName,
		InsuredPhone:  insuredPhone,
		InsuredIDCard: insuredIDCard,
		Amount:        enrollment.Amount,
		InsuranceFee:  fee,
		TotalAmount:   enrollment.Amount + fee,
		Status:        domain.OrderPending,
		VerifyCode:    uuid.NewString(),
		CreatedAt:     time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, order); err != nil {
			return err
		}
		return s.enrollmentRepo.UpdateStatus(ctx, enrollmentID, domain.EnrollmentOrdered)
	})
	if err != nil {
		zap.L().Error("can't create order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, userID, id int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperrors.NotFound("order not found")
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// CancelOrder closes an unpaid order and frees its enrollment for a new one.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID int) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return err
	}
	if order == nil || order.UserID != userID {
		return apperrors.NotFound("order not found")
	}
	to, ok := domain.NextOrderStatus(order.Status, domain.ActionCancel)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "order in status %s cannot be cancelled", order.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.repo.UpdateStatusCAS(ctx, orderID, order.Status, to)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("order status changed, retry")
		}
		return s.enrollmentRepo.UpdateStatus(ctx, order.EnrollmentID, domain.EnrollmentPending)
	})
	if err != nil {
		zap.L().Error("can't cancel order", zap.Error(err))
		return err
	}
	return nil
}

// Verify checks an order in at the activity site. The code may be either the
// verify code shown to the user or the order number. The first successful
// verification wins; the unique index on verifications.order_id backstops the
// lookup under concurrent check-ins.
func (s *Service) Verify(ctx context.Context, verifierID, clubID int, code string) (*domain.Order, error) {
	order, err := s.repo.FindByVerifyCode(ctx, code)
	if err != nil {
		zap.L().Error("can't find order by verify code", zap.Error(err))
		return nil, err
	}
	if order == nil {
		order, err = s.repo.FindByOrderNo(ctx, code)
		if err != nil {
			zap.L().Error("can't find order by number", zap.Error(err))
			return nil, err
		}
	}
	if order == nil {
		return nil, apperrors.NotFound("order not found")
	}

	activity, err := s.activityRepo.FindByID(ctx, order.ActivityID)
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	if activity == nil || activity.ClubID != clubID {
		return nil, apperrors.NotFound("order not found")
	}

	if !domain.OrderVerifiable(order.Status) {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "order in status %s cannot be verified", order.Status)
	}
	existing, err := s.repo.FindVerificationByOrderID(ctx, order.ID)
	if err != nil {
		zap.L().Error("can't find verification", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("order already verified")
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveVerification(ctx, &domain.Verification{
			OrderID:    order.ID,
			VerifiedAt: time.Now(),
			VerifiedBy: verifierID,
		}); err != nil {
			return err
		}
		if order.Status == domain.OrderPaid {
			to, _ := domain.NextOrderStatus(domain.OrderPaid, domain.ActionComplete)
			updated, err := s.repo.UpdateStatusCAS(ctx, order.ID, domain.OrderPaid, to)
			if err != nil {
				return err
			}
			if !updated {
				return apperrors.Conflict("order status changed, retry")
			}
			order.Status = to
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't verify order", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventOrderVerified,
		OrderNo: order.OrderNo,
		ClubID:  clubID,
		Message: "order checked in",
	})
	return order, nil
}

// generateOrderNo builds a Luhn-valid order number from a millisecond
// timestamp and a random suffix.
func generateOrderNo() string {
	base := fmt.Sprintf("%d%04d", time.Now().UnixMilli(), rand.Intn(10000))
	return validate.LuhnComplete(base)
}

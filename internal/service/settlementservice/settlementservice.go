package settlementservice

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/notify"
	"github.com/fengzhui/fengzhui/internal/pg"
)

// activityCompleted is the activity lifecycle state settlement waits for; the
// lifecycle itself is owned outside the order core.
const activityCompleted = "COMPLETED"

type Repo interface {
	Save(ctx context.Context, settlement *domain.Settlement) error
	FindByActivityID(ctx context.Context, activityID int) (*domain.Settlement, error)
	SumPaidOrders(ctx context.Context, activityID int) (float64, error)
}

type RefundRepo interface {
	SumCompletedByActivity(ctx context.Context, activityID int) (float64, error)
	CountPendingByActivity(ctx context.Context, activityID int) (int, error)
}

type AccountRepo interface {
	GetByClubID(ctx context.Context, clubID int) (*domain.ClubAccount, error)
	CreateForClub(ctx context.Context, clubID int) (*domain.ClubAccount, error)
	CreditSettlement(ctx context.Context, clubID int, amount float64) error
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notify.Event)
}

type Service struct {
	repo         Repo
	refundRepo   RefundRepo
	accountRepo  AccountRepo
	activityRepo ActivityRepo
	txManager    pg.TXManager
	notifier     Notifier
	feePct       float64
}

func New(repo Repo, refundRepo RefundRepo, accountRepo AccountRepo, activityRepo ActivityRepo, txManager pg.TXManager, notifier Notifier, feePct float64) *Service {
	return &Service{
		repo:         repo,
		refundRepo:   refundRepo,
		accountRepo:  accountRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		notifier:     notifier,
		feePct:       feePct,
	}
}

// ComputeSettlement settles a completed activity exactly once: gross paid
// orders, minus refunds actually returned, minus the platform fee on the
// remainder, credited to the club account. The unique index on
// settlements.activity_id backstops the pre-check under races.
func (s *Service) ComputeSettlement(ctx context.Context, clubID, activityID int) (*domain.Settlement, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	if activity == nil || activity.ClubID != clubID {
		return nil, apperrors.NotFound("activity not found")
	}
	if activity.Status != activityCompleted {
		return nil, apperrors.InvalidState("activity has not completed yet")
	}

	existing, err := s.repo.FindByActivityID(ctx, activityID)
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("activity already settled")
	}

	// a REFUNDING order is neither club revenue nor a completed refund yet;
	// the settlement is immutable once written, so it waits for the reviews
	pending, err := s.refundRepo.CountPendingByActivity(ctx, activityID)
	if err != nil {
		zap.L().Error("can't count pending refunds", zap.Error(err))
		return nil, err
	}
	if pending > 0 {
		return nil, apperrors.InvalidState("activity has refund requests awaiting review")
	}

	var settlement *domain.Settlement
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		gross, err := s.repo.SumPaidOrders(ctx, activityID)
		if err != nil {
			return err
		}
		refunded, err := s.refundRepo.SumCompletedByActivity(ctx, activityID)
		if err != nil {
			return err
		}
		net := gross - refunded
		fee := round2(net * s.feePct / 100)
		settlement = &domain.Settlement{
			ActivityID:   activityID,
			ClubID:       activity.ClubID,
			TotalAmount:  gross,
			PlatformFee:  fee,
			RefundAmount: refunded,
			SettleAmount: round2(net - fee),
			Status:       domain.SettlementCompleted,
			CreatedAt:    time.Now(),
		}
		if err := s.repo.Save(ctx, settlement); err != nil {
			return err
		}

		account, err := s.accountRepo.GetByClubID(ctx, activity.ClubID)
		if err != nil {
			return err
		}
		if account == nil {
			if _, err := s.accountRepo.CreateForClub(ctx, activity.ClubID); err != nil {
				return err
			}
		}
		return s.accountRepo.CreditSettlement(ctx, activity.ClubID, settlement.SettleAmount)
	})
	if err != nil {
		zap.L().Error("can't settle activity", zap.Int("activityID", activityID), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventSettlementDone,
		ClubID:  activity.ClubID,
		Message: "activity settled",
	})
	return settlement, nil
}

func (s *Service) GetSettlement(ctx context.Context, clubID, activityID int) (*domain.Settlement, error) {
	settlement, err := s.repo.FindByActivityID(ctx, activityID)
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	if settlement == nil || settlement.ClubID != clubID {
		return nil, apperrors.NotFound("settlement not found")
	}
	return settlement, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

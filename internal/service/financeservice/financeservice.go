package financeservice

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

type AccountRepo interface {
	GetByClubID(ctx context.Context, clubID int) (*domain.ClubAccount, error)
	Freeze(ctx context.Context, clubID int, amount float64) (bool, error)
	Unfreeze(ctx context.Context, clubID int, amount float64) error
	CommitWithdrawal(ctx context.Context, clubID int, amount float64) error
}

type WithdrawalRepo interface {
	Save(ctx context.Context, withdrawal *domain.Withdrawal) error
	FindByID(ctx context.Context, id int) (*domain.Withdrawal, error)
	FindByClubID(ctx context.Context, clubID int) ([]domain.Withdrawal, error)
	UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error)
}

type ClubRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Club, error)
}

type Notifier interface {
	Notify(ctx context.Context, event notify.Event)
}

type Service struct {
	accountRepo    AccountRepo
	withdrawalRepo WithdrawalRepo
	clubRepo       ClubRepo
	txManager      pg.TXManager
	notifier       Notifier
	withdrawalMin  float64
	feePct         float64
}

func New(accountRepo AccountRepo, withdrawalRepo WithdrawalRepo, clubRepo ClubRepo, txManager pg.TXManager, notifier Notifier, withdrawalMin, feePct float64) *Service {
	return &Service{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		clubRepo:       clubRepo,
		txManager:      txManager,
		notifier:       notifier,
		withdrawalMin:  withdrawalMin,
		feePct:         feePct,
	}
}

func (s *Service) GetAccount(ctx context.Context, clubID int) (*domain.ClubAccount, error) {
	account, err := s.accountRepo.GetByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("can't get club account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, apperrors.NotFound("club account not found")
	}
	return account, nil
}

// CreateWithdrawal freezes the requested amount and files a PENDING request.
// The freeze is a single guarded update, so concurrent requests can never
// overdraw the available balance.
func (s *Service) CreateWithdrawal(ctx context.Context, clubID int, amount float64) (*domain.Withdrawal, error) {
	if amount < s.withdrawalMin {
		return nil, apperrors.Newf(apperrors.KindValidation, "withdrawal amount must be at least %.2f", s.withdrawalMin)
	}
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		zap.L().Error("can't find club", zap.Error(err))
		return nil, err
	}
	if club == nil {
		return nil, apperrors.NotFound("club not found")
	}
	if club.BankAccount == "" {
		return nil, apperrors.Precondition("no bank account on file")
	}
	account, err := s.accountRepo.GetByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("can't get club account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, apperrors.NotFound("club account not found")
	}

	// the full amount leaves the balance; the fee stays with the platform and
	// only the remainder is wired to the club
	fee := round2(amount * s.feePct / 100)
	withdrawal := &domain.Withdrawal{
		ClubID:       clubID,
		Amount:       amount,
		Fee:          fee,
		ActualAmount: round2(amount - fee),
		Status:       domain.WithdrawalPending,
		CreatedAt:    time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		frozen, err := s.accountRepo.Freeze(ctx, clubID, amount)
		if err != nil {
			return err
		}
		if !frozen {
			return apperrors.Validation("amount exceeds available balance")
		}
		return s.withdrawalRepo.Save(ctx, withdrawal)
	})
	if err != nil {
		zap.L().Error("can't create withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, clubID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.FindByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("can't list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// ApproveWithdrawal accepts a PENDING request for payout. The frozen funds
// stay frozen until the transfer is confirmed with CompleteWithdrawal.
func (s *Service) ApproveWithdrawal(ctx context.Context, id int) error {
	withdrawal, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	to, ok := domain.NextWithdrawalStatus(withdrawal.Status, domain.ActionApprove)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "withdrawal in status %s cannot be approved", withdrawal.Status)
	}
	updated, err := s.withdrawalRepo.UpdateStatusCAS(ctx, id, withdrawal.Status, to)
	if err != nil {
		zap.L().Error("can't approve withdrawal", zap.Error(err))
		return err
	}
	if !updated {
		return apperrors.Conflict("withdrawal status changed, retry")
	}
	return nil
}

// CompleteWithdrawal records that the bank transfer went out: the frozen
// amount leaves the balance for good.
func (s *Service) CompleteWithdrawal(ctx context.Context, id int) error {
	withdrawal, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	to, ok := domain.NextWithdrawalStatus(withdrawal.Status, domain.ActionComplete)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "withdrawal in status %s cannot be completed", withdrawal.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.withdrawalRepo.UpdateStatusCAS(ctx, id, withdrawal.Status, to)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("withdrawal status changed, retry")
		}
		return s.accountRepo.CommitWithdrawal(ctx, withdrawal.ClubID, withdrawal.Amount)
	})
	if err != nil {
		zap.L().Error("can't complete withdrawal", zap.Error(err))
		return err
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventWithdrawalPaid,
		ClubID:  withdrawal.ClubID,
		Message: "withdrawal paid out",
	})
	return nil
}

// RejectWithdrawal declines a PENDING request and releases the frozen funds.
func (s *Service) RejectWithdrawal(ctx context.Context, id int) error {
	withdrawal, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	to, ok := domain.NextWithdrawalStatus(withdrawal.Status, domain.ActionReject)
	if !ok {
		return apperrors.Newf(apperrors.KindInvalidState, "withdrawal in status %s cannot be rejected", withdrawal.Status)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.withdrawalRepo.UpdateStatusCAS(ctx, id, withdrawal.Status, to)
		if err != nil {
			return err
		}
		if !updated {
			return apperrors.Conflict("withdrawal status changed, retry")
		}
		return s.accountRepo.Unfreeze(ctx, withdrawal.ClubID, withdrawal.Amount)
	})
	if err != nil {
		zap.L().Error("can't reject withdrawal", zap.Error(err))
		return err
	}

	s.notifier.Notify(ctx, notify.Event{
		Type:    notify.EventWithdrawalDenied,
		ClubID:  withdrawal.ClubID,
		Message: "withdrawal rejected",
	})
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *Service) find(ctx context.Context, id int) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	if withdrawal == nil {
		return nil, apperrors.NotFound("withdrawal not found")
	}
	return withdrawal, nil
}

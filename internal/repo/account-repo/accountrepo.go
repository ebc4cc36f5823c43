package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
	"go.uber.org/zap"
)

// Repository owns the club ledger. Every mutation is a single conditional
// UPDATE with the invariant in the WHERE clause; balances are never
// read-modify-written across statements.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByClubID(ctx context.Context, clubID int) (*domain.ClubAccount, error) {
	query := `
        SELECT id, club_id, balance, frozen_balance, total_income, total_withdraw
        FROM club_accounts
        WHERE club_id = $1
    `
	var account domain.ClubAccount
	err := r.db.QueryRow(ctx, query, clubID).Scan(
		&account.ID, &account.ClubID, &account.Balance, &account.FrozenBalance,
		&account.TotalIncome, &account.TotalWithdraw,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get club account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) CreateForClub(ctx context.Context, clubID int) (*domain.ClubAccount, error) {
	query := `
        INSERT INTO club_accounts (club_id, balance, frozen_balance, total_income, total_withdraw)
        VALUES ($1, 0, 0, 0, 0)
        RETURNING id, club_id, balance, frozen_balance, total_income, total_withdraw
    `
	var account domain.ClubAccount
	err := r.db.QueryRow(ctx, query, clubID).Scan(
		&account.ID, &account.ClubID, &account.Balance, &account.FrozenBalance,
		&account.TotalIncome, &account.TotalWithdraw,
	)
	if err != nil {
		zap.L().Error("can't create club account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// CreditSettlement adds a settlement payout to the ledger.
func (r *Repository) CreditSettlement(ctx context.Context, clubID int, amount float64) error {
	query := `
        UPDATE club_accounts
        SET balance = balance + $1, total_income = total_income + $1
        WHERE club_id = $2
    `
	tag, err := r.db.Exec(ctx, query, amount, clubID)
	if err != nil {
		zap.L().Error("can't credit club account", zap.Error(err))
		return err
	}
	if tag.RowsAffected() != 1 {
		return errors.New("club account not found")
	}
	return nil
}

// Freeze earmarks amount for a pending withdrawal. The availability check
// lives in the WHERE clause so two concurrent withdrawals cannot both pass it.
func (r *Repository) Freeze(ctx context.Context, clubID int, amount float64) (bool, error) {
	query := `
        UPDATE club_accounts
        SET frozen_balance = frozen_balance + $1
        WHERE club_id = $2 AND balance - frozen_balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, clubID)
	if err != nil {
		zap.L().Error("can't freeze balance", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Unfreeze returns a rejected withdrawal's amount to the available balance.
func (r *Repository) Unfreeze(ctx context.Context, clubID int, amount float64) error {
	query := `
        UPDATE club_accounts
        SET frozen_balance = frozen_balance - $1
        WHERE club_id = $2 AND frozen_balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, clubID)
	if err != nil {
		zap.L().Error("can't unfreeze balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() != 1 {
		return errors.New("frozen balance underflow")
	}
	return nil
}

// CommitWithdrawal moves a completed withdrawal out of the ledger.
func (r *Repository) CommitWithdrawal(ctx context.Context, clubID int, amount float64) error {
	query := `
        UPDATE club_accounts
        SET balance = balance - $1,
            frozen_balance = frozen_balance - $1,
            total_withdraw = total_withdraw + $1
        WHERE club_id = $2 AND frozen_balance >= $1 AND balance >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, clubID)
	if err != nil {
		zap.L().Error("can't commit withdrawal", zap.Error(err))
		return err
	}
	if tag.RowsAffected() != 1 {
		return errors.New("ledger underflow on withdrawal commit")
	}
	return nil
}

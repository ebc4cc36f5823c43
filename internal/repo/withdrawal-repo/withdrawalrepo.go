package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, withdrawal *domain.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (club_id, amount, fee, actual_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.ClubID, withdrawal.Amount, withdrawal.Fee,
		withdrawal.ActualAmount, withdrawal.Status, withdrawal.CreatedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT id, club_id, amount, fee, actual_amount, status, created_at
        FROM withdrawals
        WHERE id = $1
    `
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&wd.ID, &wd.ClubID, &wd.Amount, &wd.Fee, &wd.ActualAmount, &wd.Status, &wd.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) FindByClubID(ctx context.Context, clubID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, club_id, amount, fee, actual_amount, status, created_at
        FROM withdrawals
        WHERE club_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.ClubID, &wd.Amount, &wd.Fee, &wd.ActualAmount, &wd.Status, &wd.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, nil
}

func (r *Repository) UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE withdrawals
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

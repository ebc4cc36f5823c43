package settlementrepo

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
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, settlement *domain.Settlement) error {
	query := `
        INSERT INTO settlements (activity_id, club_id, total_amount, platform_fee, refund_amount, settle_amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		settlement.ActivityID, settlement.ClubID, settlement.TotalAmount,
		settlement.PlatformFee, settlement.RefundAmount, settlement.SettleAmount,
		settlement.Status, settlement.CreatedAt,
	).Scan(&settlement.ID)
	if err != nil {
		zap.L().Error("can't save settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByActivityID(ctx context.Context, activityID int) (*domain.Settlement, error) {
	query := `
        SELECT id, activity_id, club_id, total_amount, platform_fee, refund_amount, settle_amount, status, created_at
        FROM settlements
        WHERE activity_id = $1
    `
	var s domain.Settlement
	err := r.db.QueryRow(ctx, query, activityID).Scan(
		&s.ID, &s.ActivityID, &s.ClubID, &s.TotalAmount, &s.PlatformFee,
		&s.RefundAmount, &s.SettleAmount, &s.Status, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find settlement", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

// SumPaidOrders totals every order that went through payment for the
// activity, including refunded ones; the refund side is subtracted separately.
// REFUNDING is absent from the list because settlement does not run while a
// refund review is still open.
func (r *Repository) SumPaidOrders(ctx context.Context, activityID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE activity_id = $1 AND status IN ('PAID', 'COMPLETED', 'REFUNDED')
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&sum); err != nil {
		zap.L().Error("can't sum paid orders", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

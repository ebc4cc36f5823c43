package refundrepo

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

func (r *Repository) Save(ctx context.Context, refund *domain.Refund) error {
	query := `
        INSERT INTO refunds (order_id, reason, reason_detail, refund_amount, refund_percent, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		refund.OrderID, refund.Reason, refund.ReasonDetail,
		refund.RefundAmount, refund.RefundPercent, refund.Status, refund.CreatedAt,
	).Scan(&refund.ID)
	if err != nil {
		zap.L().Error("can't save refund", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Refund, error) {
	query := `
        SELECT id, order_id, reason, reason_detail, refund_amount, refund_percent, status, created_at
        FROM refunds
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindPendingByOrderID returns the open refund request for an order, if any.
func (r *Repository) FindPendingByOrderID(ctx context.Context, orderID int) (*domain.Refund, error) {
	query := `
        SELECT id, order_id, reason, reason_detail, refund_amount, refund_percent, status, created_at
        FROM refunds
        WHERE order_id = $1 AND status = 'PENDING'
    `
	return r.scanOne(r.db.QueryRow(ctx, query, orderID))
}

func (r *Repository) UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE refunds
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update refund status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountPendingByActivity counts refund requests still awaiting review across
// an activity's orders. Settlement refuses to run while any remain.
func (r *Repository) CountPendingByActivity(ctx context.Context, activityID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM refunds r
        JOIN orders o ON o.id = r.order_id
        WHERE o.activity_id = $1 AND r.status = 'PENDING'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&count); err != nil {
		zap.L().Error("can't count pending refunds", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// SumCompletedByActivity totals the money actually returned to users for an
// activity's orders. Feeds the settlement computation.
func (r *Repository) SumCompletedByActivity(ctx context.Context, activityID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(r.refund_amount), 0)
        FROM refunds r
        JOIN orders o ON o.id = r.order_id
        WHERE o.activity_id = $1 AND r.status = 'COMPLETED'
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, activityID).Scan(&sum); err != nil {
		zap.L().Error("can't sum refunds", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Refund, error) {
	var refund domain.Refund
	err := row.Scan(
		&refund.ID, &refund.OrderID, &refund.Reason, &refund.ReasonDetail,
		&refund.RefundAmount, &refund.RefundPercent, &refund.Status, &refund.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan refund", zap.Error(err))
		return nil, err
	}
	return &refund, nil
}

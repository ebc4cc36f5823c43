package paymentrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	query := `
        INSERT INTO payments (order_id, status, transaction_id, prepay_params, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payment.OrderID, payment.Status, payment.TransactionID, payment.PrepayParams, payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID int) (*domain.Payment, error) {
	query := `
        SELECT id, order_id, status, transaction_id, prepay_params, created_at, confirmed_at
        FROM payments
        WHERE order_id = $1
    `
	var p domain.Payment
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&p.ID, &p.OrderID, &p.Status, &p.TransactionID, &p.PrepayParams, &p.CreatedAt, &p.ConfirmedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// SetPrepayParams stores the signed gateway parameters after a prepay call.
func (r *Repository) SetPrepayParams(ctx context.Context, orderID int, params string) error {
	query := `
        UPDATE payments
        SET prepay_params = $1
        WHERE order_id = $2
    `
	_, err := r.db.Exec(ctx, query, params, orderID)
	if err != nil {
		zap.L().Error("can't set prepay params", zap.Error(err))
		return err
	}
	return nil
}

// Confirm records the gateway outcome. Conditional on status CREATED or
// FAILED so a duplicate confirmation never overwrites the first successful
// transaction id; a FAILED row from an earlier closed attempt is reusable
// after the user retries the payment.
func (r *Repository) Confirm(ctx context.Context, orderID int, transactionID, status string, confirmedAt time.Time) (bool, error) {
	query := `
        UPDATE payments
        SET status = $1, transaction_id = $2, confirmed_at = $3
        WHERE order_id = $4 AND status IN ($5, $6)
    `
	tag, err := r.db.Exec(ctx, query, status, transactionID, confirmedAt, orderID, domain.PaymentCreated, domain.PaymentFailed)
	if err != nil {
		zap.L().Error("can't confirm payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

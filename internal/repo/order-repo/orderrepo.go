package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, order_no, enrollment_id, user_id, activity_id,
        insured_name, insured_phone, insured_id_card,
        amount, insurance_fee, total_amount, status, verify_code, paid_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (order_no, enrollment_id, user_id, activity_id,
            insured_name, insured_phone, insured_id_card,
            amount, insurance_fee, total_amount, status, verify_code, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		order.OrderNo, order.EnrollmentID, order.UserID, order.ActivityID,
		order.InsuredName, order.InsuredPhone, order.InsuredIDCard,
		order.Amount, order.InsuranceFee, order.TotalAmount, order.Status,
		order.VerifyCode, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindByOrderNo(ctx context.Context, orderNo string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_no = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, orderNo))
}

func (r *Repository) FindByVerifyCode(ctx context.Context, code string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE verify_code = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, code))
}

func (r *Repository) FindByEnrollmentID(ctx context.Context, enrollmentID int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE enrollment_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, enrollmentID))
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateStatusCAS flips status from->to in one conditional update. Returns
// false when another writer got there first, which is how concurrent webhook
// and refund/verify races are rejected.
func (r *Repository) UpdateStatusCAS(ctx context.Context, id int, from, to string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkPaid is the PAYING->PAID transition; it also stamps paid_at.
func (r *Repository) MarkPaid(ctx context.Context, id int, paidAt time.Time) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, paid_at = $2
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.OrderPaid, paidAt, id, domain.OrderPaying)
	if err != nil {
		zap.L().Error("can't mark order paid", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SaveVerification(ctx context.Context, v *domain.Verification) error {
	query := `
        INSERT INTO verifications (order_id, verified_at, verified_by)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, v.OrderID, v.VerifiedAt, v.VerifiedBy).Scan(&v.ID)
	if err != nil {
		zap.L().Error("can't save verification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindVerificationByOrderID(ctx context.Context, orderID int) (*domain.Verification, error) {
	query := `
        SELECT id, order_id, verified_at, verified_by
        FROM verifications
        WHERE order_id = $1
    `
	var v domain.Verification
	err := r.db.QueryRow(ctx, query, orderID).Scan(&v.ID, &v.OrderID, &v.VerifiedAt, &v.VerifiedBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find verification", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Order, error) {
	order, err := r.scanRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) scanRow(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.OrderNo, &order.EnrollmentID, &order.UserID, &order.ActivityID,
		&order.InsuredName, &order.InsuredPhone, &order.InsuredIDCard,
		&order.Amount, &order.InsuranceFee, &order.TotalAmount, &order.Status,
		&order.VerifyCode, &order.PaidAt, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func orderRows(order domain.Order) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "order_no", "enrollment_id", "user_id", "activity_id",
		"insured_name", "insured_phone", "insured_id_card",
		"amount", "insurance_fee", "total_amount", "status", "verify_code", "paid_at", "created_at",
	}).AddRow(
		order.ID, order.OrderNo, order.EnrollmentID, order.UserID, order.ActivityID,
		order.InsuredName, order.InsuredPhone, order.InsuredIDCard,
		order.Amount, order.InsuranceFee, order.TotalAmount, order.Status,
		order.VerifyCode, order.PaidAt, order.CreatedAt,
	)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	order := domain.Order{
		ID: 1, OrderNo: "7992739871", EnrollmentID: 2, UserID: 3, ActivityID: 4,
		Amount: 200, InsuranceFee: 20, TotalAmount: 220,
		Status: domain.OrderPending, VerifyCode: "vc-1", CreatedAt: now,
	}

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "existing order",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
					WithArgs(1).
					WillReturnRows(orderRows(order))
			},
			result: &order,
		},
		{
			name: "missing order returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	order := &domain.Order{
		OrderNo: "7992739871", EnrollmentID: 2, UserID: 3, ActivityID: 4,
		InsuredName: "Zhang Wei", InsuredPhone: "13800138000",
		Amount: 200, InsuranceFee: 20, TotalAmount: 220,
		Status: domain.OrderPending, VerifyCode: "vc-1", CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.OrderNo, order.EnrollmentID, order.UserID, order.ActivityID,
			order.InsuredName, order.InsuredPhone, order.InsuredIDCard,
			order.Amount, order.InsuranceFee, order.TotalAmount, order.Status,
			order.VerifyCode, order.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))

	err := repo.Save(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, 10, order.ID)
}

func TestRepository_UpdateStatusCAS(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3
    `)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name: "first writer wins",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.OrderPaying, 1, domain.OrderPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			updated: true,
		},
		{
			name: "second writer is rejected",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.OrderPaying, 1, domain.OrderPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			updated: false,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.OrderPaying, 1, domain.OrderPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateStatusCAS(context.Background(), 1, domain.OrderPending, domain.OrderPaying)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)

	paidAt := time.Now()
	query := regexp.QuoteMeta(`
        UPDATE orders
        SET status = $1, paid_at = $2
        WHERE id = $3 AND status = $4
    `)

	mock.ExpectExec(query).
		WithArgs(domain.OrderPaid, paidAt, 1, domain.OrderPaying).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.MarkPaid(context.Background(), 1, paidAt)
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(query).
		WithArgs(domain.OrderPaid, paidAt, 1, domain.OrderPaying).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err = repo.MarkPaid(context.Background(), 1, paidAt)
	assert.NoError(t, err)
	assert.False(t, updated)
}

func TestRepository_Verifications(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO verifications").
		WithArgs(1, now, 7).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

	v := &domain.Verification{OrderID: 1, VerifiedAt: now, VerifiedBy: 7}
	err := repo.SaveVerification(context.Background(), v)
	assert.NoError(t, err)
	assert.Equal(t, 3, v.ID)

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "verified_at", "verified_by"}).
			AddRow(3, 1, now, 7))

	found, err := repo.FindVerificationByOrderID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, v, found)

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WithArgs(2).
		WillReturnError(pgx.ErrNoRows)

	found, err = repo.FindVerificationByOrderID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/fengzhui/fengzhui/internal/domain"
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

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	wd := &domain.Withdrawal{
		ClubID: 7, Amount: 500, Fee: 0, ActualAmount: 500,
		Status: domain.WithdrawalPending, CreatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO withdrawals").
		WithArgs(7, 500.0, 0.0, 500.0, domain.WithdrawalPending, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.Save(context.Background(), wd)
	assert.NoError(t, err)
	assert.Equal(t, 1, wd.ID)
}

func TestRepository_FindByClubID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "returns club withdrawals",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "club_id", "amount", "fee", "actual_amount", "status", "created_at"}).
					AddRow(1, 7, 500.0, 0.0, 500.0, domain.WithdrawalPending, now).
					AddRow(2, 7, 300.0, 0.0, 300.0, domain.WithdrawalCompleted, now)
				mock.ExpectQuery("SELECT (.+) FROM withdrawals").
					WithArgs(7).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT (.+) FROM withdrawals").
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			withdrawals, err := repo.FindByClubID(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, withdrawals, tt.count)
		})
	}
}

func TestRepository_UpdateStatusCAS(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE withdrawals
        SET status = $1
        WHERE id = $2 AND status = $3
    `)

	mock.ExpectExec(query).
		WithArgs(domain.WithdrawalApproved, 1, domain.WithdrawalPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.UpdateStatusCAS(context.Background(), 1, domain.WithdrawalPending, domain.WithdrawalApproved)
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(query).
		WithArgs(domain.WithdrawalApproved, 1, domain.WithdrawalPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err = repo.UpdateStatusCAS(context.Background(), 1, domain.WithdrawalPending, domain.WithdrawalApproved)
	assert.NoError(t, err)
	assert.False(t, updated)
}

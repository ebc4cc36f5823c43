package financeservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
)

type mocks struct {
	accountRepo    *MockAccountRepo
	withdrawalRepo *MockWithdrawalRepo
	clubRepo       *MockClubRepo
	txManager      *pg.MockTXManager
	notifier       *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		accountRepo:    NewMockAccountRepo(ctrl),
		withdrawalRepo: NewMockWithdrawalRepo(ctrl),
		clubRepo:       NewMockClubRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
		notifier:       NewMockNotifier(ctrl),
	}
	service := New(m.accountRepo, m.withdrawalRepo, m.clubRepo, m.txManager, m.notifier, 100, 1)
	defer ctrl.Finish()
	return service, m
}

func inTx(m *mocks) *gomock.Call {
	return m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func bankedClub() *domain.Club {
	return &domain.Club{ID: 5, Name: "Summit", BankName: "CMB", BankAccount: "6226090012345678", BankHolder: "Summit Outdoor"}
}

func TestCreateWithdrawal(t *testing.T) {
	service, m := NewMock(t)

	account := &domain.ClubAccount{ClubID: 5, Balance: 1000, FrozenBalance: 0}

	tests := []struct {
		name         string
		amount       float64
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name:   "successful request freezes the amount",
			amount: 500,
			prepareMock: func() {
				m.clubRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bankedClub(), nil)
				m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(account, nil)
				inTx(m)
				m.accountRepo.EXPECT().Freeze(gomock.Any(), 5, 500.0).Return(true, nil)
				m.withdrawalRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:         "below the minimum",
			amount:       50,
			prepareMock:  func() {},
			expectedKind: apperrors.KindValidation,
			expectedErr:  true,
		},
		{
			name:   "no bank account on file",
			amount: 500,
			prepareMock: func() {
				club := bankedClub()
				club.BankAccount = ""
				m.clubRepo.EXPECT().FindByID(gomock.Any(), 5).Return(club, nil)
			},
			expectedKind: apperrors.KindPrecondition,
			expectedErr:  true,
		},
		{
			name:   "exceeds available balance",
			amount: 2000,
			prepareMock: func() {
				m.clubRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bankedClub(), nil)
				m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(account, nil)
				inTx(m)
				m.accountRepo.EXPECT().Freeze(gomock.Any(), 5, 2000.0).Return(false, nil)
			},
			expectedKind: apperrors.KindValidation,
			expectedErr:  true,
		},
		{
			name:   "no account yet",
			amount: 500,
			prepareMock: func() {
				m.clubRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bankedClub(), nil)
				m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawal, err := service.CreateWithdrawal(context.Background(), 5, tt.amount)
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.WithdrawalPending, withdrawal.Status)
			assert.Equal(t, tt.amount, withdrawal.Amount)
			assert.Equal(t, round2(tt.amount/100), withdrawal.Fee)
			assert.Equal(t, round2(tt.amount-withdrawal.Fee), withdrawal.ActualAmount)
		})
	}
}

// The payout fee comes off the amount wired out, never off the balance debit.
func TestWithdrawalFee(t *testing.T) {
	service, m := NewMock(t)

	m.clubRepo.EXPECT().FindByID(gomock.Any(), 5).Return(bankedClub(), nil)
	m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(
		&domain.ClubAccount{ClubID: 5, Balance: 1000}, nil)
	inTx(m)
	m.accountRepo.EXPECT().Freeze(gomock.Any(), 5, 333.0).Return(true, nil)
	m.withdrawalRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	withdrawal, err := service.CreateWithdrawal(context.Background(), 5, 333)
	assert.NoError(t, err)
	assert.Equal(t, 3.33, withdrawal.Fee)
	assert.Equal(t, 329.67, withdrawal.ActualAmount)
}

func TestWithdrawalLifecycle(t *testing.T) {
	service, m := NewMock(t)

	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{ID: 4, ClubID: 5, Amount: 500, Status: domain.WithdrawalPending}
	}
	approved := func() *domain.Withdrawal {
		w := pending()
		w.Status = domain.WithdrawalApproved
		return w
	}

	t.Run("approve", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		m.withdrawalRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 4, domain.WithdrawalPending, domain.WithdrawalApproved).Return(true, nil)

		assert.NoError(t, service.ApproveWithdrawal(context.Background(), 4))
	})

	t.Run("complete commits the frozen funds", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(approved(), nil)
		inTx(m)
		m.withdrawalRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 4, domain.WithdrawalApproved, domain.WithdrawalCompleted).Return(true, nil)
		m.accountRepo.EXPECT().CommitWithdrawal(gomock.Any(), 5, 500.0).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		assert.NoError(t, service.CompleteWithdrawal(context.Background(), 4))
	})

	t.Run("reject releases the frozen funds", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		inTx(m)
		m.withdrawalRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 4, domain.WithdrawalPending, domain.WithdrawalRejected).Return(true, nil)
		m.accountRepo.EXPECT().Unfreeze(gomock.Any(), 5, 500.0).Return(nil)
		m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		assert.NoError(t, service.RejectWithdrawal(context.Background(), 4))
	})

	t.Run("complete before approve is rejected", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)

		err := service.CompleteWithdrawal(context.Background(), 4)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
	})

	t.Run("approve race loses", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(pending(), nil)
		m.withdrawalRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 4, domain.WithdrawalPending, domain.WithdrawalApproved).Return(false, nil)

		err := service.ApproveWithdrawal(context.Background(), 4)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("not found", func(t *testing.T) {
		m.withdrawalRepo.EXPECT().FindByID(gomock.Any(), 4).Return(nil, nil)

		err := service.ApproveWithdrawal(context.Background(), 4)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func TestGetAccount(t *testing.T) {
	service, m := NewMock(t)

	t.Run("existing account", func(t *testing.T) {
		m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(
			&domain.ClubAccount{ClubID: 5, Balance: 1000, FrozenBalance: 300}, nil)

		account, err := service.GetAccount(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, 700.0, account.Available())
	})

	t.Run("missing account", func(t *testing.T) {
		m.accountRepo.EXPECT().GetByClubID(gomock.Any(), 5).Return(nil, nil)

		_, err := service.GetAccount(context.Background(), 5)
		assert.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

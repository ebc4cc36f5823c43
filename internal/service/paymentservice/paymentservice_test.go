package paymentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/gateway"
	"github.com/fengzhui/fengzhui/internal/pg"
)

type mocks struct {
	orderRepo   *MockOrderRepo
	paymentRepo *MockPaymentRepo
	gateway     *gateway.MockClientI
	txManager   *pg.MockTXManager
	notifier    *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orderRepo:   NewMockOrderRepo(ctrl),
		paymentRepo: NewMockPaymentRepo(ctrl),
		gateway:     gateway.NewMockClientI(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		notifier:    NewMockNotifier(ctrl),
	}
	service := New(m.orderRepo, m.paymentRepo, m.gateway, m.txManager, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func inTx(m *mocks) *gomock.Call {
	return m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func pendingOrder() *domain.Order {
	return &domain.Order{ID: 3, OrderNo: "7992739871", UserID: 1, TotalAmount: 220, Status: domain.OrderPending}
}

func payingOrder() *domain.Order {
	o := pendingOrder()
	o.Status = domain.OrderPaying
	return o
}

func TestPrepay(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
		params       string
	}{
		{
			name: "successful prepay",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(pendingOrder(), nil)
				m.orderRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 3, domain.OrderPending, domain.OrderPaying).Return(true, nil)
				m.paymentRepo.EXPECT().FindByOrderID(gomock.Any(), 3).Return(nil, nil)
				m.paymentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.gateway.EXPECT().Prepay(gomock.Any(), "7992739871", 220.0, "open-id").Return("sign=abc", nil)
				m.paymentRepo.EXPECT().SetPrepayParams(gomock.Any(), 3, "sign=abc").Return(nil)
			},
			params: "sign=abc",
		},
		{
			name: "order not found",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
		{
			name: "order already paid",
			prepareMock: func() {
				o := pendingOrder()
				o.Status = domain.OrderPaid
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(o, nil)
			},
			expectedKind: apperrors.KindInvalidState,
			expectedErr:  true,
		},
		{
			name: "lost the race to paying",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(pendingOrder(), nil)
				m.orderRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 3, domain.OrderPending, domain.OrderPaying).Return(false, nil)
			},
			expectedKind: apperrors.KindConflict,
			expectedErr:  true,
		},
		{
			name: "gateway down leaves order in paying",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(pendingOrder(), nil)
				m.orderRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 3, domain.OrderPending, domain.OrderPaying).Return(true, nil)
				m.paymentRepo.EXPECT().FindByOrderID(gomock.Any(), 3).Return(nil, nil)
				m.paymentRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.gateway.EXPECT().Prepay(gomock.Any(), "7992739871", 220.0, "open-id").Return("", gateway.ErrGatewayUnavailable)
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			params, err := service.Prepay(context.Background(), 1, 3, "open-id")
			if tt.expectedErr {
				assert.Error(t, err)
				if tt.expectedKind != apperrors.KindUnknown {
					assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.params, params)
		})
	}
}

func TestConfirmByOrderNo(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name: "webhook confirms a paying order",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(payingOrder(), nil)
				inTx(m)
				m.orderRepo.EXPECT().MarkPaid(gomock.Any(), 3, gomock.Any()).Return(true, nil)
				m.paymentRepo.EXPECT().Confirm(gomock.Any(), 3, "wx-tx-1", domain.PaymentSuccess, gomock.Any()).Return(true, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "duplicate webhook with the same transaction is a no-op",
			prepareMock: func() {
				o := payingOrder()
				o.Status = domain.OrderPaid
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(o, nil)
				m.paymentRepo.EXPECT().FindByOrderID(gomock.Any(), 3).Return(
					&domain.Payment{OrderID: 3, Status: domain.PaymentSuccess, TransactionID: "wx-tx-1"}, nil)
			},
		},
		{
			name: "paid order with a different transaction is rejected",
			prepareMock: func() {
				o := payingOrder()
				o.Status = domain.OrderPaid
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(o, nil)
				m.paymentRepo.EXPECT().FindByOrderID(gomock.Any(), 3).Return(
					&domain.Payment{OrderID: 3, Status: domain.PaymentSuccess, TransactionID: "wx-tx-other"}, nil)
			},
			expectedKind: apperrors.KindInvalidState,
			expectedErr:  true,
		},
		{
			name: "unknown order",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(nil, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
		{
			name: "confirmation race loses",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(payingOrder(), nil)
				inTx(m)
				m.orderRepo.EXPECT().MarkPaid(gomock.Any(), 3, gomock.Any()).Return(false, nil)
			},
			expectedKind: apperrors.KindConflict,
			expectedErr:  true,
		},
		{
			// the order update must not commit when the payment row did not
			// move, otherwise a PAID order is left with a stale payment record
			name: "payment row out of step rolls the order back",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByOrderNo(gomock.Any(), "7992739871").Return(payingOrder(), nil)
				inTx(m)
				m.orderRepo.EXPECT().MarkPaid(gomock.Any(), 3, gomock.Any()).Return(true, nil)
				m.paymentRepo.EXPECT().Confirm(gomock.Any(), 3, "wx-tx-1", domain.PaymentSuccess, gomock.Any()).Return(false, nil)
			},
			expectedKind: apperrors.KindConflict,
			expectedErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.ConfirmByOrderNo(context.Background(), "7992739871", "wx-tx-1")
			if tt.expectedErr {
				assert.Error(t, err)
				if tt.expectedKind != apperrors.KindUnknown {
					assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSyncPaymentStatus(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedErr    bool
		expectedStatus string
	}{
		{
			name: "gateway reports success",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(payingOrder(), nil)
				m.gateway.EXPECT().Query(gomock.Any(), "7992739871").Return(gateway.StatusSuccess, "wx-tx-1", nil)
				inTx(m)
				m.orderRepo.EXPECT().MarkPaid(gomock.Any(), 3, gomock.Any()).Return(true, nil)
				m.paymentRepo.EXPECT().Confirm(gomock.Any(), 3, "wx-tx-1", domain.PaymentSuccess, gomock.Any()).Return(true, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())
			},
			expectedStatus: domain.OrderPaid,
		},
		{
			name: "gateway reports not paid, order returns to pending",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(payingOrder(), nil)
				m.gateway.EXPECT().Query(gomock.Any(), "7992739871").Return(gateway.StatusNotPay, "", nil)
				m.orderRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 3, domain.OrderPaying, domain.OrderPending).Return(true, nil)
			},
			expectedStatus: domain.OrderPending,
		},
		{
			name: "gateway reports closed, payment marked failed",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(payingOrder(), nil)
				m.gateway.EXPECT().Query(gomock.Any(), "7992739871").Return(gateway.StatusClosed, "", nil)
				m.orderRepo.EXPECT().UpdateStatusCAS(gomock.Any(), 3, domain.OrderPaying, domain.OrderPending).Return(true, nil)
				m.paymentRepo.EXPECT().Confirm(gomock.Any(), 3, "", domain.PaymentFailed, gomock.Any()).Return(true, nil)
			},
			expectedStatus: domain.OrderPending,
		},
		{
			name: "order not in paying is returned untouched",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(pendingOrder(), nil)
			},
			expectedStatus: domain.OrderPending,
		},
		{
			name: "gateway unavailable",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(payingOrder(), nil)
				m.gateway.EXPECT().Query(gomock.Any(), "7992739871").Return("", "", errors.New("timeout"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.SyncPaymentStatus(context.Background(), 1, 3)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, order.Status)
		})
	}
}

func TestMockSuccess(t *testing.T) {
	service, m := NewMock(t)

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 3).Return(payingOrder(), nil)
	inTx(m)
	m.orderRepo.EXPECT().MarkPaid(gomock.Any(), 3, gomock.Any()).Return(true, nil)
	m.paymentRepo.EXPECT().Confirm(gomock.Any(), 3, gomock.Any(), domain.PaymentSuccess, gomock.Any()).Return(true, nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

	err := service.MockSuccess(context.Background(), 1, 3)
	assert.NoError(t, err)
}

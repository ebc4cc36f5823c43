package payments

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/pkg/auth"
)

func NewMock(t *testing.T, mockEnabled bool) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, mockEnabled)
	defer ctrl.Finish()
	return handler, service
}

func authed(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPrepayHandler(t *testing.T) {
	handler, service := NewMock(t, false)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful prepay",
			body: `{"orderId":10,"openId":"oX7bJ5tQq0"}`,
			prepareMock: func() {
				service.EXPECT().Prepay(gomock.Any(), 1, 10, "oX7bJ5tQq0").
					Return(`{"timeStamp":"1726804800"}`, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Order not found",
			body: `{"orderId":404,"openId":"oX7bJ5tQq0"}`,
			prepareMock: func() {
				service.EXPECT().Prepay(gomock.Any(), 1, 404, "oX7bJ5tQq0").
					Return("", apperrors.NotFound("order not found"))
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "order not found",
		},
		{
			name: "Order already paid",
			body: `{"orderId":10,"openId":"oX7bJ5tQq0"}`,
			prepareMock: func() {
				service.EXPECT().Prepay(gomock.Any(), 1, 10, "oX7bJ5tQq0").
					Return("", apperrors.InvalidState("order is not payable"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "order is not payable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/api/payments/prepay", bytes.NewBufferString(tt.body)), 1)
			w := httptest.NewRecorder()

			handler.Prepay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestWebhookHandler(t *testing.T) {
	handler, service := NewMock(t, false)

	t.Run("Successful confirmation", func(t *testing.T) {
		service.EXPECT().ConfirmByOrderNo(gomock.Any(), "1726804800123450", "wx-tx-0001").Return(nil)

		body := `{"orderNo":"1726804800123450","transactionId":"wx-tx-0001","status":"SUCCESS"}`
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Webhook(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ok")
	})

	t.Run("Non-success outcome is acknowledged without confirming", func(t *testing.T) {
		body := `{"orderNo":"1726804800123450","transactionId":"wx-tx-0001","status":"NOTPAY"}`
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Webhook(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ignored")
	})

	t.Run("Missing order number", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(`{"status":"SUCCESS"}`))
		w := httptest.NewRecorder()

		handler.Webhook(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown order", func(t *testing.T) {
		service.EXPECT().ConfirmByOrderNo(gomock.Any(), "0000000000000000", "wx-tx-0001").
			Return(apperrors.NotFound("order not found"))

		body := `{"orderNo":"0000000000000000","transactionId":"wx-tx-0001","status":"SUCCESS"}`
		r := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Webhook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMockSuccessHandler(t *testing.T) {
	t.Run("Disabled in production", func(t *testing.T) {
		handler, _ := NewMock(t, false)

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/payments/10/mock-success", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.MockSuccess(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Successful mock payment", func(t *testing.T) {
		handler, service := NewMock(t, true)
		service.EXPECT().MockSuccess(gomock.Any(), 1, 10).Return(nil)

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/payments/10/mock-success", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.MockSuccess(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "paid")
	})

	t.Run("Order not payable", func(t *testing.T) {
		handler, service := NewMock(t, true)
		service.EXPECT().MockSuccess(gomock.Any(), 1, 10).
			Return(apperrors.InvalidState("order is not payable"))

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/payments/10/mock-success", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.MockSuccess(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetStatusHandler(t *testing.T) {
	handler, service := NewMock(t, false)

	t.Run("Paid order with payment", func(t *testing.T) {
		service.EXPECT().GetStatus(gomock.Any(), 1, 10).Return(
			&domain.Order{ID: 10, Status: domain.OrderPaid},
			&domain.Payment{Status: domain.PaymentSuccess, TransactionID: "wx-tx-0001"},
			nil,
		)

		r := withURLParam(authed(httptest.NewRequest(http.MethodGet, "/api/payments/10/status", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"orderStatus":"PAID"`)
		assert.Contains(t, w.Body.String(), "wx-tx-0001")
	})

	t.Run("Order without payment attempt", func(t *testing.T) {
		service.EXPECT().GetStatus(gomock.Any(), 1, 10).Return(
			&domain.Order{ID: 10, Status: domain.OrderPending}, nil, nil,
		)

		r := withURLParam(authed(httptest.NewRequest(http.MethodGet, "/api/payments/10/status", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"orderStatus":"PENDING"`)
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().GetStatus(gomock.Any(), 1, 404).
			Return(nil, nil, apperrors.NotFound("order not found"))

		r := withURLParam(authed(httptest.NewRequest(http.MethodGet, "/api/payments/404/status", nil), 1), "orderID", "404")
		w := httptest.NewRecorder()

		handler.GetStatus(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSyncHandler(t *testing.T) {
	handler, service := NewMock(t, false)

	t.Run("Reconciled to paid", func(t *testing.T) {
		service.EXPECT().SyncPaymentStatus(gomock.Any(), 1, 10).
			Return(&domain.Order{ID: 10, Status: domain.OrderPaid}, nil)

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/payments/10/sync", nil), 1), "orderID", "10")
		w := httptest.NewRecorder()

		handler.Sync(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"orderStatus":"PAID"`)
	})

	t.Run("Invalid order id", func(t *testing.T) {
		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/payments/abc/sync", nil), 1), "orderID", "abc")
		w := httptest.NewRecorder()

		handler.Sync(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

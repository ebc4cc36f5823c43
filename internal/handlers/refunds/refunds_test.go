package refunds

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
	"github.com/fengzhui/fengzhui/internal/service/refundservice"
	"github.com/fengzhui/fengzhui/pkg/auth"
)

func NewMock(t *testing.T) (*RefundHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(r *http.Request, userID, clubID int) *http.Request {
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.ClubIDKey, clubID)
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPreviewHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Refundable order", func(t *testing.T) {
		service.EXPECT().PreviewRefund(gomock.Any(), 1, 10).Return(&refundservice.Quote{
			CanRefund: true,
			Percent:   70,
			Amount:    140,
		}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/refunds/preview?orderId=10", nil), 1, 0)
		w := httptest.NewRecorder()

		handler.Preview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"canRefund":true`)
		assert.Contains(t, w.Body.String(), `"refundPercent":70`)
	})

	t.Run("Too close to start", func(t *testing.T) {
		service.EXPECT().PreviewRefund(gomock.Any(), 1, 10).Return(&refundservice.Quote{
			CanRefund: false,
			Reason:    "too close to activity start",
		}, nil)

		r := authed(httptest.NewRequest(http.MethodGet, "/api/refunds/preview?orderId=10", nil), 1, 0)
		w := httptest.NewRecorder()

		handler.Preview(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"canRefund":false`)
		assert.Contains(t, w.Body.String(), "too close to activity start")
	})

	t.Run("Missing order id", func(t *testing.T) {
		r := authed(httptest.NewRequest(http.MethodGet, "/api/refunds/preview", nil), 1, 0)
		w := httptest.NewRecorder()

		handler.Preview(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Order not found", func(t *testing.T) {
		service.EXPECT().PreviewRefund(gomock.Any(), 1, 404).
			Return(nil, apperrors.NotFound("order not found"))

		r := authed(httptest.NewRequest(http.MethodGet, "/api/refunds/preview?orderId=404", nil), 1, 0)
		w := httptest.NewRecorder()

		handler.Preview(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateRefundHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful refund request",
			body: `{"orderId":10,"reason":"schedule conflict"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRefund(gomock.Any(), 1, 10, "schedule conflict", "").
					Return(&domain.Refund{
						ID:            2,
						OrderID:       10,
						Reason:        "schedule conflict",
						RefundAmount:  140,
						RefundPercent: 70,
						Status:        domain.RefundPending,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing reason",
			body:          `{"orderId":10}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Refund window closed",
			body: `{"orderId":10,"reason":"schedule conflict"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateRefund(gomock.Any(), 1, 10, "schedule conflict", "").
					Return(nil, apperrors.InvalidState("too close to activity start"))
			},
			expectedCode:  http.StatusConflict,
			expectedError: "too close to activity start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/api/refunds", bytes.NewBufferString(tt.body)), 1, 0)
			w := httptest.NewRecorder()

			handler.CreateRefund(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestReviewHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful approval", func(t *testing.T) {
		service.EXPECT().ApproveRefund(gomock.Any(), 5, 2).Return(nil)

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/refunds/2/approve", nil), 1, 5), "id", "2")
		w := httptest.NewRecorder()

		handler.Approve(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Successful rejection", func(t *testing.T) {
		service.EXPECT().RejectRefund(gomock.Any(), 5, 2).Return(nil)

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/refunds/2/reject", nil), 1, 5), "id", "2")
		w := httptest.NewRecorder()

		handler.Reject(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Regular user cannot review", func(t *testing.T) {
		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/refunds/2/approve", nil), 1, 0), "id", "2")
		w := httptest.NewRecorder()

		handler.Approve(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Club account required")
	})

	t.Run("Already reviewed", func(t *testing.T) {
		service.EXPECT().ApproveRefund(gomock.Any(), 5, 2).
			Return(apperrors.Conflict("refund already reviewed"))

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/refunds/2/approve", nil), 1, 5), "id", "2")
		w := httptest.NewRecorder()

		handler.Approve(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Refund of another club", func(t *testing.T) {
		service.EXPECT().RejectRefund(gomock.Any(), 5, 2).
			Return(apperrors.NotFound("refund not found"))

		r := withURLParam(authed(httptest.NewRequest(http.MethodPost, "/api/refunds/2/reject", nil), 1, 5), "id", "2")
		w := httptest.NewRecorder()

		handler.Reject(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

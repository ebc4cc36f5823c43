package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/dto"
	"github.com/fengzhui/fengzhui/pkg/auth"
	"github.com/fengzhui/fengzhui/pkg/utils"
)

type Service interface {
	Prepay(ctx context.Context, userID, orderID int, openID string) (string, error)
	ConfirmByOrderNo(ctx context.Context, orderNo, transactionID string) error
	MockSuccess(ctx context.Context, userID, orderID int) error
	GetStatus(ctx context.Context, userID, orderID int) (*domain.Order, *domain.Payment, error)
	SyncPaymentStatus(ctx context.Context, userID, orderID int) (*domain.Order, error)
}

type PaymentHandler struct {
	paymentService Service
	mockEnabled    bool
}

func New(paymentService Service, mockEnabled bool) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		mockEnabled:    mockEnabled,
	}
}

// Prepay godoc
//
//	@Summary		Start payment for an order
//	@Description	Move the order to PAYING and return signed gateway parameters
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PrepayRequestDTO	true	"Prepay request body"
//	@Success		200		{object}	dto.PrepayResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order not payable"
//	@Failure		500		{object}	utils.Response	"Gateway unavailable"
//	@Security		BearerAuth
//	@Router			/api/payments/prepay [post]
func (h *PaymentHandler) Prepay(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.PrepayRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params, err := h.paymentService.Prepay(r.Context(), userID, req.OrderID, req.OpenID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PrepayResponseDTO{
		PrepayParams: params,
	})
}

// Webhook godoc
//
//	@Summary		Payment gateway notification
//	@Description	Called by the gateway on payment outcome; replays are acknowledged
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentWebhookRequestDTO	true	"Webhook body"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/payments/webhook [post]
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentWebhookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderNo == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status != domain.PaymentSuccess {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{StatusCode: http.StatusOK, Message: "ignored"})
		return
	}

	if err := h.paymentService.ConfirmByOrderNo(r.Context(), req.OrderNo, req.TransactionID); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{StatusCode: http.StatusOK, Message: "ok"})
}

// MockSuccess godoc
//
//	@Summary		Simulate a successful payment
//	@Description	Development helper, available only when mock pay is enabled
//	@Tags			Payments
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Order not found or mock disabled"
//	@Security		BearerAuth
//	@Router			/api/payments/{orderID}/mock-success [post]
func (h *PaymentHandler) MockSuccess(w http.ResponseWriter, r *http.Request) {
	if !h.mockEnabled {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.paymentService.MockSuccess(r.Context(), userID, orderID); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{StatusCode: http.StatusOK, Message: "paid"})
}

// GetStatus godoc
//
//	@Summary		Payment status of an order
//	@Tags			Payments
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	dto.PaymentStatusResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Security		BearerAuth
//	@Router			/api/payments/{orderID}/status [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, payment, err := h.paymentService.GetStatus(r.Context(), userID, orderID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	resp := dto.PaymentStatusResponseDTO{
		OrderID:     order.ID,
		OrderStatus: order.Status,
	}
	if payment != nil {
		resp.PaymentStatus = payment.Status
		resp.TransactionID = payment.TransactionID
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Sync godoc
//
//	@Summary		Reconcile a stuck payment
//	@Description	Query the gateway for the real outcome of a PAYING order
//	@Tags			Payments
//	@Produce		json
//	@Param			orderID	path		int	true	"Order ID"
//	@Success		200		{object}	dto.PaymentStatusResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Gateway unavailable"
//	@Security		BearerAuth
//	@Router			/api/payments/{orderID}/sync [post]
func (h *PaymentHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.paymentService.SyncPaymentStatus(r.Context(), userID, orderID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentStatusResponseDTO{
		OrderID:     order.ID,
		OrderStatus: order.Status,
	})
}

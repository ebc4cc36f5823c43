package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/dto"
	"github.com/fengzhui/fengzhui/pkg/auth"
	"github.com/fengzhui/fengzhui/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID, enrollmentID int, insuredName, insuredPhone, insuredIDCard string) (*domain.Order, error)
	GetOrder(ctx context.Context, userID, id int) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
	CancelOrder(ctx context.Context, userID, orderID int) error
	Verify(ctx context.Context, verifierID, clubID int, code string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Create an order from an enrollment
//	@Description	Turn a live enrollment into a payable order, optionally with insurance
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order request body"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Enrollment not found"
//	@Failure		409		{object}	utils.Response	"Order already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), userID, req.EnrollmentID, req.InsuredName, req.InsuredPhone, req.InsuredIDCard)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(order))
}

// GetOrders godoc
//
//	@Summary		List the user's orders
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	resp := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, toResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		int	true	"Order ID"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Security		BearerAuth
//	@Router			/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), userID, id)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// CancelOrder godoc
//
//	@Summary		Cancel an unpaid order
//	@Description	Close a PENDING order and release its enrollment
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path	int	true	"Order ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order not cancellable"
//	@Security		BearerAuth
//	@Router			/api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := h.orderService.CancelOrder(r.Context(), userID, id); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VerifyOrder godoc
//
//	@Summary		Check an order in at the activity site
//	@Description	Verify by verify code or order number; club staff only
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyOrderRequestDTO	true	"Verify request body"
//	@Success		200		{object}	dto.VerifyOrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Not a club account"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already verified"
//	@Security		BearerAuth
//	@Router			/api/orders/verify [post]
func (h *OrderHandler) VerifyOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	clubID, ok := r.Context().Value(auth.ClubIDKey).(int)
	if !ok || clubID == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Club account required")
		return
	}
	var req dto.VerifyOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Verify(r.Context(), userID, clubID, req.Code)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyOrderResponseDTO{
		OrderNo:    order.OrderNo,
		VerifiedAt: time.Now(),
	})
}

func toResponse(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		EnrollmentID: o.EnrollmentID,
		Amount:       o.Amount,
		InsuranceFee: o.InsuranceFee,
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		VerifyCode:   o.VerifyCode,
		PaidAt:       o.PaidAt,
		CreatedAt:    o.CreatedAt,
	}
}

package refunds

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/dto"
	"github.com/fengzhui/fengzhui/internal/service/refundservice"
	"github.com/fengzhui/fengzhui/pkg/auth"
	"github.com/fengzhui/fengzhui/pkg/utils"
)

type Service interface {
	PreviewRefund(ctx context.Context, userID, orderID int) (*refundservice.Quote, error)
	CreateRefund(ctx context.Context, userID, orderID int, reason, reasonDetail string) (*domain.Refund, error)
	ApproveRefund(ctx context.Context, clubID, refundID int) error
	RejectRefund(ctx context.Context, clubID, refundID int) error
}

type RefundHandler struct {
	refundService Service
}

func New(refundService Service) *RefundHandler {
	return &RefundHandler{
		refundService: refundService,
	}
}

// Preview godoc
//
//	@Summary		Quote a refund
//	@Description	What a refund of the order would return right now
//	@Tags			Refunds
//	@Produce		json
//	@Param			orderId	query		int	true	"Order ID"
//	@Success		200		{object}	dto.RefundPreviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid order id"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Security		BearerAuth
//	@Router			/api/refunds/preview [get]
func (h *RefundHandler) Preview(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orderID, err := strconv.Atoi(r.URL.Query().Get("orderId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	quote, err := h.refundService.PreviewRefund(r.Context(), userID, orderID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundPreviewResponseDTO{
		OrderID:       orderID,
		CanRefund:     quote.CanRefund,
		Reason:        quote.Reason,
		RefundPercent: quote.Percent,
		RefundAmount:  quote.Amount,
	})
}

// CreateRefund godoc
//
//	@Summary		Request a refund
//	@Description	Apply the refund policy and put the order under club review
//	@Tags			Refunds
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateRefundRequestDTO	true	"Refund request body"
//	@Success		201		{object}	dto.RefundResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Refund not possible"
//	@Security		BearerAuth
//	@Router			/api/refunds [post]
func (h *RefundHandler) CreateRefund(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateRefundRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Reason == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	refund, err := h.refundService.CreateRefund(r.Context(), userID, req.OrderID, req.Reason, req.ReasonDetail)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.RefundResponseDTO{
		ID:            refund.ID,
		OrderID:       refund.OrderID,
		Reason:        refund.Reason,
		RefundAmount:  refund.RefundAmount,
		RefundPercent: refund.RefundPercent,
		Status:        refund.Status,
	})
}

// Approve godoc
//
//	@Summary		Approve a refund
//	@Description	Club review accepting the refund; the order becomes REFUNDED
//	@Tags			Refunds
//	@Produce		json
//	@Param			id	path	int	true	"Refund ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not a club account"
//	@Failure		404	{object}	utils.Response	"Refund not found"
//	@Failure		409	{object}	utils.Response	"Refund already reviewed"
//	@Security		BearerAuth
//	@Router			/api/refunds/{id}/approve [post]
func (h *RefundHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.refundService.ApproveRefund)
}

// Reject godoc
//
//	@Summary		Reject a refund
//	@Description	Club review declining the refund; the order returns to PAID
//	@Tags			Refunds
//	@Produce		json
//	@Param			id	path	int	true	"Refund ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Not a club account"
//	@Failure		404	{object}	utils.Response	"Refund not found"
//	@Failure		409	{object}	utils.Response	"Refund already reviewed"
//	@Security		BearerAuth
//	@Router			/api/refunds/{id}/reject [post]
func (h *RefundHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.refundService.RejectRefund)
}

func (h *RefundHandler) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, clubID, refundID int) error) {
	clubID, ok := r.Context().Value(auth.ClubIDKey).(int)
	if !ok || clubID == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Club account required")
		return
	}
	refundID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid refund id")
		return
	}

	if err := fn(r.Context(), clubID, refundID); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package finance

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

type SettlementService interface {
	ComputeSettlement(ctx context.Context, clubID, activityID int) (*domain.Settlement, error)
	GetSettlement(ctx context.Context, clubID, activityID int) (*domain.Settlement, error)
}

type Service interface {
	GetAccount(ctx context.Context, clubID int) (*domain.ClubAccount, error)
	CreateWithdrawal(ctx context.Context, clubID int, amount float64) (*domain.Withdrawal, error)
	ListWithdrawals(ctx context.Context, clubID int) ([]domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id int) error
	CompleteWithdrawal(ctx context.Context, id int) error
	RejectWithdrawal(ctx context.Context, id int) error
}

type FinanceHandler struct {
	financeService    Service
	settlementService SettlementService
}

func New(financeService Service, settlementService SettlementService) *FinanceHandler {
	return &FinanceHandler{
		financeService:    financeService,
		settlementService: settlementService,
	}
}

// clubFromRequest resolves the club scope: the path id must match the club
// bound to the token.
func clubFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	clubID, ok := r.Context().Value(auth.ClubIDKey).(int)
	if !ok || clubID == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Club account required")
		return 0, false
	}
	pathID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid club id")
		return 0, false
	}
	if pathID != clubID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return 0, false
	}
	return clubID, true
}

// Settle godoc
//
//	@Summary		Settle a completed activity
//	@Description	Compute and credit the settlement exactly once
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.SettlementResponseDTO
//	@Failure		403	{object}	utils.Response	"Not a club account"
//	@Failure		404	{object}	utils.Response	"Activity not found"
//	@Failure		409	{object}	utils.Response	"Activity not settleable"
//	@Security		BearerAuth
//	@Router			/api/finance/activities/{id}/settle [post]
func (h *FinanceHandler) Settle(w http.ResponseWriter, r *http.Request) {
	clubID, ok := r.Context().Value(auth.ClubIDKey).(int)
	if !ok || clubID == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Club account required")
		return
	}
	activityID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	settlement, err := h.settlementService.ComputeSettlement(r.Context(), clubID, activityID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettlementResponse(settlement))
}

// GetSettlement godoc
//
//	@Summary		Get an activity's settlement
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path		int	true	"Activity ID"
//	@Success		200	{object}	dto.SettlementResponseDTO
//	@Failure		404	{object}	utils.Response	"Settlement not found"
//	@Security		BearerAuth
//	@Router			/api/finance/activities/{id}/settlement [get]
func (h *FinanceHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	clubID, ok := r.Context().Value(auth.ClubIDKey).(int)
	if !ok || clubID == 0 {
		utils.RespondWithError(w, http.StatusForbidden, "Club account required")
		return
	}
	activityID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}

	settlement, err := h.settlementService.GetSettlement(r.Context(), clubID, activityID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSettlementResponse(settlement))
}

// GetAccount godoc
//
//	@Summary		Get the club ledger account
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path		int	true	"Club ID"
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Security		BearerAuth
//	@Router			/api/finance/clubs/{id}/account [get]
func (h *FinanceHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubFromRequest(w, r)
	if !ok {
		return
	}

	account, err := h.financeService.GetAccount(r.Context(), clubID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		ClubID:        account.ClubID,
		Balance:       account.Balance,
		FrozenBalance: account.FrozenBalance,
		TotalIncome:   account.TotalIncome,
		TotalWithdraw: account.TotalWithdraw,
	})
}

// CreateWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Freeze the amount on the club account pending review
//	@Tags			Finance
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int	true	"Club ID"
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal request body"
//	@Success		201		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum or above available balance"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		412		{object}	utils.Response	"No bank account on file"
//	@Security		BearerAuth
//	@Router			/api/finance/clubs/{id}/withdrawals [post]
func (h *FinanceHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubFromRequest(w, r)
	if !ok {
		return
	}
	var req dto.CreateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.financeService.CreateWithdrawal(r.Context(), clubID, req.Amount)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toWithdrawalResponse(withdrawal))
}

// ListWithdrawals godoc
//
//	@Summary		List the club's withdrawals
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path		int	true	"Club ID"
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Security		BearerAuth
//	@Router			/api/finance/clubs/{id}/withdrawals [get]
func (h *FinanceHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	clubID, ok := clubFromRequest(w, r)
	if !ok {
		return
	}

	withdrawals, err := h.financeService.ListWithdrawals(r.Context(), clubID)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	resp := make([]dto.WithdrawalResponseDTO, 0, len(withdrawals))
	for i := range withdrawals {
		resp = append(resp, toWithdrawalResponse(&withdrawals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path	int	true	"Withdrawal ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not approvable"
//	@Security		BearerAuth
//	@Router			/api/finance/withdrawals/{id}/approve [post]
func (h *FinanceHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.reviewWithdrawal(w, r, h.financeService.ApproveWithdrawal)
}

// CompleteWithdrawal godoc
//
//	@Summary		Mark a withdrawal as paid out
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path	int	true	"Withdrawal ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not completable"
//	@Security		BearerAuth
//	@Router			/api/finance/withdrawals/{id}/complete [post]
func (h *FinanceHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.reviewWithdrawal(w, r, h.financeService.CompleteWithdrawal)
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal and release the frozen funds
//	@Tags			Finance
//	@Produce		json
//	@Param			id	path	int	true	"Withdrawal ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Withdrawal not found"
//	@Failure		409	{object}	utils.Response	"Withdrawal not rejectable"
//	@Security		BearerAuth
//	@Router			/api/finance/withdrawals/{id}/reject [post]
func (h *FinanceHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.reviewWithdrawal(w, r, h.financeService.RejectWithdrawal)
}

func (h *FinanceHandler) reviewWithdrawal(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int) error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	if err := fn(r.Context(), id); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSettlementResponse(s *domain.Settlement) dto.SettlementResponseDTO {
	return dto.SettlementResponseDTO{
		ID:           s.ID,
		ActivityID:   s.ActivityID,
		TotalAmount:  s.TotalAmount,
		PlatformFee:  s.PlatformFee,
		RefundAmount: s.RefundAmount,
		SettleAmount: s.SettleAmount,
		Status:       s.Status,
	}
}

func toWithdrawalResponse(wd *domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:           wd.ID,
		ClubID:       wd.ClubID,
		Amount:       wd.Amount,
		Fee:          wd.Fee,
		ActualAmount: wd.ActualAmount,
		Status:       wd.Status,
		CreatedAt:    wd.CreatedAt,
	}
}

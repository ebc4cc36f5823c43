package enrollments

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
	"github.com/fengzhui/fengzhui/pkg/validate"
)

type Service interface {
	CreateEnrollment(ctx context.Context, userID, activityID int, contactName, contactPhone string) (*domain.Enrollment, error)
	GetEnrollment(ctx context.Context, userID, id int) (*domain.Enrollment, error)
	CancelEnrollment(ctx context.Context, userID, id int) error
}

type EnrollmentHandler struct {
	enrollmentService Service
}

func New(enrollmentService Service) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment godoc
//
//	@Summary		Enroll in an activity
//	@Description	Sign the authenticated user up for an activity
//	@Tags			Enrollments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEnrollmentRequestDTO	true	"Enrollment request body"
//	@Success		201		{object}	dto.EnrollmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Activity not found"
//	@Failure		409		{object}	utils.Response	"Already enrolled"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateEnrollmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ContactName == "" || !validate.IsPhone(req.ContactPhone) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contact details")
		return
	}

	enrollment, err := h.enrollmentService.CreateEnrollment(r.Context(), userID, req.ActivityID, req.ContactName, req.ContactPhone)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(enrollment))
}

// GetEnrollment godoc
//
//	@Summary		Get an enrollment
//	@Tags			Enrollments
//	@Produce		json
//	@Param			id	path		int	true	"Enrollment ID"
//	@Success		200	{object}	dto.EnrollmentResponseDTO
//	@Failure		404	{object}	utils.Response	"Enrollment not found"
//	@Security		BearerAuth
//	@Router			/api/enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enrollment id")
		return
	}

	enrollment, err := h.enrollmentService.GetEnrollment(r.Context(), userID, id)
	if err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(enrollment))
}

// CancelEnrollment godoc
//
//	@Summary		Cancel an enrollment
//	@Description	Drop a pending enrollment before an order is created for it
//	@Tags			Enrollments
//	@Produce		json
//	@Param			id	path	int	true	"Enrollment ID"
//	@Success		204
//	@Failure		404	{object}	utils.Response	"Enrollment not found"
//	@Failure		409	{object}	utils.Response	"Enrollment not cancellable"
//	@Security		BearerAuth
//	@Router			/api/enrollments/{id} [delete]
func (h *EnrollmentHandler) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid enrollment id")
		return
	}

	if err := h.enrollmentService.CancelEnrollment(r.Context(), userID, id); err != nil {
		utils.RespondWithError(w, apperrors.HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toResponse(e *domain.Enrollment) dto.EnrollmentResponseDTO {
	return dto.EnrollmentResponseDTO{
		ID:           e.ID,
		ActivityID:   e.ActivityID,
		ContactName:  e.ContactName,
		ContactPhone: e.ContactPhone,
		Amount:       e.Amount,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
	}
}

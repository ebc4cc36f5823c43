package enrollmentservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
)

type Repo interface {
	Save(ctx context.Context, enrollment *domain.Enrollment) error
	FindByID(ctx context.Context, id int) (*domain.Enrollment, error)
	FindActive(ctx context.Context, userID, activityID int) (*domain.Enrollment, error)
	UpdateStatus(ctx context.Context, id int, status string) error
}

type ActivityRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Activity, error)
}

type Service struct {
	repo         Repo
	activityRepo ActivityRepo
}

func New(repo Repo, activityRepo ActivityRepo) *Service {
	return &Service{
		repo:         repo,
		activityRepo: activityRepo,
	}
}

// CreateEnrollment signs a user up for an activity. A user holds at most one
// live enrollment per activity; a cancelled one does not count.
func (s *Service) CreateEnrollment(ctx context.Context, userID, activityID int, contactName, contactPhone string) (*domain.Enrollment, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	if activity == nil {
		return nil, apperrors.NotFound("activity not found")
	}
	if !activity.StartTime.After(time.Now()) {
		return nil, apperrors.InvalidState("activity has already started")
	}

	existing, err := s.repo.FindActive(ctx, userID, activityID)
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("enrollment already exists",
			zap.Int("userID", userID), zap.Int("activityID", activityID))
		return nil, apperrors.Conflict("already enrolled in this activity")
	}

	enrollment := &domain.Enrollment{
		ActivityID:   activityID,
		UserID:       userID,
		ContactName:  contactName,
		ContactPhone: contactPhone,
		Amount:       activity.Price,
		Status:       domain.EnrollmentPending,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Save(ctx, enrollment); err != nil {
		zap.L().Error("can't save enrollment", zap.Error(err))
		return nil, err
	}
	return enrollment, nil
}

func (s *Service) GetEnrollment(ctx context.Context, userID, id int) (*domain.Enrollment, error) {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return nil, err
	}
	if enrollment == nil || enrollment.UserID != userID {
		return nil, apperrors.NotFound("enrollment not found")
	}
	return enrollment, nil
}

// CancelEnrollment drops a PENDING enrollment. Once an order exists the
// enrollment is ORDERED and has to be released through order cancellation.
func (s *Service) CancelEnrollment(ctx context.Context, userID, id int) error {
	enrollment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find enrollment", zap.Error(err))
		return err
	}
	if enrollment == nil || enrollment.UserID != userID {
		return apperrors.NotFound("enrollment not found")
	}
	if enrollment.Status != domain.EnrollmentPending {
		return apperrors.InvalidState("enrollment is not cancellable in its current state")
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.EnrollmentCancelled); err != nil {
		zap.L().Error("can't cancel enrollment", zap.Error(err))
		return err
	}
	return nil
}

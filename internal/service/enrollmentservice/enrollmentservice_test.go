package enrollmentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockActivityRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	activityRepo := NewMockActivityRepo(ctrl)
	service := New(repo, activityRepo)
	defer ctrl.Finish()
	return service, repo, activityRepo
}

func TestCreateEnrollment(t *testing.T) {
	service, repo, activityRepo := NewMock(t)

	upcoming := &domain.Activity{ID: 10, ClubID: 3, Price: 200, StartTime: time.Now().Add(240 * time.Hour)}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name: "successful enrollment",
			prepareMock: func() {
				activityRepo.EXPECT().FindByID(gomock.Any(), 10).Return(upcoming, nil)
				repo.EXPECT().FindActive(gomock.Any(), 1, 10).Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "activity not found",
			prepareMock: func() {
				activityRepo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
		{
			name: "activity already started",
			prepareMock: func() {
				started := &domain.Activity{ID: 10, StartTime: time.Now().Add(-time.Hour)}
				activityRepo.EXPECT().FindByID(gomock.Any(), 10).Return(started, nil)
			},
			expectedKind: apperrors.KindInvalidState,
			expectedErr:  true,
		},
		{
			name: "already enrolled",
			prepareMock: func() {
				activityRepo.EXPECT().FindByID(gomock.Any(), 10).Return(upcoming, nil)
				repo.EXPECT().FindActive(gomock.Any(), 1, 10).Return(&domain.Enrollment{ID: 5}, nil)
			},
			expectedKind: apperrors.KindConflict,
			expectedErr:  true,
		},
		{
			name: "repo failure",
			prepareMock: func() {
				activityRepo.EXPECT().FindByID(gomock.Any(), 10).Return(upcoming, nil)
				repo.EXPECT().FindActive(gomock.Any(), 1, 10).Return(nil, errors.New("some error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			enrollment, err := service.CreateEnrollment(context.Background(), 1, 10, "Alice", "13800138000")
			if tt.expectedErr {
				assert.Error(t, err)
				if tt.expectedKind != apperrors.KindUnknown {
					assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.EnrollmentPending, enrollment.Status)
			assert.Equal(t, 200.0, enrollment.Amount)
		})
	}
}

func TestCancelEnrollment(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name: "successful cancel",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Enrollment{ID: 5, UserID: 1, Status: domain.EnrollmentPending}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, domain.EnrollmentCancelled).Return(nil)
			},
		},
		{
			name: "not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
		{
			name: "belongs to another user",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Enrollment{ID: 5, UserID: 2, Status: domain.EnrollmentPending}, nil)
			},
			expectedKind: apperrors.KindNotFound,
			expectedErr:  true,
		},
		{
			name: "already ordered",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Enrollment{ID: 5, UserID: 1, Status: domain.EnrollmentOrdered}, nil)
			},
			expectedKind: apperrors.KindInvalidState,
			expectedErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.CancelEnrollment(context.Background(), 1, 5)
			if tt.expectedErr {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fengzhui/fengzhui/internal/apperrors"
	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, &auth.HashService{}, &auth.JWTService{})
	defer ctrl.Finish()
	return service, repo
}

func TestRegister(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name: "new user is registered",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *domain.User) (*domain.User, error) {
						user.ID = 1
						return user, nil
					})
			},
		},
		{
			name: "username already taken",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 1, Login: "alice"}, nil)
			},
			expectedKind: apperrors.KindConflict,
			expectedErr:  true,
		},
		{
			name: "lookup failure",
			prepareMock: func() {
				repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, errors.New("some error"))
			},
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "alice", "password123")
			if tt.expectedErr {
				assert.Error(t, err)
				if tt.expectedKind != apperrors.KindUnknown {
					assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.NotEqual(t, "password123", user.PasswordHash)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, repo := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("password123")
	assert.NoError(t, err)
	user := &domain.User{ID: 1, Login: "alice", PasswordHash: hash, ClubID: 5}

	t.Run("valid credentials", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(user, nil)

		got, err := service.Authenticate(context.Background(), "alice", "password123")
		assert.NoError(t, err)
		assert.Equal(t, 1, got.ID)
		assert.Equal(t, 5, got.ClubID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(user, nil)

		_, err := service.Authenticate(context.Background(), "alice", "nope")
		assert.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo.EXPECT().FindByLogin(gomock.Any(), "bob").Return(nil, nil)

		_, err := service.Authenticate(context.Background(), "bob", "password123")
		assert.Error(t, err)
	})
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1, 5)
	assert.NoError(t, err)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, 5, claims.ClubID)
}

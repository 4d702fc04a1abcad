package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/singhtechie24/Indiana-Hotels-Final/config"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/jwt"
	jwtMocks "github.com/singhtechie24/Indiana-Hotels-Final/infras/jwt/mocks"
	"github.com/singhtechie24/Indiana-Hotels-Final/infras/otel/mocks"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/service"
	userMocks "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/mocks"
	userModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/password"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration defaults to the guest role",
			req: dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "supersecret1",
				FullName: "Test Guest",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RoleGuest, user.Role)
						assert.True(t, user.Active)
						assert.NotEqual(t, "supersecret1", user.Password)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			req: dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "supersecret1",
				FullName: "Test Guest",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.RegisterRequest{
				Email:    "guest@example.com",
				Password: "supersecret1",
				FullName: "Test Guest",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Register(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("supersecret1")
	assert.NoError(t, err)

	user := func(active bool) userModel.User {
		return userModel.User{
			ID:       "user-1",
			Email:    "guest@example.com",
			Password: hashed,
			Role:     constant.RoleGuest,
			Active:   active,
		}
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "supersecret1"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user(true), nil)

				mockJWT.EXPECT().
					GenerateTokenPair("user-1", "guest@example.com", constant.RoleGuest).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "not-the-password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user(true), nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret1"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "guest@example.com", Password: "supersecret1"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user(false), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Login(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", result.AccessToken)
				assert.Equal(t, constant.RoleGuest, result.Role)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("refresh-token").
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access", result.AccessToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, cfg, mockOtel, mockJWT)

	hashed, err := password.Hash("supersecret1")
	assert.NoError(t, err)

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "supersecret1", NewPassword: "evenmoresecret2"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-1", Password: hashed}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "not-the-password", NewPassword: "evenmoresecret2"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{ID: "user-1", Password: hashed}, nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "supersecret1", NewPassword: "evenmoresecret2"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.ChangePassword(ctx, tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

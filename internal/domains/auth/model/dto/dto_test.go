package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/jwt"
	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/auth/model/dto"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	phone := "+44 7700 900123"
	req := dto.RegisterRequest{
		Email:    "guest@example.com",
		Password: "supersecret1",
		FullName: "Test Guest",
		Phone:    &phone,
	}

	user := req.ToUserModel(constant.SystemActor, "hashed-password")

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleGuest, user.Role, "expected role to default to guest")
	assert.Equal(t, req.FullName, user.FullName)
	assert.Equal(t, &phone, user.Phone)
	assert.True(t, user.Active)
	assert.False(t, user.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, constant.RoleStaff)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
	assert.Equal(t, constant.RoleStaff, response.Role)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

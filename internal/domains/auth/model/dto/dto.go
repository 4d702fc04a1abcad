package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/singhtechie24/Indiana-Hotels-Final/infras/jwt"
	userModel "github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type RegisterRequest struct {
	Email    string  `json:"email"           validate:"required,email"`
	Password string  `json:"password"        validate:"required,min=8"`
	FullName string  `json:"full_name"       validate:"required,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     constant.RoleGuest,
		FullName: r.FullName,
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, role string) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.Role = role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

package dto

import (
	"github.com/google/uuid"

	"github.com/singhtechie24/Indiana-Hotels-Final/internal/domains/user/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/constant"
	gDto "github.com/singhtechie24/Indiana-Hotels-Final/shared/dto"
	gModel "github.com/singhtechie24/Indiana-Hotels-Final/shared/model"
	"github.com/singhtechie24/Indiana-Hotels-Final/shared/timezone"
)

type CreateUserRequest struct {
	Email    string  `json:"email"           validate:"required,email"`
	Password string  `json:"password"        validate:"required,min=8"`
	Role     string  `json:"role"            validate:"omitempty,oneof=guest staff admin"`
	FullName string  `json:"full_name"       validate:"required,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleGuest
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
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

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  string  `json:"full_name"`
	Phone     *string `json:"phone,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Phone = model.Phone
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=guest staff admin"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `db:"phone"     json:"phone,omitempty"     validate:"omitempty,max=20"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

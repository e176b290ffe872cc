package dto

import (
	"time"

	"github.com/google/uuid"

	"inn/internal/domains/user/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"omitempty,oneof=guest customer admin"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleGuest
	}

	return model.User{
		ID:       uuid.NewString(),
		FullName: r.FullName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		Phone:    r.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,min=2,max=100"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=guest customer admin"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Phone     string     `json:"phone"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Role = model.Role
	r.Phone = model.Phone
	r.LastLogin = model.LastLogin
	r.Metadata.FromModel(model.Metadata)
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

package dto

import (
	"fmt"
	"strings"

	"maverick-bank/internal/domain/identity"
)

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	RoleID   *int64 `json:"roleId,omitempty"`
}

func (r *RegisterUserRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if strings.TrimSpace(r.Password) == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	return nil
}

func (r *RegisterUserRequest) ToInput() identity.RegisterUserInput {
	return identity.RegisterUserInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		RoleID:   r.RoleID,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if r.Password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// UpdateUserRequest carries a partial patch; absent fields keep their
// stored values.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
	RoleID   *int64  `json:"roleId,omitempty"`
}

func (r *UpdateUserRequest) ToInput() identity.UpdateUserInput {
	return identity.UpdateUserInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		RoleID:   r.RoleID,
	}
}

type UserResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   int64  `json:"roleId"`
}

func NewUserResponse(user *identity.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		RoleID:   user.RoleID,
	}
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

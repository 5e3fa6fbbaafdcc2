package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("user_not_found")
	ErrEmailTaken = errors.New("email_taken")
	ErrInactive   = errors.New("user_inactive")
)

type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateUserProfileRequest struct {
	UserID string  `json:"-"`
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
}

type ToggleUserStatusRequest struct {
	UserID string `json:"-"`
	Active bool   `json:"active"`
}

type ChangeUserRoleRequest struct {
	UserID string `json:"-"`
	Role   string `json:"role"`
}

type Response struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Service interface {
	Create(context.Context, CreateUserRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(context.Context) ([]Response, error)
	UpdateProfile(context.Context, UpdateUserProfileRequest) (Response, error)
	ToggleStatus(context.Context, ToggleUserStatusRequest) (Response, error)
	ChangeRole(context.Context, ChangeUserRoleRequest) (Response, error)
}

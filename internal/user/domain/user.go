// Package domain contains the User entity: an account holder with profile
// and role. Users own no subscription state; subscriptions reference them
// by id only.
package domain

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleOperator, RoleUser:
		return Role(value), nil
	default:
		return "", shared.NewValidationError("role", "must be one of admin, operator, user")
	}
}

// User is an immutable value; mutations return a new state with a refreshed
// updatedAt. Activate/Deactivate are no-ops when already in the target state.
type User struct {
	id        shared.UserID
	email     shared.EmailAddress
	name      shared.PersonName
	role      Role
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func New(id shared.UserID, email shared.EmailAddress, name shared.PersonName, now time.Time) User {
	return User{
		id:        id,
		email:     email,
		name:      name,
		role:      RoleUser,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

func (u User) ID() shared.UserID           { return u.id }
func (u User) Email() shared.EmailAddress  { return u.email }
func (u User) Name() shared.PersonName     { return u.name }
func (u User) Role() Role                  { return u.role }
func (u User) IsActive() bool              { return u.isActive }
func (u User) CreatedAt() time.Time        { return u.createdAt }
func (u User) UpdatedAt() time.Time        { return u.updatedAt }

func (u User) UpdateEmail(email shared.EmailAddress, now time.Time) User {
	u.email = email
	u.updatedAt = now
	return u
}

func (u User) UpdateName(name shared.PersonName, now time.Time) User {
	u.name = name
	u.updatedAt = now
	return u
}

func (u User) ChangeRole(role Role, now time.Time) User {
	if u.role == role {
		return u
	}
	u.role = role
	u.updatedAt = now
	return u
}

func (u User) Activate(now time.Time) User {
	if u.isActive {
		return u
	}
	u.isActive = true
	u.updatedAt = now
	return u
}

func (u User) Deactivate(now time.Time) User {
	if !u.isActive {
		return u
	}
	u.isActive = false
	u.updatedAt = now
	return u
}

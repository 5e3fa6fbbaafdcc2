package domain

import (
	"time"

	"github.com/smallbiznis/subhub/internal/shared"
)

// Record is the flat primitive snapshot of a User.
type Record struct {
	ID        string    `gorm:"primaryKey"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	Name      string    `gorm:"type:text;not null"`
	Role      string    `gorm:"type:text;not null;default:'user'"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (Record) TableName() string { return "users" }

func (u User) Record() Record {
	return Record{
		ID:        u.id.String(),
		Email:     u.email.String(),
		Name:      u.name.String(),
		Role:      string(u.role),
		IsActive:  u.isActive,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

func FromRecord(rec Record) (User, error) {
	id, err := shared.NewUserID(rec.ID)
	if err != nil {
		return User{}, err
	}

	email, err := shared.NewEmailAddress(rec.Email)
	if err != nil {
		return User{}, err
	}

	name, err := shared.NewPersonName(rec.Name)
	if err != nil {
		return User{}, err
	}

	role, err := ParseRole(rec.Role)
	if err != nil {
		return User{}, err
	}

	return User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		isActive:  rec.IsActive,
		createdAt: rec.CreatedAt,
		updatedAt: rec.UpdatedAt,
	}, nil
}

package domain

import (
	"context"

	"gorm.io/gorm"
)

// ListFilter narrows List; empty fields match everything.
type ListFilter struct {
	UserID string
	Status string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rec *Record) error
	Update(ctx context.Context, db *gorm.DB, rec *Record) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Record, error)
	// FindByIDForUpdate locks the row for the duration of the surrounding
	// transaction so concurrent lifecycle operations serialize per row.
	FindByIDForUpdate(ctx context.Context, db *gorm.DB, id string) (*Record, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Record, error)
}

package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rec *Record) error
	Update(ctx context.Context, db *gorm.DB, rec *Record) error
	FindByID(ctx context.Context, db *gorm.DB, id string) (*Record, error)
	ListBySubscription(ctx context.Context, db *gorm.DB, subscriptionID string) ([]Record, error)
}

package repository

import (
	"context"
	"errors"

	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() paymentdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rec *paymentdomain.Record) error {
	return db.WithContext(ctx).Create(rec).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rec *paymentdomain.Record) error {
	return db.WithContext(ctx).Save(rec).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*paymentdomain.Record, error) {
	var rec paymentdomain.Record
	err := db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) ListBySubscription(ctx context.Context, db *gorm.DB, subscriptionID string) ([]paymentdomain.Record, error) {
	var recs []paymentdomain.Record
	err := db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

package repository

import (
	"context"
	"errors"

	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() plandomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rec *plandomain.Record) error {
	return db.WithContext(ctx).Create(rec).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rec *plandomain.Record) error {
	return db.WithContext(ctx).Save(rec).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*plandomain.Record, error) {
	var rec plandomain.Record
	err := db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]plandomain.Record, error) {
	var recs []plandomain.Record
	if err := db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

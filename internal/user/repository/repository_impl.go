package repository

import (
	"context"
	"errors"

	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() userdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rec *userdomain.Record) error {
	return db.WithContext(ctx).Create(rec).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rec *userdomain.Record) error {
	return db.WithContext(ctx).Save(rec).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*userdomain.Record, error) {
	var rec userdomain.Record
	err := db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*userdomain.Record, error) {
	var rec userdomain.Record
	err := db.WithContext(ctx).First(&rec, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]userdomain.Record, error) {
	var recs []userdomain.Record
	if err := db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

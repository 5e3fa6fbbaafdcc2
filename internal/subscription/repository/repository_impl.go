package repository

import (
	"context"
	"errors"

	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() subdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rec *subdomain.Record) error {
	return db.WithContext(ctx).Create(rec).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rec *subdomain.Record) error {
	return db.WithContext(ctx).Save(rec).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id string) (*subdomain.Record, error) {
	return r.find(ctx, db, id)
}

func (r *repo) FindByIDForUpdate(ctx context.Context, db *gorm.DB, id string) (*subdomain.Record, error) {
	// sqlite serializes writers on its own and rejects FOR UPDATE.
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return r.find(ctx, db, id)
}

func (r *repo) find(ctx context.Context, db *gorm.DB, id string) (*subdomain.Record, error) {
	var rec subdomain.Record
	err := db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter subdomain.ListFilter) ([]subdomain.Record, error) {
	q := db.WithContext(ctx)
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var recs []subdomain.Record
	if err := q.Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

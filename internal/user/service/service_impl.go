package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/subhub/internal/clock"
	"github.com/smallbiznis/subhub/internal/shared"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"github.com/smallbiznis/subhub/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  userdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  userdomain.Repository
}

func NewService(p ServiceParam) userdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("user.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req userdomain.CreateUserRequest) (userdomain.Response, error) {
	email, err := shared.NewEmailAddress(req.Email)
	if err != nil {
		return userdomain.Response{}, err
	}

	name, err := shared.NewPersonName(req.Name)
	if err != nil {
		return userdomain.Response{}, err
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email.String())
	if err != nil {
		return userdomain.Response{}, err
	}
	if existing != nil {
		return userdomain.Response{}, userdomain.ErrEmailTaken
	}

	id, err := shared.NewUserID(s.genID.Generate().String())
	if err != nil {
		return userdomain.Response{}, err
	}

	user := userdomain.New(id, email, name, s.clock.Now())
	rec := user.Record()
	if err := s.repo.Insert(ctx, s.db, &rec); err != nil {
		// lost a race on the email unique index
		if db.IsDuplicateKeyErr(err) {
			return userdomain.Response{}, userdomain.ErrEmailTaken
		}
		return userdomain.Response{}, err
	}

	s.log.Info("user created", zap.String("user_id", rec.ID))
	return toResponse(rec), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (userdomain.Response, error) {
	rec, err := s.findRecord(ctx, s.db, id)
	if err != nil {
		return userdomain.Response{}, err
	}
	return toResponse(*rec), nil
}

func (s *Service) List(ctx context.Context) ([]userdomain.Response, error) {
	recs, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]userdomain.Response, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	return out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, req userdomain.UpdateUserProfileRequest) (userdomain.Response, error) {
	return s.mutate(ctx, req.UserID, func(user userdomain.User) (userdomain.User, error) {
		now := s.clock.Now()
		if req.Email != nil {
			email, err := shared.NewEmailAddress(*req.Email)
			if err != nil {
				return userdomain.User{}, err
			}

			taken, err := s.repo.FindByEmail(ctx, s.db, email.String())
			if err != nil {
				return userdomain.User{}, err
			}
			if taken != nil && taken.ID != user.ID().String() {
				return userdomain.User{}, userdomain.ErrEmailTaken
			}

			user = user.UpdateEmail(email, now)
		}
		if req.Name != nil {
			name, err := shared.NewPersonName(*req.Name)
			if err != nil {
				return userdomain.User{}, err
			}
			user = user.UpdateName(name, now)
		}
		return user, nil
	})
}

func (s *Service) ToggleStatus(ctx context.Context, req userdomain.ToggleUserStatusRequest) (userdomain.Response, error) {
	return s.mutate(ctx, req.UserID, func(user userdomain.User) (userdomain.User, error) {
		now := s.clock.Now()
		if req.Active {
			return user.Activate(now), nil
		}
		return user.Deactivate(now), nil
	})
}

func (s *Service) ChangeRole(ctx context.Context, req userdomain.ChangeUserRoleRequest) (userdomain.Response, error) {
	return s.mutate(ctx, req.UserID, func(user userdomain.User) (userdomain.User, error) {
		role, err := userdomain.ParseRole(req.Role)
		if err != nil {
			return userdomain.User{}, err
		}
		return user.ChangeRole(role, s.clock.Now()), nil
	})
}

func (s *Service) mutate(ctx context.Context, id string, fn func(userdomain.User) (userdomain.User, error)) (userdomain.Response, error) {
	var out userdomain.Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.findRecord(ctx, tx, id)
		if err != nil {
			return err
		}

		user, err := userdomain.FromRecord(*rec)
		if err != nil {
			return err
		}

		mutated, err := fn(user)
		if err != nil {
			return err
		}

		out = mutated.Record()
		return s.repo.Update(ctx, tx, &out)
	})
	if err != nil {
		return userdomain.Response{}, err
	}
	return toResponse(out), nil
}

func (s *Service) findRecord(ctx context.Context, db *gorm.DB, id string) (*userdomain.Record, error) {
	if _, err := shared.NewUserID(id); err != nil {
		return nil, err
	}

	rec, err := s.repo.FindByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, userdomain.ErrNotFound
	}
	return rec, nil
}

func toResponse(rec userdomain.Record) userdomain.Response {
	return userdomain.Response{
		ID:        rec.ID,
		Email:     rec.Email,
		Name:      rec.Name,
		Role:      rec.Role,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

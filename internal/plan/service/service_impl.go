package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/subhub/internal/clock"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  plandomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  plandomain.Repository
}

func NewService(p ServiceParam) plandomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("plan.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req plandomain.CreatePlanRequest) (plandomain.Response, error) {
	id, err := shared.NewPlanID(s.genID.Generate().String())
	if err != nil {
		return plandomain.Response{}, err
	}

	price, err := shared.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return plandomain.Response{}, err
	}

	unit, err := shared.ParseCycleUnit(req.CycleUnit)
	if err != nil {
		return plandomain.Response{}, err
	}
	interval := req.CycleInterval
	if interval == 0 {
		interval = 1
	}
	cycle, err := shared.NewBillingCycle(unit, interval)
	if err != nil {
		return plandomain.Response{}, err
	}

	plan, err := plandomain.New(id, req.Name, req.Description, price, cycle, s.clock.Now())
	if err != nil {
		return plandomain.Response{}, err
	}

	rec := plan.Record()
	if err := s.repo.Insert(ctx, s.db, &rec); err != nil {
		return plandomain.Response{}, err
	}

	s.log.Info("plan created", zap.String("plan_id", rec.ID), zap.String("name", rec.Name))
	return toResponse(rec), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (plandomain.Response, error) {
	rec, err := s.findRecord(ctx, s.db, id)
	if err != nil {
		return plandomain.Response{}, err
	}
	return toResponse(*rec), nil
}

func (s *Service) List(ctx context.Context) ([]plandomain.Response, error) {
	recs, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	out := make([]plandomain.Response, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	return out, nil
}

func (s *Service) UpdateDetails(ctx context.Context, req plandomain.UpdatePlanDetailsRequest) (plandomain.Response, error) {
	return s.mutate(ctx, req.PlanID, func(plan plandomain.Plan) (plandomain.Plan, error) {
		now := s.clock.Now()
		if req.Name != nil {
			renamed, err := plan.Rename(*req.Name, now)
			if err != nil {
				return plandomain.Plan{}, err
			}
			plan = renamed
		}
		if req.Description != nil {
			plan = plan.UpdateDescription(*req.Description, now)
		}
		return plan, nil
	})
}

func (s *Service) UpdatePrice(ctx context.Context, req plandomain.UpdatePlanPriceRequest) (plandomain.Response, error) {
	return s.mutate(ctx, req.PlanID, func(plan plandomain.Plan) (plandomain.Plan, error) {
		price, err := shared.NewMoney(req.Amount, req.Currency)
		if err != nil {
			return plandomain.Plan{}, err
		}
		return plan.UpdatePrice(price, s.clock.Now()), nil
	})
}

func (s *Service) ToggleStatus(ctx context.Context, req plandomain.TogglePlanStatusRequest) (plandomain.Response, error) {
	return s.mutate(ctx, req.PlanID, func(plan plandomain.Plan) (plandomain.Plan, error) {
		now := s.clock.Now()
		if req.Active {
			return plan.Activate(now), nil
		}
		return plan.Deactivate(now), nil
	})
}

func (s *Service) mutate(ctx context.Context, id string, fn func(plandomain.Plan) (plandomain.Plan, error)) (plandomain.Response, error) {
	var out plandomain.Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.findRecord(ctx, tx, id)
		if err != nil {
			return err
		}

		plan, err := plandomain.FromRecord(*rec)
		if err != nil {
			return err
		}

		mutated, err := fn(plan)
		if err != nil {
			return err
		}

		out = mutated.Record()
		return s.repo.Update(ctx, tx, &out)
	})
	if err != nil {
		return plandomain.Response{}, err
	}
	return toResponse(out), nil
}

func (s *Service) findRecord(ctx context.Context, db *gorm.DB, id string) (*plandomain.Record, error) {
	if _, err := shared.NewPlanID(id); err != nil {
		return nil, err
	}

	rec, err := s.repo.FindByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, plandomain.ErrNotFound
	}
	return rec, nil
}

func toResponse(rec plandomain.Record) plandomain.Response {
	return plandomain.Response{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		Amount:        rec.Amount,
		Currency:      rec.Currency,
		CycleUnit:     rec.CycleUnit,
		CycleInterval: rec.CycleInterval,
		IsActive:      rec.IsActive,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/subhub/internal/clock"
	"github.com/smallbiznis/subhub/internal/event"
	"github.com/smallbiznis/subhub/internal/observability"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	"github.com/smallbiznis/subhub/internal/shared"
	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID    *snowflake.Node
	clock    clock.Clock
	repo     subdomain.Repository
	planRepo plandomain.Repository
	userRepo userdomain.Repository
	payments paymentdomain.Service
	events   event.Publisher
	metrics  *observability.Metrics
}

type ServiceParam struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     subdomain.Repository
	PlanRepo plandomain.Repository
	UserRepo userdomain.Repository
	Payments paymentdomain.Service
	Events   event.Publisher
	Metrics  *observability.Metrics
}

func NewService(p ServiceParam) subdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("subscription.service"),

		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		planRepo: p.PlanRepo,
		userRepo: p.UserRepo,
		payments: p.Payments,
		events:   p.Events,
		metrics:  p.Metrics,
	}
}

// Create opens a subscription for an existing active user on an active plan.
// The first charge runs before anything is persisted, so a declined charge
// leaves only the failed payment row behind.
func (s *Service) Create(ctx context.Context, req subdomain.CreateSubscriptionRequest) (subdomain.Response, error) {
	userID, err := shared.NewUserID(req.UserID)
	if err != nil {
		return subdomain.Response{}, err
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID.String())
	if err != nil {
		return subdomain.Response{}, err
	}
	if user == nil {
		return subdomain.Response{}, userdomain.ErrNotFound
	}
	if !user.IsActive {
		return subdomain.Response{}, userdomain.ErrInactive
	}

	plan, err := s.activePlan(ctx, req.PlanID)
	if err != nil {
		return subdomain.Response{}, err
	}

	id, err := shared.NewSubscriptionID(s.genID.Generate().String())
	if err != nil {
		return subdomain.Response{}, err
	}

	now := s.clock.Now()
	sub, err := subdomain.New(id, userID, plan, derefTime(req.StartDate), now)
	if err != nil {
		return subdomain.Response{}, err
	}

	if _, err := s.payments.Charge(ctx, sub.ID(), plan.Price()); err != nil {
		return subdomain.Response{}, err
	}

	rec := sub.Record()
	if err := s.repo.Insert(ctx, s.db, &rec); err != nil {
		return subdomain.Response{}, err
	}

	s.metrics.SubscriptionTransition(string(subdomain.StatusActive))
	s.publish(ctx, event.NewSubscriptionCreated(sub.ID(), sub.UserID(), plan.ID(), now))
	s.log.Info("subscription created",
		zap.String("subscription_id", rec.ID),
		zap.String("user_id", rec.UserID),
		zap.String("plan_id", rec.PlanID),
	)
	return toResponse(rec), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (subdomain.Response, error) {
	rec, err := s.findRecord(ctx, s.db, id, false)
	if err != nil {
		return subdomain.Response{}, err
	}
	return toResponse(*rec), nil
}

func (s *Service) List(ctx context.Context, req subdomain.ListSubscriptionsRequest) ([]subdomain.Response, error) {
	if req.Status != "" {
		if _, err := subdomain.ParseStatus(req.Status); err != nil {
			return nil, err
		}
	}

	recs, err := s.repo.List(ctx, s.db, subdomain.ListFilter{
		UserID: req.UserID,
		Status: req.Status,
	})
	if err != nil {
		return nil, err
	}

	out := make([]subdomain.Response, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	return out, nil
}

// Renew charges the snapshotted plan price and rolls the window forward.
// Only active subscriptions renew; the charge runs under the row lock so
// concurrent renewals of one subscription cannot double-charge.
func (s *Service) Renew(ctx context.Context, req subdomain.RenewSubscriptionRequest) (subdomain.Response, error) {
	rec, err := s.mutate(ctx, req.SubscriptionID, func(ctx context.Context, sub subdomain.Subscription) (subdomain.Subscription, error) {
		if !sub.IsActive() {
			return subdomain.Subscription{}, subdomain.ErrNotActive
		}

		if _, err := s.payments.Charge(ctx, sub.ID(), sub.Plan().Price()); err != nil {
			return subdomain.Subscription{}, err
		}

		return sub.Renew(derefTime(req.EffectiveDate), s.clock.Now())
	})
	if err != nil {
		return subdomain.Response{}, err
	}

	s.metrics.SubscriptionTransition(string(subdomain.StatusActive))
	s.publish(ctx, event.NewSubscriptionRenewed(mustSubscriptionID(rec.ID), s.clock.Now()))
	s.log.Info("subscription renewed", zap.String("subscription_id", rec.ID))
	return toResponse(rec), nil
}

func (s *Service) Pause(ctx context.Context, id string) (subdomain.Response, error) {
	rec, err := s.mutate(ctx, id, func(_ context.Context, sub subdomain.Subscription) (subdomain.Subscription, error) {
		return sub.Pause(s.clock.Now())
	})
	if err != nil {
		return subdomain.Response{}, err
	}

	s.metrics.SubscriptionTransition(string(subdomain.StatusPaused))
	s.log.Info("subscription paused", zap.String("subscription_id", rec.ID))
	return toResponse(rec), nil
}

func (s *Service) Resume(ctx context.Context, id string) (subdomain.Response, error) {
	rec, err := s.mutate(ctx, id, func(_ context.Context, sub subdomain.Subscription) (subdomain.Subscription, error) {
		return sub.Resume(s.clock.Now())
	})
	if err != nil {
		return subdomain.Response{}, err
	}

	s.metrics.SubscriptionTransition(string(subdomain.StatusActive))
	s.publish(ctx, event.NewSubscriptionResumed(mustSubscriptionID(rec.ID), s.clock.Now()))
	s.log.Info("subscription resumed", zap.String("subscription_id", rec.ID))
	return toResponse(rec), nil
}

func (s *Service) Cancel(ctx context.Context, req subdomain.CancelSubscriptionRequest) (subdomain.Response, error) {
	rec, err := s.mutate(ctx, req.SubscriptionID, func(_ context.Context, sub subdomain.Subscription) (subdomain.Subscription, error) {
		return sub.Cancel(derefTime(req.EffectiveDate), s.clock.Now())
	})
	if err != nil {
		return subdomain.Response{}, err
	}

	s.metrics.SubscriptionTransition(string(subdomain.StatusCancelled))
	s.publish(ctx, event.NewSubscriptionCancelled(mustSubscriptionID(rec.ID), rec.EndDate, s.clock.Now()))
	s.log.Info("subscription cancelled",
		zap.String("subscription_id", rec.ID),
		zap.Time("effective_date", rec.EndDate),
	)
	return toResponse(rec), nil
}

func (s *Service) ChangePlan(ctx context.Context, req subdomain.ChangePlanRequest) (subdomain.Response, error) {
	plan, err := s.activePlan(ctx, req.PlanID)
	if err != nil {
		return subdomain.Response{}, err
	}

	rec, err := s.mutate(ctx, req.SubscriptionID, func(_ context.Context, sub subdomain.Subscription) (subdomain.Subscription, error) {
		return sub.ChangePlan(plan, derefTime(req.EffectiveDate), s.clock.Now())
	})
	if err != nil {
		return subdomain.Response{}, err
	}

	s.log.Info("subscription plan changed",
		zap.String("subscription_id", rec.ID),
		zap.String("plan_id", rec.PlanID),
	)
	return toResponse(rec), nil
}

func (s *Service) mutate(ctx context.Context, id string, fn func(context.Context, subdomain.Subscription) (subdomain.Subscription, error)) (subdomain.Record, error) {
	var out subdomain.Record
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := s.findRecord(ctx, tx, id, true)
		if err != nil {
			return err
		}

		sub, err := subdomain.FromRecord(*rec)
		if err != nil {
			return err
		}

		mutated, err := fn(ctx, sub)
		if err != nil {
			return err
		}

		out = mutated.Record()
		return s.repo.Update(ctx, tx, &out)
	})
	if err != nil {
		return subdomain.Record{}, err
	}
	return out, nil
}

func (s *Service) findRecord(ctx context.Context, db *gorm.DB, id string, forUpdate bool) (*subdomain.Record, error) {
	if _, err := shared.NewSubscriptionID(id); err != nil {
		return nil, err
	}

	find := s.repo.FindByID
	if forUpdate {
		find = s.repo.FindByIDForUpdate
	}

	rec, err := find(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, subdomain.ErrNotFound
	}
	return rec, nil
}

func (s *Service) activePlan(ctx context.Context, planID string) (plandomain.Plan, error) {
	if _, err := shared.NewPlanID(planID); err != nil {
		return plandomain.Plan{}, err
	}

	rec, err := s.planRepo.FindByID(ctx, s.db, planID)
	if err != nil {
		return plandomain.Plan{}, err
	}
	if rec == nil {
		return plandomain.Plan{}, plandomain.ErrNotFound
	}

	plan, err := plandomain.FromRecord(*rec)
	if err != nil {
		return plandomain.Plan{}, err
	}
	if !plan.IsActive() {
		return plandomain.Plan{}, plandomain.ErrInactive
	}
	return plan, nil
}

func (s *Service) publish(ctx context.Context, ev event.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("event publish failed",
			zap.String("event_type", ev.EventType()),
			zap.Error(err),
		)
	}
}

func toResponse(rec subdomain.Record) subdomain.Response {
	return subdomain.Response{
		ID:        rec.ID,
		UserID:    rec.UserID,
		PlanID:    rec.PlanID,
		Status:    rec.Status,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func mustSubscriptionID(id string) shared.SubscriptionID {
	sid, _ := shared.NewSubscriptionID(id)
	return sid
}

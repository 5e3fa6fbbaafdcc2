package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/subhub/internal/clock"
	"github.com/smallbiznis/subhub/internal/observability"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	"github.com/smallbiznis/subhub/internal/payment/gateway"
	"github.com/smallbiznis/subhub/internal/shared"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	clock   clock.Clock
	repo    paymentdomain.Repository
	gateway gateway.Gateway
	metrics *observability.Metrics
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    paymentdomain.Repository
	Gateway gateway.Gateway
	Metrics *observability.Metrics
}

func NewService(p ServiceParam) paymentdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("payment.service"),

		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		gateway: p.Gateway,
		metrics: p.Metrics,
	}
}

// Charge persists one payment row per attempt. The row outlives the
// outcome so declined charges stay auditable.
func (s *Service) Charge(ctx context.Context, subscriptionID shared.SubscriptionID, amount shared.Money) (paymentdomain.Response, error) {
	id, err := shared.NewPaymentID(s.genID.Generate().String())
	if err != nil {
		return paymentdomain.Response{}, err
	}

	payment := paymentdomain.New(id, subscriptionID, amount, s.clock.Now())

	chargeErr := s.gateway.Charge(ctx, subscriptionID, amount)
	if chargeErr != nil {
		payment, err = payment.MarkFailed()
	} else {
		payment, err = payment.MarkCompleted(s.clock.Now())
	}
	if err != nil {
		return paymentdomain.Response{}, err
	}

	rec := payment.Record()
	if err := s.repo.Insert(ctx, s.db, &rec); err != nil {
		return paymentdomain.Response{}, err
	}

	if chargeErr != nil {
		s.metrics.ChargeFailed()
		s.log.Warn("charge failed",
			zap.String("payment_id", rec.ID),
			zap.String("subscription_id", rec.SubscriptionID),
		)
		return toResponse(rec), paymentdomain.ErrChargeDeclined
	}

	s.metrics.ChargeCompleted()
	s.log.Info("charge completed",
		zap.String("payment_id", rec.ID),
		zap.String("subscription_id", rec.SubscriptionID),
	)
	return toResponse(rec), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (paymentdomain.Response, error) {
	if _, err := shared.NewPaymentID(id); err != nil {
		return paymentdomain.Response{}, err
	}

	rec, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return paymentdomain.Response{}, err
	}
	if rec == nil {
		return paymentdomain.Response{}, paymentdomain.ErrNotFound
	}
	return toResponse(*rec), nil
}

func (s *Service) ListBySubscription(ctx context.Context, subscriptionID string) ([]paymentdomain.Response, error) {
	if _, err := shared.NewSubscriptionID(subscriptionID); err != nil {
		return nil, err
	}

	recs, err := s.repo.ListBySubscription(ctx, s.db, subscriptionID)
	if err != nil {
		return nil, err
	}

	out := make([]paymentdomain.Response, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	return out, nil
}

func toResponse(rec paymentdomain.Record) paymentdomain.Response {
	return paymentdomain.Response{
		ID:             rec.ID,
		SubscriptionID: rec.SubscriptionID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		Status:         rec.Status,
		CreatedAt:      rec.CreatedAt,
		ProcessedAt:    rec.ProcessedAt,
	}
}

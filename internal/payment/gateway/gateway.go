// Package gateway holds the outbound charge capability. The billing service
// only needs "attempt to collect this amount"; everything provider specific
// stays behind the Gateway interface.
package gateway

import (
	"context"
	"errors"

	"github.com/smallbiznis/subhub/internal/config"
	"github.com/smallbiznis/subhub/internal/shared"
	"go.uber.org/zap"
)

// ErrDeclined is returned when the provider refuses the charge.
var ErrDeclined = errors.New("charge_declined")

type Gateway interface {
	Charge(ctx context.Context, subscriptionID shared.SubscriptionID, amount shared.Money) error
}

// InMemory approves every charge unless configured to decline. Used for
// local development and tests.
type InMemory struct {
	log        *zap.Logger
	shouldFail bool
}

func NewInMemory(cfg config.Config, log *zap.Logger) *InMemory {
	return &InMemory{
		log:        log.Named("payment.gateway"),
		shouldFail: cfg.GatewayAlwaysFail,
	}
}

func (g *InMemory) Charge(ctx context.Context, subscriptionID shared.SubscriptionID, amount shared.Money) error {
	if g.shouldFail {
		g.log.Warn("charge declined",
			zap.String("subscription_id", subscriptionID.String()),
			zap.Float64("amount", amount.Amount()),
			zap.String("currency", amount.Currency()),
		)
		return ErrDeclined
	}

	g.log.Info("charge approved",
		zap.String("subscription_id", subscriptionID.String()),
		zap.Float64("amount", amount.Amount()),
		zap.String("currency", amount.Currency()),
	)
	return nil
}

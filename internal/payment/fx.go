package payment

import (
	"github.com/smallbiznis/subhub/internal/payment/gateway"
	"github.com/smallbiznis/subhub/internal/payment/repository"
	"github.com/smallbiznis/subhub/internal/payment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payment.service",
	fx.Provide(
		fx.Annotate(gateway.NewInMemory, fx.As(new(gateway.Gateway))),
	),
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)

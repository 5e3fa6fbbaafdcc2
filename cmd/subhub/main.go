package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/subhub/internal/clock"
	"github.com/smallbiznis/subhub/internal/config"
	"github.com/smallbiznis/subhub/internal/event"
	"github.com/smallbiznis/subhub/internal/logger"
	"github.com/smallbiznis/subhub/internal/observability"
	"github.com/smallbiznis/subhub/internal/payment"
	"github.com/smallbiznis/subhub/internal/plan"
	"github.com/smallbiznis/subhub/internal/server"
	"github.com/smallbiznis/subhub/internal/subscription"
	"github.com/smallbiznis/subhub/internal/user"
	"github.com/smallbiznis/subhub/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		event.Module,

		plan.Module,
		user.Module,
		subscription.Module,
		payment.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

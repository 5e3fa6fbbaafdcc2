// Package db opens the gorm connection and keeps the schema migrated.
package db

import (
	"time"

	"github.com/smallbiznis/subhub/internal/config"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Second)

	log.Info("database connected", zap.String("type", cfg.DBType))
	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&plandomain.Record{},
		&userdomain.Record{},
		&subdomain.Record{},
		&paymentdomain.Record{},
	)
}

var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(Migrate),
)

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/subhub/internal/config"
	paymentdomain "github.com/smallbiznis/subhub/internal/payment/domain"
	plandomain "github.com/smallbiznis/subhub/internal/plan/domain"
	subdomain "github.com/smallbiznis/subhub/internal/subscription/domain"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine *gin.Engine
	cfg    config.Config
	log    *zap.Logger

	planSvc         plandomain.Service
	userSvc         userdomain.Service
	subscriptionSvc subdomain.Service
	paymentSvc      paymentdomain.Service
}

type ServerParams struct {
	fx.In

	Gin *gin.Engine
	Cfg config.Config
	Log *zap.Logger

	PlanSvc         plandomain.Service
	UserSvc         userdomain.Service
	SubscriptionSvc subdomain.Service
	PaymentSvc      paymentdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine: p.Gin,
		cfg:    p.Cfg,
		log:    p.Log.Named("http.server"),

		planSvc:         p.PlanSvc,
		userSvc:         p.UserSvc,
		subscriptionSvc: p.SubscriptionSvc,
		paymentSvc:      p.PaymentSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterRoutes() {
	v1 := s.engine.Group("/v1")

	plans := v1.Group("/plans")
	{
		plans.POST("", s.CreatePlan)
		plans.GET("", s.ListPlans)
		plans.GET("/:id", s.GetPlan)
		plans.PATCH("/:id", s.UpdatePlanDetails)
		plans.PATCH("/:id/price", s.UpdatePlanPrice)
		plans.PATCH("/:id/status", s.TogglePlanStatus)
	}

	users := v1.Group("/users")
	{
		users.POST("", s.CreateUser)
		users.GET("", s.ListUsers)
		users.GET("/:id", s.GetUser)
		users.PATCH("/:id", s.UpdateUserProfile)
		users.POST("/:id/status", s.ToggleUserStatus)
		users.PATCH("/:id/role", s.ChangeUserRole)
	}

	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.POST("", s.CreateSubscription)
		subscriptions.GET("", s.ListSubscriptions)
		subscriptions.GET("/:id", s.GetSubscription)
		subscriptions.PATCH("/:id/renew", s.RenewSubscription)
		subscriptions.PATCH("/:id/pause", s.PauseSubscription)
		subscriptions.PATCH("/:id/resume", s.ResumeSubscription)
		subscriptions.PATCH("/:id/plan", s.ChangeSubscriptionPlan)
		subscriptions.DELETE("/:id", s.CancelSubscription)
		subscriptions.GET("/:id/payments", s.ListSubscriptionPayments)
	}
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fendiRahmans/portofolio-api/internal/handler"
	"github.com/fendiRahmans/portofolio-api/internal/middleware"
	"github.com/fendiRahmans/portofolio-api/internal/repository"
	"github.com/fendiRahmans/portofolio-api/internal/routes"
	"github.com/fendiRahmans/portofolio-api/internal/service"
	"github.com/fendiRahmans/portofolio-api/pkg/cache"
	"github.com/fendiRahmans/portofolio-api/pkg/config"
	"github.com/fendiRahmans/portofolio-api/pkg/database"
	"github.com/fendiRahmans/portofolio-api/pkg/logger"
	corsmiddleware "github.com/fendiRahmans/portofolio-api/pkg/middleware/cors"
	reqidmiddleware "github.com/fendiRahmans/portofolio-api/pkg/middleware/requestid"
	"github.com/fendiRahmans/portofolio-api/pkg/validation"
)

// @title Portofolio API
// @version 0.1.0
// @description Backend for the personal portfolio site and its admin panel
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, using in-process cache", "error", err)
			redisClient = nil
		}
	}

	validate := validation.New()

	userRepo := repository.NewUserRepository(db)
	techStackRepo := repository.NewTechStackRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheSvc := service.NewCacheService(cacheRepo, cfg.Cache.TTL, logr, cfg.Cache.Enabled)
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	})
	techStackSvc := service.NewTechStackService(techStackRepo, validate, cacheSvc, logr)
	careerSvc := service.NewCareerService(careerRepo, validate, cacheSvc, logr)
	contactSvc := service.NewContactService(contactRepo, validate, logr)
	settingSvc := service.NewSettingService(settingRepo, validate, cacheSvc, logr)
	aboutSvc := service.NewAboutService(aboutRepo, validate, cacheSvc, logr)
	siteSvc := service.NewSiteService(careerSvc, settingSvc, cacheSvc, logr)
	dashboardSvc := service.NewDashboardService(techStackRepo, careerRepo, contactRepo, settingRepo, settingSvc, logr)

	secureCookie := cfg.Env == config.EnvProduction
	cookieMaxAge := int(cfg.Session.TTL.Seconds())

	metrics := middleware.NewMetricsCollector()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(metrics.Middleware())

	routes.Register(r, cfg, routes.Deps{
		Auth:      handler.NewAuthHandler(authSvc, cookieMaxAge, secureCookie),
		Public:    handler.NewPublicHandler(techStackSvc, careerSvc, aboutSvc, siteSvc, contactSvc),
		TechStack: handler.NewTechStackHandler(techStackSvc),
		Career:    handler.NewCareerHandler(careerSvc),
		Contact:   handler.NewContactHandler(contactSvc),
		Setting:   handler.NewSettingHandler(settingSvc),
		About:     handler.NewAboutHandler(aboutSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),

		AuthService: authSvc,
		Metrics:     metrics,
		DB:          db,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	internal_cache "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/cache"
	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	internal_normalizers "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/normalizers"
	frontend_routers "github.com/rapidaai/gujarati-frontend/api/frontend-api/router"
	"github.com/rapidaai/gujarati-frontend/config"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

const shutdownTimeout = 10 * time.Second

type AppRunner struct {
	E      *gin.Engine
	Cfg    *config.AppConfig
	Logger commons.Logger
	Redis  *redis.Client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appRunner := AppRunner{}
	if err := appRunner.Configuration(); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appRunner.Logging()
	defer appRunner.Logger.Sync()

	service, err := appRunner.Service(ctx)
	if err != nil {
		appRunner.Logger.Fatalf("failed to build frontend service: %v", err)
	}
	appRunner.Init()
	appRunner.Routes(service)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", appRunner.Cfg.Host, appRunner.Cfg.Port),
		Handler: appRunner.E,
	}
	go func() {
		appRunner.Logger.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appRunner.Logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appRunner.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appRunner.Logger.Errorf("graceful shutdown failed: %v", err)
	}
	if appRunner.Redis != nil {
		appRunner.Redis.Close()
	}
}

func (app *AppRunner) Configuration() error {
	v, err := config.InitConfig()
	if err != nil {
		return err
	}
	cfg, err := config.GetApplicationConfig(v)
	if err != nil {
		return err
	}
	app.Cfg = cfg
	return nil
}

func (app *AppRunner) Logging() {
	opts := []commons.LoggerOption{
		commons.WithLevel(app.Cfg.LogLevel),
		commons.WithName(app.Cfg.Name),
	}
	if app.Cfg.LogFile != "" {
		opts = append(opts, commons.WithFile(app.Cfg.LogFile))
	}
	logger, err := commons.NewApplicationLogger(opts...)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	app.Logger = logger
}

// Service wires the front end. Redis is optional: when it cannot be reached
// the service runs uncached.
func (app *AppRunner) Service(ctx context.Context) (*internal_frontend.Service, error) {
	opts := []internal_frontend.Option{
		internal_frontend.WithConcurrency(app.Cfg.BatchConcurrency),
	}

	if rules := app.Cfg.NormalizerRules(); len(rules) > 0 {
		pipeline, err := internal_normalizers.BuildNormalizerPipeline(app.Logger, rules)
		if err != nil {
			return nil, fmt.Errorf("invalid normalizer rules: %w", err)
		}
		opts = append(opts, internal_frontend.WithNormalizer(pipeline))
	}

	if app.Cfg.CacheConfig.Enabled {
		rc := app.Cfg.RedisConfig
		client := internal_cache.NewRedisClient(rc.Host, rc.Port, rc.DB, rc.Password)
		if err := internal_cache.Ping(ctx, client); err != nil {
			app.Logger.Warnf("cache disabled: %v", err)
			client.Close()
		} else {
			app.Redis = client
			opts = append(opts, internal_frontend.WithCache(
				internal_cache.NewRedisCache(client, app.Logger, app.Cfg.CacheTTL()),
			))
		}
	}
	return internal_frontend.NewService(app.Logger, opts...)
}

func (app *AppRunner) Init() {
	if !app.Cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	app.E = gin.New()
	app.E.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := app.Cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-Id")
	app.E.Use(cors.New(corsConfig))
	app.E.Use(app.requestLogger())
}

func (app *AppRunner) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Debugf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (app *AppRunner) Routes(service *internal_frontend.Service) {
	frontend_routers.HealthCheckRoutes(app.E, app.Logger, app.Redis)
	frontend_routers.FrontendApiRoute(app.E, app.Logger, service)
}

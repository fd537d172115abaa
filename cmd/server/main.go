package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"marketboard/internal/classifier"
	"marketboard/internal/client/gamma"
	"marketboard/internal/config"
	cronrunner "marketboard/internal/cron"
	"marketboard/internal/handler"
	"marketboard/internal/logger"
	"marketboard/internal/pipeline"

	_ "marketboard/docs"
)

func main() {
	cfgPath := os.Getenv("MB_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("MB_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gammaHTTP := &http.Client{Timeout: cfg.Gamma.Timeout}
	gammaClient := gamma.NewClient(gammaHTTP, cfg.Gamma.BaseURL)

	pipe := &pipeline.Pipeline{
		Fetcher: gammaClient,
		Table:   classifier.DefaultTable(),
		Config:  cfg.Pipeline,
		Logger:  logger,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{Gamma: gammaClient}
	healthHandler.Register(engine)
	marketHandler := &handler.MarketHandler{Source: pipe, Logger: logger}
	marketHandler.Register(engine)
	categoryHandler := &handler.CategoryHandler{}
	categoryHandler.Register(engine)
	betHandler := &handler.BetHandler{}
	betHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cronRunner := cronrunner.New(logger, ctx)
	if cfg.Probe.Enabled {
		_, err := cronRunner.Add(cfg.Probe.Schedule, func(ctx context.Context) {
			start := time.Now()
			views, err := pipe.Run(ctx)
			if err != nil {
				logger.Warn("pipeline probe failed", zap.Error(err))
				return
			}
			// Results are discarded on purpose: the probe observes the
			// pipeline, it never caches for the API.
			logger.Info("pipeline probe ok",
				zap.Int("markets", len(views)),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
		if err != nil {
			logger.Warn("cron register pipeline probe failed", zap.Error(err))
		}
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

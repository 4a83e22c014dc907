package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/validity-dashboard/internal/analysis"
	"github.com/jengzang/validity-dashboard/internal/api"
	"github.com/jengzang/validity-dashboard/internal/config"
	"github.com/jengzang/validity-dashboard/internal/dataset"
	"github.com/jengzang/validity-dashboard/internal/handler"
	"github.com/jengzang/validity-dashboard/internal/logging"
	"github.com/jengzang/validity-dashboard/internal/metrics"
	"github.com/jengzang/validity-dashboard/internal/middleware"
	"github.com/jengzang/validity-dashboard/internal/models"
	"github.com/jengzang/validity-dashboard/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 加载数据
	data, err := dataset.Load(ctx, dataset.Config{
		Source:     cfg.Data.Source,
		RawPath:    cfg.Data.RawPath,
		PivotPath:  cfg.Data.PivotPath,
		SQLitePath: cfg.Data.SQLitePath,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load datasets")
	}
	metrics.RecordDataset(len(data.Hits()), len(data.Export().Rows))

	bands, err := analysis.BandsFor(models.BandScheme(cfg.Map.BandScheme))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to select map bands")
	}

	tmpl, err := handler.LoadTemplates()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load page templates")
	}

	var limiter *middleware.RateLimiter
	if cfg.Limiter.Rate > 0 {
		limiter = middleware.NewRateLimiter(cfg.Limiter.Rate, cfg.Limiter.Burst)
		go limiter.Run(ctx)
	}

	// 初始化路由
	svc := service.NewDashboardService(data, bands, cfg.Export.Filename)
	router := api.SetupRouter(handler.NewDashboardHandler(svc), tmpl, limiter)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		logging.Info().Str("addr", srv.Addr).Str("band_scheme", cfg.Map.BandScheme).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Server shutdown did not complete")
		return
	}
	logging.Info().Msg("Server stopped")
}

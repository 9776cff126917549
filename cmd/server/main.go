package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/antonistheo/qrmenu/configs"
	"github.com/antonistheo/qrmenu/internal/application/services"
	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/antonistheo/qrmenu/internal/infrastructure/db"
	"github.com/antonistheo/qrmenu/internal/infrastructure/health"
	"github.com/antonistheo/qrmenu/internal/infrastructure/httpserver"
	"github.com/antonistheo/qrmenu/internal/infrastructure/memcache"
	"github.com/antonistheo/qrmenu/internal/infrastructure/qrencode"
	qrmenuRedis "github.com/antonistheo/qrmenu/internal/infrastructure/redis"
	"github.com/antonistheo/qrmenu/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting QR menu service...")

	var healthCheckers []ports.HealthChecker

	// Shell cache backend: Redis when configured, in-process otherwise.
	var cache ports.Cache
	if cfg.Redis.Host != "" {
		redisClient, err := qrmenuRedis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		cache = qrmenuRedis.NewRedisCache(redisClient, "qrmenu")
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
		logger.Info("Connected to Redis successfully")
	} else {
		cache = memcache.New()
		logger.Info("Using in-process shell cache (REDIS_HOST not set)")
	}

	// Menu source per configuration.
	var source ports.MenuSource
	switch cfg.Menu.Source {
	case "postgres":
		database, err := db.NewDatabase(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database:", err)
		}
		defer database.Close()
		logger.Info("Connected to database successfully")

		if err := database.Migrate("./migrations"); err != nil {
			logger.Warn("Failed to run migrations:", err)
		}
		source = repositories.NewPostgresMenuSource(database, logger)
		healthCheckers = append(healthCheckers, health.NewDBHealthChecker(database))
	case "http":
		source = repositories.NewHTTPMenuSource(cfg.Menu.URL, cfg.Menu.ReloadTimeout, logger)
	default:
		source = repositories.NewFileMenuSource(cfg.Menu.Path)
	}

	formatter := menu.PriceFormatter{
		Symbol:   cfg.Menu.CurrencySymbol,
		Position: menu.SymbolPosition(cfg.Menu.CurrencyPosition),
	}

	// Wire services.
	menuService := services.NewMenuService(source, formatter, services.MenuConfig{
		SkeletonCount: cfg.Menu.SkeletonCount,
		ReloadQuiet:   cfg.Menu.ReloadQuiet,
		ReloadTimeout: cfg.Menu.ReloadTimeout,
	}, logger)

	assetService := services.NewAssetService(cache, repositories.NewDirAssetOrigin(cfg.Assets.Dir), cfg.Assets.Version, cfg.Assets.Manifest, logger)

	qrService := services.NewQRService(qrencode.New(), services.QRConfig{
		PublicURL:    cfg.QR.PublicURL,
		Size:         cfg.QR.Size,
		DownloadName: cfg.QR.DownloadName,
	}, logger)

	authService := services.NewAdminAuthService(services.AdminAuthConfig{
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       cfg.Admin.JWTSecret,
		TokenTTL:     cfg.Admin.TokenTTL,
	}, logger)

	// Initial load, install and render. A failed install only degrades the
	// offline shell; the live service keeps running.
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := menuService.Reload(startupCtx); err != nil {
		logger.WithError(err).Error("initial menu load failed")
	}
	if err := assetService.Install(startupCtx); err != nil {
		logger.WithError(err).Warn("shell cache install failed; offline support degraded")
	}
	if _, err := qrService.Generate(cfg.QR.PublicURL, 0); err != nil {
		logger.WithError(err).Warn("initial qr render failed")
	}
	cancelStartup()

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		MenuService:    menuService,
		QRService:      qrService,
		AssetService:   assetService,
		AuthService:    authService,
		HealthCheckers: healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

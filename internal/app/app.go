package app

import (
	"fmt"

	"go-empdir/internal/assets"
	"go-empdir/internal/config"
	"go-empdir/internal/employee"
	"go-empdir/internal/events"
	"go-empdir/internal/middleware"
	"go-empdir/internal/shared/connection"
	"go-empdir/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp menyusun seluruh dependency dan memasang routes.
// Redis, object store, dan Kafka bersifat opsional: aplikasi tetap jalan
// (dengan degradasi) saat tidak dikonfigurasi.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	logger := zap.L()

	// 1. Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}

	if err := gormDB.AutoMigrate(&employee.Employee{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
	}

	var fetcher assets.Fetcher
	if cfg.MinioEndpoint != "" {
		minioClient, err := connection.ConnectMinio(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioUseSSL,
		)
		if err != nil {
			// Asset bersifat non-kritis: cukup warning, halaman degrade
			logger.Warn("object store unavailable, pages render without background", zap.Error(err))
		} else {
			fetcher = assets.NewMinioFetcher(minioClient, cfg.MinioBucket, rdb, cfg.AssetTimeout)
		}
	}

	var publisher events.Publisher
	if cfg.KafkaBroker != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaBroker)
	}

	// 2. Presentation
	tmpl, err := view.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	// 3. Middleware
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.RateLimitByIP(50, 100))

	// 4. Modules & Routes
	registerModules(router, sqlDB, gormDB, fetcher, publisher, cfg)

	return nil
}

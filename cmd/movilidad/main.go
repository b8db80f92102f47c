package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/movilidad-dev/movilidad/db"
	"github.com/movilidad-dev/movilidad/internal/auth"
	"github.com/movilidad-dev/movilidad/internal/cache"
	"github.com/movilidad-dev/movilidad/internal/config"
	"github.com/movilidad-dev/movilidad/internal/handlers"
	"github.com/movilidad-dev/movilidad/internal/mailer"
	"github.com/movilidad-dev/movilidad/internal/router"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		logrus.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL, cfg.SQLitePath); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// Leaderboard cache is optional; without REDIS_ADDR every read hits
	// the database.
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("Failed to connect to redis: %v", err)
		}

		handlers.Store = cache.New(rdb)
	}

	handlers.Mail = mailer.New(cfg)

	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.NewRouter(cfg.CORSOrigins)

	logrus.Infof("Movilidad API listening on :%s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

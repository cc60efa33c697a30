// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	db "github.com/pairchat/gofiber-dm-api/infrastructure/persistence/database"
	"github.com/pairchat/gofiber-dm-api/pkg/app"
	"github.com/pairchat/gofiber-dm-api/pkg/configs"
	"github.com/pairchat/gofiber-dm-api/pkg/di"
	"github.com/pairchat/gofiber-dm-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using ambient environment")
	}

	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Debug)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	database, err := configs.NewDatabase(cfg.Database, cfg.Server.Debug)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := db.RunMigration(database, zlog); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	if err := db.CreateIndices(database, zlog); err != nil {
		zlog.Fatal("index creation failed", zap.Error(err))
	}

	redisClient, err := configs.NewRedis(cfg.Redis)
	if err != nil {
		zlog.Fatal("redis connection failed", zap.Error(err))
	}
	zlog.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))

	container := di.NewContainer(database, redisClient, cfg, zlog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go container.WebSocketHub.Run(ctx)

	fiberApp := app.SetupApp(container, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := fiberApp.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-quit
	zlog.Info("shutting down")
	cancel()
	if err := fiberApp.Shutdown(); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		zlog.Error("redis close error", zap.Error(err))
	}
}

package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/config"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/handler"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/middleware"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/repository"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(config.NewLogger(cfg))

	if envErr != nil {
		slog.Info("no .env file found, using environment variables")
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var rdb *redis.Client
	if client, err := config.NewRedisClient(cfg); err != nil {
		slog.Warn("redis unavailable, caching disabled", "error", err)
	} else {
		rdb = client
		defer rdb.Close()
	}

	var minioClient *minio.Client
	if client, err := config.NewMinIOClient(cfg); err != nil {
		slog.Warn("minio unavailable, avatars will not be presigned", "error", err)
	} else {
		minioClient = client
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	handler.SetupRoutes(app, handlers, services.Auth)

	slog.Info("server starting", "port", cfg.Port, "environment", cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

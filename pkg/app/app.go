// pkg/app/app.go
package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/middleware"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/routes"
	"github.com/pairchat/gofiber-dm-api/interfaces/websocket"
	"github.com/pairchat/gofiber-dm-api/pkg/configs"
	"github.com/pairchat/gofiber-dm-api/pkg/di"
)

// SetupApp builds the fiber app: middleware stack, REST routes and the
// websocket endpoint.
func SetupApp(container *di.Container, cfg *configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization,X-Requested-With",
		ExposeHeaders: "Content-Length,Content-Type",
		MaxAge:        86400,
	}))
	app.Use(compress.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "pairchat direct message API",
			"status":  "online",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	protected := middleware.Protected(cfg.Auth.JWTSecret)

	routes.SetupRoutes(
		app,
		protected,
		container.RelationshipHandler,
		container.MessageHandler,
		container.UnreadHandler,
		container.PushHandler,
		container.PresenceHandler,
		container.UserHandler,
	)

	websocket.RegisterWebSocketRoutes(app, container.WebSocketHub, cfg.Realtime, protected)

	return app
}

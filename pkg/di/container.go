// pkg/di/container.go
package di

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pairchat/gofiber-dm-api/application/serviceimpl"
	"github.com/pairchat/gofiber-dm-api/domain/port"
	"github.com/pairchat/gofiber-dm-api/domain/repository"
	"github.com/pairchat/gofiber-dm-api/domain/service"
	"github.com/pairchat/gofiber-dm-api/infrastructure/adapter"
	"github.com/pairchat/gofiber-dm-api/infrastructure/persistence/postgres"
	pushinfra "github.com/pairchat/gofiber-dm-api/infrastructure/push/webpush"
	"github.com/pairchat/gofiber-dm-api/interfaces/api/handler"
	"github.com/pairchat/gofiber-dm-api/interfaces/websocket"
	"github.com/pairchat/gofiber-dm-api/pkg/configs"
)

// Container wires every dependency of the application once, at startup.
type Container struct {
	// Repositories
	UserRepo         repository.UserRepository
	RelationshipRepo repository.RelationshipRepository
	MessageRepo      repository.MessageRepository
	SubscriptionRepo repository.PushSubscriptionRepository

	// Realtime components
	Registry     *websocket.Registry
	WebSocketHub *websocket.Hub
	RealtimePort port.RealtimePort
	PushSender   port.PushSender

	// Services
	UserService         service.UserService
	RelationshipService service.RelationshipService
	MessageService      service.MessageService
	UnreadService       service.UnreadService
	PushService         service.PushService
	PresenceService     service.PresenceService

	// Handlers
	UserHandler         *handler.UserHandler
	RelationshipHandler *handler.RelationshipHandler
	MessageHandler      *handler.MessageHandler
	UnreadHandler       *handler.UnreadHandler
	PushHandler         *handler.PushHandler
	PresenceHandler     *handler.PresenceHandler

	RedisClient *redis.Client
	Log         *zap.Logger
}

func NewContainer(db *gorm.DB, redisClient *redis.Client, cfg *configs.Config, log *zap.Logger) *Container {
	c := &Container{RedisClient: redisClient, Log: log}

	// Repositories
	c.UserRepo = postgres.NewUserRepository(db)
	c.RelationshipRepo = postgres.NewRelationshipRepository(db)
	c.MessageRepo = postgres.NewMessageRepository(db)
	c.SubscriptionRepo = postgres.NewPushSubscriptionRepository(db)

	// Realtime core
	c.Registry = websocket.NewRegistry()
	c.WebSocketHub = websocket.NewHub(c.Registry, log)
	c.RealtimePort = adapter.NewRealtimeAdapter(c.WebSocketHub)
	c.PushSender = pushinfra.NewWebPushSender(cfg.Push)

	// Services
	c.UserService = serviceimpl.NewUserService(c.UserRepo)
	c.RelationshipService = serviceimpl.NewRelationshipService(c.RelationshipRepo, c.UserRepo, log)
	c.PushService = serviceimpl.NewPushService(c.SubscriptionRepo, c.PushSender, log)
	c.UnreadService = serviceimpl.NewUnreadService(c.MessageRepo, log)
	c.MessageService = serviceimpl.NewMessageService(
		c.MessageRepo, c.UserRepo, c.RelationshipService, c.PushService, c.RealtimePort, log)
	c.PresenceService = serviceimpl.NewPresenceService(c.WebSocketHub, redisClient, log)

	// The hub needs two services that themselves need the hub; close the
	// loop through setters before Run starts.
	c.WebSocketHub.SetPresenceService(c.PresenceService)
	c.WebSocketHub.SetMessageService(c.MessageService)

	// Handlers
	c.UserHandler = handler.NewUserHandler(c.UserService)
	c.RelationshipHandler = handler.NewRelationshipHandler(c.RelationshipService)
	c.MessageHandler = handler.NewMessageHandler(c.MessageService)
	c.UnreadHandler = handler.NewUnreadHandler(c.UnreadService)
	c.PushHandler = handler.NewPushHandler(c.PushService)
	c.PresenceHandler = handler.NewPresenceHandler(c.PresenceService)

	return c
}

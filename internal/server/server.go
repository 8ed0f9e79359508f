package server

import (
	"backend-globetrotter/internal/ai"
	"backend-globetrotter/internal/auth"
	"backend-globetrotter/internal/config"
	"backend-globetrotter/internal/stream"
	"backend-globetrotter/internal/trip"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
	Trips  *trip.Service
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)

	var store trip.Store
	if redisClient != nil {
		store = trip.NewRedisStore(redisClient)
	} else {
		store = trip.NewMemoryStore()
	}

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: hub,
		Trips:  trip.NewService(store, cfg.ShareBaseURL, hub),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	trip.RegisterRoutes(s.App.Group("/trips"), s.Trips, jwtMiddleware)
	ai.RegisterRoutes(s.App.Group("/ai"), ai.NewGateway(s.Cfg.GeminiAPIKey, s.Cfg.GeminiAPIURL), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

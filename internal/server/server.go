package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/craftnet/backend/config"
	"github.com/craftnet/backend/internal/api"
	"github.com/craftnet/backend/internal/database"
	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
)

// Server wires the database, Redis, services and HTTP routes together.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
}

// New builds a fully wired server from configuration: it connects to
// PostgreSQL, runs migrations, connects to Redis when available and
// registers every API route under /api/v1.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	// Redis backs sessions and rate limiting. Development falls back to
	// in-memory sessions so the server can run without it; production
	// treats a missing Redis as fatal.
	var (
		redisClient *redis.Client
		sessions    service.SessionStore
		rateLimiter *middleware.RateLimiter
	)
	redisClient, err = database.NewRedisClient(cfg)
	if err != nil {
		if config.GetEnvironment() == config.Production {
			return nil, fmt.Errorf("redis: %w", err)
		}
		log.Printf("Redis unavailable, using in-memory sessions: %v", err)
		sessions = service.NewMemorySessionStore()
	} else {
		sessions = service.NewRedisSessionStore(redisClient)
		rateLimiter = middleware.NewPostCreationRateLimiter(redisClient)
	}

	// S3 is optional; without it image keys are returned untouched.
	var s3cfg *config.S3Config
	if cfg.S3Bucket != "" {
		s3cfg, err = config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
	}

	authService := service.NewAuthService(db, sessions, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	companyService := service.NewCompanyService(db)
	postService := service.NewPostService(db)
	commentService := service.NewCommentService(db)
	followerService := service.NewFollowerService(db)
	mediaService := service.NewMediaService(s3cfg)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewProfileHandler(profileService, authService, mediaService).RegisterRoutes(v1)
	api.NewCompanyHandler(companyService, authService).RegisterRoutes(v1)
	api.NewPostHandler(postService, authService, rateLimiter).RegisterRoutes(v1)
	api.NewCommentHandler(commentService, authService).RegisterRoutes(v1)
	api.NewFollowerHandler(followerService, authService).RegisterRoutes(v1)

	return &Server{
		router: router,
		db:     db,
		redis:  redisClient,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
	}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the Redis connection.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

package container

import (
	"context"
	"fmt"
	"time"

	"book-manager/internal/config"
	infraCache "book-manager/internal/infrastructure/cache"
	"book-manager/internal/infrastructure/database"
	"book-manager/pkg/cache"
	"book-manager/pkg/jwt"
	"book-manager/pkg/logger"

	// User domain imports
	"book-manager/internal/domains/user"
	userHandler "book-manager/internal/domains/user/handler"
	userRepo "book-manager/internal/domains/user/repository"
	userService "book-manager/internal/domains/user/service"

	// Book domain imports
	"book-manager/internal/domains/book"
	bookHandler "book-manager/internal/domains/book/handler"
	bookRepo "book-manager/internal/domains/book/repository"
	bookService "book-manager/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)

	Config     *config.Config       // Application config
	DB         *database.PostgresDB // nil khi STORAGE_DRIVER=memory
	Cache      cache.Cache          // Redis hoặc Noop
	JWTManager *jwt.Manager

	redis *infraCache.RedisCache // giữ để Close khi shutdown

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	UserRepo user.Repository // Credential store
	BookRepo book.Repository // Book store (cache-aside)

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	UserService user.Service // Auth Service
	BookService book.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	UserHandler *userHandler.UserHandler
	BookHandler *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer load config từ env rồi build toàn bộ dependency graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig build container từ config có sẵn.
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Infrastructure (DB, Cache, JWT) - phụ thuộc Config
// 2. Repositories - phụ thuộc Infrastructure
// 3. Services - phụ thuộc Repositories
// 4. Handlers - phụ thuộc Services
func NewWithConfig(cfg *config.Config) (*Container, error) {
	logger.Info("[CONTAINER] Initializing DI Container...", map[string]interface{}{
		"env":     cfg.App.Environment,
		"storage": cfg.Storage.Driver,
	})

	c := &Container{Config: cfg, Cache: cache.Noop{}}

	// ========================================
	// STEP 1: INITIALIZE INFRASTRUCTURE
	// ========================================
	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// ========================================
	// STEP 2-4: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("[CONTAINER] DI Container initialized successfully", nil)
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure() error {
	if c.Config.Storage.Driver != config.StoragePostgres {
		logger.Warn("[CONTAINER] Using in-memory storage, data is lost on restart", nil)
		return nil
	}

	// Database phụ thuộc Config
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Redis failure không critical - log warning và continue với Noop
	if c.Config.Redis.Enabled {
		rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("[CONTAINER] Redis connection failed (non-critical), cache disabled", err)
			_ = rc.Close()
		} else {
			c.redis = rc
			c.Cache = rc
		}
	}

	return nil
}

// initRepositories - Pattern: Constructor Injection
func (c *Container) initRepositories() {
	if c.DB != nil {
		c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		c.UserRepo = userRepo.NewMemoryRepository()
		c.BookRepo = bookRepo.NewMemoryRepository()
	}

	c.BookRepo = bookRepo.NewCachedRepository(c.BookRepo, c.Cache, bookRepo.DefaultCacheTTL)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.JWTManager,
		c.Config.Auth.BcryptCost,
	)
	c.BookService = bookService.NewBookService(c.BookRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup dọn dẹp resources khi shutdown.
// Safe to call multiple times
func (c *Container) Cleanup() {
	logger.Info("[CONTAINER] Cleaning up container resources...", nil)

	if c.DB != nil {
		_ = c.DB.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("[CONTAINER] Failed to close Redis", err)
		}
		c.redis = nil
	}
}

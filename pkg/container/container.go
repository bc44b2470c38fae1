package container

import (
	"context"
	"fmt"
	"time"

	"library-catalog-backend/internal/config"
	catalogHandler "library-catalog-backend/internal/domains/catalog/handler"
	catalogRepo "library-catalog-backend/internal/domains/catalog/repository"
	catalogService "library-catalog-backend/internal/domains/catalog/service"
	infraCache "library-catalog-backend/internal/infrastructure/cache"
	"library-catalog-backend/internal/infrastructure/database"
	"library-catalog-backend/pkg/cache"
	"library-catalog-backend/pkg/logger"

	"library-catalog-backend/internal/domains/catalog"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo catalog.AuthorRepository
	GenreRepo  catalog.GenreRepository
	BookRepo   catalog.BookRepository
	CopyRepo   catalog.CopyRepository

	AuthorService  catalog.AuthorService
	GenreService   catalog.GenreService
	BookService    catalog.BookService
	CopyService    catalog.CopyService
	CatalogService catalog.CatalogService

	AuthorHandler  *catalogHandler.AuthorHandler
	GenreHandler   *catalogHandler.GenreHandler
	BookHandler    *catalogHandler.BookHandler
	CopyHandler    *catalogHandler.CopyHandler
	CatalogHandler *catalogHandler.CatalogHandler
}

// NewContainer builds the whole application. A database failure aborts
// startup; a Redis failure does not, the app just runs without a cache.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Error("redis connection failed, running without cache", err)
		c.Cache = cache.NoOp{}
	} else {
		c.Cache = redisCache
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = catalogRepo.NewPostgresAuthorRepository(pool, c.Cache)
	c.GenreRepo = catalogRepo.NewPostgresGenreRepository(pool)
	c.BookRepo = catalogRepo.NewPostgresBookRepository(pool)
	c.CopyRepo = catalogRepo.NewPostgresCopyRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = catalogService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.GenreService = catalogService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.BookService = catalogService.NewBookService(c.BookRepo, c.CopyRepo, c.AuthorRepo, c.GenreRepo)
	c.CopyService = catalogService.NewCopyService(c.CopyRepo, c.BookRepo)
	c.CatalogService = catalogService.NewCatalogService(c.AuthorRepo, c.GenreRepo, c.BookRepo, c.CopyRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = catalogHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = catalogHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = catalogHandler.NewBookHandler(c.BookService)
	c.CopyHandler = catalogHandler.NewCopyHandler(c.CopyService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
}

// Cleanup releases infrastructure resources. Called from graceful
// shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Close()
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}

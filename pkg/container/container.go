package container

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/domains/author"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"
	"library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"
	"library-catalog/internal/domains/category"
	categoryHandler "library-catalog/internal/domains/category/handler"
	categoryRepo "library-catalog/internal/domains/category/repository"
	categoryService "library-catalog/internal/domains/category/service"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
	"library-catalog/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Exactly one of DB and
// SQLite is set, depending on the configured driver.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	SQLite   *sql.DB
	Cache    cache.Cache // nil when Redis is disabled
	Storage  storage.BlobStorage
	Queue    queue.Enqueuer
	redis    *infraCache.RedisClient
	enqueuer *queue.AsynqEnqueuer

	// Repositories
	AuthorRepo   author.Repository
	CategoryRepo category.Repository
	BookRepo     book.Repository

	// Services
	AuthorService   author.Service
	CategoryService category.Service
	BookService     book.Service
	CoverService    book.CoverService

	// Handlers
	AuthorHandler   *authorHandler.AuthorHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BookHandler     *bookHandler.BookHandler
}

// ========================================
// CONSTRUCTOR
// ========================================

// NewContainer builds the graph in dependency order: database, cache,
// storage, queue, repositories, services, handlers. On failure everything
// opened so far is released.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing container")

	c := &Container{Config: cfg}
	if err := c.init(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.Database.Driver).
		Str("storage_driver", cfg.Storage.Driver).
		Bool("redis", c.Cache != nil).
		Msg("Container initialized")
	return c, nil
}

func (c *Container) init(ctx context.Context) error {
	if err := c.initDatabase(ctx); err != nil {
		return err
	}
	c.initCache(ctx)

	var err error
	if c.Storage, err = OpenStorage(ctx, c.Config.Storage); err != nil {
		return err
	}
	c.initQueue()

	c.initRepositories()
	c.initServices()
	c.initHandlers()
	return nil
}

// ========================================
// INFRASTRUCTURE
// ========================================

func (c *Container) initDatabase(ctx context.Context) error {
	switch c.Config.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, c.Config.Database.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite: %w", err)
		}
		c.SQLite = db
		log.Info().Str("path", c.Config.Database.SQLitePath).Msg("SQLite opened")

	default:
		db := database.NewPostgresDB(c.Config.PostgresConfig())
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := db.Connect(connectCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
	}
	return nil
}

// initCache connects Redis when enabled. A Redis outage is not fatal: the
// catalog runs uncached.
func (c *Container) initCache(ctx context.Context) {
	rc := c.Config.Redis
	if !rc.Enabled {
		log.Info().Msg("Redis disabled, running without cache")
		return
	}

	client := infraCache.NewRedisClient(rc.Addr, rc.Password, rc.DB)
	if err := client.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), running without cache")
		_ = client.Close()
		return
	}
	c.redis = client
	c.Cache = client
}

// OpenStorage builds the configured blob store. Shared with cmd/worker.
func OpenStorage(ctx context.Context, sc config.StorageConfig) (storage.BlobStorage, error) {
	switch sc.Driver {
	case config.StorageMinIO:
		s, err := storage.NewMinIOStorage(ctx, storage.MinIOConfig{
			Endpoint:  sc.MinIO.Endpoint,
			AccessKey: sc.MinIO.AccessKey,
			SecretKey: sc.MinIO.SecretKey,
			Bucket:    sc.MinIO.Bucket,
			UseSSL:    sc.MinIO.UseSSL,
			PublicURL: sc.MinIO.PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init minio storage: %w", err)
		}
		return s, nil
	default:
		s, err := storage.NewLocalStorage(sc.LocalRoot, sc.PublicPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		return s, nil
	}
}

// RedisOpt is the asynq connection for the configured Redis.
func RedisOpt(rc config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: rc.Addr, Password: rc.Password, DB: rc.DB}
}

func (c *Container) initQueue() {
	if c.redis == nil {
		c.Queue = queue.NoopEnqueuer{}
		return
	}
	c.enqueuer = queue.NewAsynqEnqueuer(RedisOpt(c.Config.Redis))
	c.Queue = c.enqueuer
}

// ========================================
// DOMAIN LAYERS
// ========================================

func (c *Container) initRepositories() {
	if c.SQLite != nil {
		c.AuthorRepo = authorRepo.NewSQLiteRepository(c.SQLite)
		c.CategoryRepo = categoryRepo.NewSQLiteRepository(c.SQLite)
		c.BookRepo = bookRepo.NewSQLiteRepository(c.SQLite)
	} else {
		c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
		c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	}

	if c.Cache != nil {
		ttl := c.Config.Redis.CacheTTL
		c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, c.Cache, ttl)
		c.CategoryRepo = categoryRepo.NewCachedRepository(c.CategoryRepo, c.Cache, ttl)
		c.BookRepo = bookRepo.NewCachedRepository(c.BookRepo, c.Cache, ttl)
	}
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, categoryService.Options{
		RejectUnchangedName: c.Config.Catalog.RejectUnchangedCategoryName,
	})

	deps := bookService.Deps{
		Books:      c.BookRepo,
		Authors:    c.AuthorRepo,
		Categories: c.CategoryRepo,
		Storage:    c.Storage,
		Queue:      c.Queue,
	}
	c.BookService = bookService.NewBookService(deps)
	c.CoverService = bookService.NewCoverService(deps, bookService.CoverOptions{
		Dir:     c.Config.Storage.CoverDir,
		MaxSize: c.Config.Catalog.MaxCoverSize,
	})
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.CoverService, c.Config.Catalog.MaxCoverSize)
}

// ========================================
// HELPERS
// ========================================

// Migrator returns a migrator for the open database.
func (c *Container) Migrator() (*database.Migrator, error) {
	if c.SQLite != nil {
		return database.NewSQLiteMigrator(c.SQLite)
	}
	return database.NewPostgresMigrator(c.DB.Pool)
}

// Health pings every backing service and reports "ok", "unavailable" or,
// for a cache that is turned off, "disabled". Errors are logged, not returned.
func (c *Container) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := func(name string, err error) string {
		if err != nil {
			log.Warn().Err(err).Str("component", name).Msg("Health check failed")
			return "unavailable"
		}
		return "ok"
	}

	out := map[string]string{}
	switch {
	case c.SQLite != nil:
		out["database"] = status("database", c.SQLite.PingContext(ctx))
	case c.DB != nil:
		out["database"] = status("database", c.DB.HealthCheck(ctx))
	}

	if c.Cache != nil {
		out["cache"] = status("cache", c.Cache.Ping(ctx))
	} else {
		out["cache"] = "disabled"
	}

	if c.Storage != nil {
		out["storage"] = status("storage", c.Storage.Ping(ctx))
	}
	return out
}

// Cleanup releases everything the container opened. Safe on a partially
// built container.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.enqueuer != nil {
		if err := c.enqueuer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close SQLite")
		}
	}
}

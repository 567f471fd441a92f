package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/docstore"

	authorHandler "library-catalog/internal/domains/author/handler"
	authorModel "library-catalog/internal/domains/author/model"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	bookHandler "library-catalog/internal/domains/book/handler"
	bookModel "library-catalog/internal/domains/book/model"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	instanceHandler "library-catalog/internal/domains/bookinstance/handler"
	instanceModel "library-catalog/internal/domains/bookinstance/model"
	instanceRepo "library-catalog/internal/domains/bookinstance/repository"
	instanceService "library-catalog/internal/domains/bookinstance/service"
)

// Container holds the application's dependency graph. Exactly one of DB and
// Redis is set, depending on the configured store driver; both are nil for
// the memory driver.
type Container struct {
	// ========================================
	// INFRASTRUCTURE
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *docstore.RedisClient

	// ========================================
	// REPOSITORIES
	// ========================================
	AuthorRepo       authorRepo.RepositoryInterface
	BookRepo         bookRepo.RepositoryInterface
	BookInstanceRepo instanceRepo.RepositoryInterface

	// ========================================
	// SERVICES
	// ========================================
	AuthorService       authorService.ServiceInterface
	BookService         bookService.ServiceInterface
	BookInstanceService instanceService.ServiceInterface

	// ========================================
	// HANDLERS
	// ========================================
	AuthorHandler       *authorHandler.AuthorHandler
	BookHandler         *bookHandler.BookHandler
	BookInstanceHandler *instanceHandler.BookInstanceHandler
}

// NewContainer connects the configured store and wires repositories,
// services and handlers, in that order.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Info().Str("driver", cfg.Store.Driver).Msg("Initializing container")

	c := &Container{Config: cfg}

	if err := c.initStore(ctx); err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Store.Driver {
	case config.DriverPostgres:
		return c.initPostgres(ctx)
	case config.DriverRedis:
		return c.initRedis(ctx)
	case config.DriverMemory:
		c.initMemory()
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Store.Driver)
	}
}

func (c *Container) initPostgres(ctx context.Context) error {
	db := database.NewPostgresDB(c.Config.Database)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(connectCtx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.EnsureSchema(connectCtx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.BookInstanceRepo = instanceRepo.NewPostgresRepository(db.Pool)
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	cfg := c.Config.Redis
	rc := docstore.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB)
	c.Redis = rc

	if err := rc.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	books := docstore.NewRedisCollection[bookModel.Book](rc.Client, cfg.KeyPrefix, "books")

	c.AuthorRepo = authorRepo.NewDocumentRepository(
		docstore.NewRedisCollection[authorModel.Author](rc.Client, cfg.KeyPrefix, "authors"))
	c.BookRepo = bookRepo.NewDocumentRepository(books)
	c.BookInstanceRepo = instanceRepo.NewDocumentRepository(
		docstore.NewRedisCollection[instanceModel.BookInstance](rc.Client, cfg.KeyPrefix, "bookinstances"), books)
	return nil
}

func (c *Container) initMemory() {
	books := docstore.NewMemoryCollection[bookModel.Book]()

	c.AuthorRepo = authorRepo.NewDocumentRepository(docstore.NewMemoryCollection[authorModel.Author]())
	c.BookRepo = bookRepo.NewDocumentRepository(books)
	c.BookInstanceRepo = instanceRepo.NewDocumentRepository(docstore.NewMemoryCollection[instanceModel.BookInstance](), books)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.BookInstanceRepo)
	c.BookInstanceService = instanceService.NewBookInstanceService(c.BookInstanceRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.BookInstanceHandler = instanceHandler.NewBookInstanceHandler(c.BookInstanceService)
}

// HealthCheck pings the active store. The memory driver is always healthy.
func (c *Container) HealthCheck(ctx context.Context) error {
	switch {
	case c.DB != nil:
		return c.DB.HealthCheck(ctx)
	case c.Redis != nil:
		return c.Redis.HealthCheck(ctx)
	default:
		return nil
	}
}

// Cleanup releases store connections. Safe to call more than once.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
		c.Redis = nil
	}

	log.Info().Msg("Container cleanup completed")
}

// Command seed loads the sample catalogue into the configured store.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/seed"
	"library-catalog/pkg/container"
	"library-catalog/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run(cfg *config.Config) error {
	if cfg.Store.Driver == config.DriverMemory {
		return errors.New("the memory driver does not outlive this process; use postgres or redis")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Cleanup()

	counts, err := seed.Run(ctx, seed.Stores{
		Authors:   c.AuthorRepo,
		Books:     c.BookRepo,
		Instances: c.BookInstanceRepo,
	})
	if err != nil {
		return err
	}

	logger.Info("Catalog seeded", map[string]interface{}{
		"driver":        cfg.Store.Driver,
		"authors":       counts.Authors,
		"books":         counts.Books,
		"bookinstances": counts.Instances,
	})
	return nil
}

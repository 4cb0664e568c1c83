package main

import (
	"context"
	"flag"
	"time"

	"go-gin-activities/config"
	"go-gin-activities/internal/database"
	"go-gin-activities/internal/repository"
	"go-gin-activities/internal/service"
	"go-gin-activities/pkg/logger"

	"go.uber.org/zap"
)

type options struct {
	clear     bool
	clearOnly bool
	timeout   time.Duration
}

func main() {
	var opts options
	flag.BoolVar(&opts.clear, "clear", false, "Clear all tables before seeding")
	flag.BoolVar(&opts.clearOnly, "clear-only", false, "Clear all tables without seeding")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "Overall timeout")
	flag.Parse()

	if err := run(opts); err != nil {
		logger.WithComponent("seed").Fatal("Seed failed", zap.Error(err))
	}
}

func run(opts options) error {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	seeder := service.NewSeedService(
		repository.NewTransactor(pool),
		repository.NewActivityRepository(pool),
		repository.NewEventRepository(pool),
		repository.NewGroupRepository(pool),
		repository.NewPersonRepository(pool),
		repository.NewTagRepository(pool),
		time.Now,
	)

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	return execute(ctx, seeder, opts)
}

// execute 依 flag 決定只清空或是填入資料
func execute(ctx context.Context, seeder service.SeedService, opts options) error {
	if opts.clearOnly {
		return seeder.Clear(ctx)
	}
	return seeder.Seed(ctx, opts.clear)
}

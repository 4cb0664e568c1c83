//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-gin-activities/config"
	"go-gin-activities/internal/database"
	"go-gin-activities/internal/database/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupPostgres 啟動 postgres container、套用 migration，回傳連接池與清理函式
func SetupPostgres(ctx context.Context) (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase(cfg.Database.DBName),
		postgrescontainer.WithUsername(cfg.Database.User),
		postgrescontainer.WithPassword(cfg.Database.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate := func() {
		if err := pg.Terminate(context.Background()); err != nil {
			log.Printf("Warning: failed to terminate postgres container: %v", err)
		}
	}

	host, err := pg.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate()
		return nil, nil, err
	}
	cfg.Database.Host = host
	cfg.Database.Port = port.Port()

	if err := migrations.Up(cfg.Database.URL("pgx5")); err != nil {
		terminate()
		return nil, nil, err
	}

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		terminate()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

// SetupRedis 啟動 redis container，回傳 client 與清理函式
func SetupRedis(ctx context.Context) (*redis.Client, func(), error) {
	cfg := config.LoadTestConfig()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start redis container: %w", err)
	}
	terminate := func() {
		if err := container.Terminate(context.Background()); err != nil {
			log.Printf("Warning: failed to terminate redis container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		terminate()
		return nil, nil, err
	}
	cfg.Redis.Host = host
	cfg.Redis.Port = port.Port()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	log.Println("Test redis connected successfully")

	cleanup := func() {
		rdb.Close()
		terminate()
		log.Println("Test redis closed")
	}
	return rdb, cleanup, nil
}

// TruncateAll 清空所有資料表，保留 schema
func TruncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE event_registration, event_tags, group_tags, group_organizers, groups, activities, people, tags CASCADE
	`)
	return err
}

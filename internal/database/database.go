package database

import (
	"context"

	"go-gin-activities/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func InitDatabase(config *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DSN())
	if err != nil {
		return nil, err
	}

	// 設置連接池參數
	poolConfig.MaxConns = config.MaxConns               // 最大連接數
	poolConfig.MinConns = config.MinConns               // 最小連接數
	poolConfig.MaxConnLifetime = config.MaxConnLifetime // 連接最大生命週期
	poolConfig.MaxConnIdleTime = config.MaxConnIdleTime // 最大閒置時間

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	postgresConnectAttempts = 10
	postgresRetryDelay      = 2 * time.Second
)

// ConnectPostgres opens DATABASE_URL, retrying while the database starts up.
func ConnectPostgres(ctx context.Context, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: DATABASE_URL is empty")
	}

	log := zap.L().Named("database")
	var lastErr error
	for i := 0; i < postgresConnectAttempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		if err == nil {
			log.Info("postgres connected", zap.Int("attempt", i+1))
			return db, nil
		}
		lastErr = err
		log.Warn("postgres connect failed", zap.Int("attempt", i+1), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(postgresRetryDelay):
		}
	}
	return nil, fmt.Errorf("postgres: giving up after %d attempts: %w", postgresConnectAttempts, lastErr)
}

package main

import (
	"context"
	"errors"
	"testing"

	"go-gin-activities/config"
	"go-gin-activities/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeedOnStart(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled", func(t *testing.T) {
		seeder := mocks.NewMockSeedService(t)

		assert.NoError(t, seedOnStart(ctx, seeder, config.StartupConfig{Seed: false, SeedClear: true}))
		seeder.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
	})

	t.Run("Enabled", func(t *testing.T) {
		seeder := mocks.NewMockSeedService(t)
		seeder.EXPECT().Seed(mock.Anything, false).Return(nil).Once()

		assert.NoError(t, seedOnStart(ctx, seeder, config.StartupConfig{Seed: true}))
	})

	t.Run("Enabled with clear", func(t *testing.T) {
		seeder := mocks.NewMockSeedService(t)
		seeder.EXPECT().Seed(mock.Anything, true).Return(nil).Once()

		assert.NoError(t, seedOnStart(ctx, seeder, config.StartupConfig{Seed: true, SeedClear: true}))
	})

	t.Run("Failed - seeder error", func(t *testing.T) {
		seeder := mocks.NewMockSeedService(t)
		seeder.EXPECT().Seed(mock.Anything, false).Return(errors.New("db down")).Once()

		assert.EqualError(t, seedOnStart(ctx, seeder, config.StartupConfig{Seed: true}), "db down")
	})
}

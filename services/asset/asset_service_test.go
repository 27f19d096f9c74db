package assetservice

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ops360/models"
	"ops360/providers"
)

func newTestAssetService(t *testing.T, cache providers.RedisProvider) (*gomock.Controller, *MockAssetRepository, AssetService) {
	ctrl := gomock.NewController(t)

	mockRepo := NewMockAssetRepository(ctrl)
	mockLogger := providers.NewMockZapLoggerProvider(ctrl)
	mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

	service := NewAssetService(mockRepo, cache, mockLogger)
	return ctrl, mockRepo, service
}

func TestGetAssetService(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		holder := "Jane Doe"
		expected := models.Asset{ID: assetID, AssetTag: "LAP-001", Status: models.AssetInUse, EmployeeName: &holder}

		mockRepo.EXPECT().
			GetAssetByID(ctx, assetID).
			Return(expected, nil)

		asset, err := service.GetAsset(ctx, assetID)

		assert.NoError(t, err)
		assert.Equal(t, expected, asset)
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			GetAssetByID(ctx, assetID).
			Return(models.Asset{}, sql.ErrNoRows)

		_, err := service.GetAsset(ctx, assetID)

		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}

func TestMarkAvailableService(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()

	t.Run("succeeds from any prior state", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkAvailable(ctx, assetID).
			Return(nil)

		assert.NoError(t, service.MarkAvailable(ctx, assetID))
	})

	t.Run("repeated invocations both succeed", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkAvailable(ctx, assetID).
			Return(nil).
			Times(2)

		assert.NoError(t, service.MarkAvailable(ctx, assetID))
		assert.NoError(t, service.MarkAvailable(ctx, assetID))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkAvailable(ctx, assetID).
			Return(sql.ErrNoRows)

		assert.ErrorIs(t, service.MarkAvailable(ctx, assetID), ErrAssetNotFound)
	})

	t.Run("store error surfaces", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkAvailable(ctx, assetID).
			Return(errors.New("db error"))

		err := service.MarkAvailable(ctx, assetID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAssetNotFound)
	})
}

func TestMarkInUseService(t *testing.T) {
	ctx := context.Background()
	assetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkInUse(ctx, assetID).
			Return(nil)

		assert.NoError(t, service.MarkInUse(ctx, assetID))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			MarkInUse(ctx, assetID).
			Return(sql.ErrNoRows)

		assert.ErrorIs(t, service.MarkInUse(ctx, assetID), ErrAssetNotFound)
	})
}

func TestGetAssetStatsService(t *testing.T) {
	ctx := context.Background()
	stats := models.AssetStats{Total: 10, Available: 4, InUse: 3, Maintenance: 1, Lost: 1, Retired: 1}

	t.Run("no cache configured computes from the store", func(t *testing.T) {
		ctrl, mockRepo, service := newTestAssetService(t, nil)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			CountAssetsByStatus(ctx).
			Return(stats, nil)

		got, err := service.GetAssetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
		assert.Equal(t, got.Total, got.Available+got.InUse+got.Maintenance+got.Lost+got.Retired)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := providers.NewMockRedisProvider(ctrl)
		mockLogger := providers.NewMockZapLoggerProvider(ctrl)
		mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

		payload, err := jsoniter.MarshalToString(stats)
		require.NoError(t, err)

		mockCache.EXPECT().
			Get(ctx, "ops360:asset_stats").
			Return(payload, nil)

		// repo gets no expectations: a cache hit must not touch the store
		service := NewAssetService(NewMockAssetRepository(ctrl), mockCache, mockLogger)

		got, err := service.GetAssetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache miss computes and writes back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := providers.NewMockRedisProvider(ctrl)
		mockRepo := NewMockAssetRepository(ctrl)
		mockLogger := providers.NewMockZapLoggerProvider(ctrl)
		mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

		mockCache.EXPECT().
			Get(ctx, "ops360:asset_stats").
			Return("", errors.New("redis: nil"))
		mockRepo.EXPECT().
			CountAssetsByStatus(ctx).
			Return(stats, nil)
		mockCache.EXPECT().
			Set(ctx, "ops360:asset_stats", gomock.Any(), 30*time.Second).
			Return(nil)

		service := NewAssetService(mockRepo, mockCache, mockLogger)

		got, err := service.GetAssetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("cache write failure is logged, not surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := providers.NewMockRedisProvider(ctrl)
		mockRepo := NewMockAssetRepository(ctrl)
		mockLogger := providers.NewMockZapLoggerProvider(ctrl)
		mockLogger.EXPECT().GetLogger().Return(zap.NewNop()).AnyTimes()

		mockCache.EXPECT().
			Get(ctx, "ops360:asset_stats").
			Return("", errors.New("redis: nil"))
		mockRepo.EXPECT().
			CountAssetsByStatus(ctx).
			Return(stats, nil)
		mockCache.EXPECT().
			Set(ctx, "ops360:asset_stats", gomock.Any(), 30*time.Second).
			Return(errors.New("redis down"))

		service := NewAssetService(mockRepo, mockCache, mockLogger)

		got, err := service.GetAssetStats(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})
}

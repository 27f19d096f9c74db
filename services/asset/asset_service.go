package assetservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"ops360/models"
	"ops360/providers"
)

var ErrAssetNotFound = pkgerrors.New("asset not found")

const (
	statsCacheKey = "ops360:asset_stats"
	statsCacheTTL = 30 * time.Second
)

type AssetService interface {
	ListAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error)
	CreateAsset(ctx context.Context, req CreateAssetReq) (models.Asset, error)
	MarkAvailable(ctx context.Context, assetID uuid.UUID) error
	MarkInUse(ctx context.Context, assetID uuid.UUID) error
	GetAssetStats(ctx context.Context) (models.AssetStats, error)
}

type assetServiceStruct struct {
	repo   AssetRepository
	cache  providers.RedisProvider
	logger providers.ZapLoggerProvider
}

// NewAssetService wires the repository and an optional stats cache; cache
// may be nil, in which case stats are computed on every request.
func NewAssetService(repo AssetRepository, cache providers.RedisProvider, logger providers.ZapLoggerProvider) AssetService {
	return &assetServiceStruct{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *assetServiceStruct) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *assetServiceStruct) GetAsset(ctx context.Context, assetID uuid.UUID) (models.Asset, error) {
	asset, err := s.repo.GetAssetByID(ctx, assetID)
	if err != nil {
		if pkgerrors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}
		return models.Asset{}, err
	}
	return asset, nil
}

func (s *assetServiceStruct) CreateAsset(ctx context.Context, req CreateAssetReq) (models.Asset, error) {
	return s.repo.CreateAsset(ctx, req)
}

func (s *assetServiceStruct) MarkAvailable(ctx context.Context, assetID uuid.UUID) error {
	err := s.repo.MarkAvailable(ctx, assetID)
	if err != nil {
		if pkgerrors.Is(err, sql.ErrNoRows) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to mark asset available: %w", err)
	}
	return nil
}

func (s *assetServiceStruct) MarkInUse(ctx context.Context, assetID uuid.UUID) error {
	err := s.repo.MarkInUse(ctx, assetID)
	if err != nil {
		if pkgerrors.Is(err, sql.ErrNoRows) {
			return ErrAssetNotFound
		}
		return fmt.Errorf("failed to mark asset in use: %w", err)
	}
	return nil
}

// GetAssetStats serves the dashboard counters from a store-side aggregate,
// fronted by a short-TTL cache when one is configured. Cache misses and
// cache write failures fall through to the store; they are logged, never
// surfaced.
func (s *assetServiceStruct) GetAssetStats(ctx context.Context) (models.AssetStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statsCacheKey)
		if err == nil && cached != "" {
			var stats models.AssetStats
			if err := jsoniter.UnmarshalFromString(cached, &stats); err == nil {
				return stats, nil
			}
		}
	}

	stats, err := s.repo.CountAssetsByStatus(ctx)
	if err != nil {
		return models.AssetStats{}, err
	}

	if s.cache != nil {
		payload, err := jsoniter.MarshalToString(stats)
		if err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL); err != nil {
				s.logger.GetLogger().Warn("failed to cache asset stats", zap.Error(err))
			}
		}
	}
	return stats, nil
}

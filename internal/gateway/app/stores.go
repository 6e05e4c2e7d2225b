package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	artifactcache "astroguide/internal/cache/artifact"
	profilecache "astroguide/internal/cache/profile"
	"astroguide/internal/gateway/config"
	artifactrepo "astroguide/internal/gateway/repository/artifact"
	profilerepo "astroguide/internal/gateway/repository/profile"
	"astroguide/internal/gateway/repository/sqldb"
	"astroguide/internal/observability"
)

type gatewayStores struct {
	profiles  *profilecache.CachedStore
	artifacts *artifactcache.CachedStore
	db        *sqldb.Handle
}

// registerMetrics publishes the cache counters on reg.
func (s *gatewayStores) registerMetrics(reg prometheus.Registerer) error {
	caches := []struct {
		name  string
		stats func() observability.CacheStats
	}{
		{"profile", func() observability.CacheStats {
			m := s.profiles.Metrics()
			return observability.CacheStats{Hits: m.Hits, Misses: m.Misses}
		}},
		{"chart_blob", func() observability.CacheStats {
			m := s.artifacts.Metrics()
			return observability.CacheStats{Hits: m.BlobHits, Misses: m.BlobMisses}
		}},
		{"chart_list", func() observability.CacheStats {
			m := s.artifacts.Metrics()
			return observability.CacheStats{Hits: m.ListHits, Misses: m.ListMisses}
		}},
		{"chart_url", func() observability.CacheStats {
			m := s.artifacts.Metrics()
			return observability.CacheStats{Hits: m.URLHits, Misses: m.URLMisses}
		}},
	}
	for _, c := range caches {
		if err := observability.RegisterCacheStats(reg, c.name, c.stats); err != nil {
			return fmt.Errorf("failed to register %s cache metrics: %w", c.name, err)
		}
	}
	return nil
}

func (s *gatewayStores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gatewayStores, error) {
	db, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	stores := &gatewayStores{db: db}

	var profiles profilerepo.Store
	if db != nil {
		profiles = profilerepo.NewSQLStore(db)
	} else {
		logger.Info("profile store: in-memory")
		profiles = profilerepo.NewMemoryStore()
	}
	stores.profiles = profilecache.NewCachedStore(profiles, profilecache.DefaultCacheConfig())

	artifacts, err := chooseArtifactStore(cfg, db, logger, newArtifactS3StoreFactory(cfg, logger))
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	stores.artifacts = artifacts
	return stores, nil
}

// openDatabase returns nil when the in-memory profile store was requested.
func openDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*sqldb.Handle, error) {
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err := sqldb.OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		logger.Info("profile store: postgres")
		return db, nil
	}
	path := strings.TrimSpace(cfg.SQLitePath)
	if strings.EqualFold(path, config.MemorySQLitePath) {
		return nil, nil
	}
	db, err := sqldb.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Info("profile store: sqlite", zap.String("path", path))
	return db, nil
}

func newArtifactS3StoreFactory(cfg *config.Config, logger *zap.Logger) func() (artifactrepo.Store, error) {
	return func() (artifactrepo.Store, error) {
		s3Cfg := artifactrepo.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			Region:    cfg.Artifact.Region,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		}
		s3Store, err := artifactrepo.NewS3Store(s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize artifact s3 store: %w", err)
		}
		logger.Info("artifact store: s3", zap.String("bucket", s3Cfg.Bucket), zap.String("endpoint", s3Cfg.Endpoint))
		return s3Store, nil
	}
}

func chooseArtifactStore(
	cfg *config.Config,
	db *sqldb.Handle,
	logger *zap.Logger,
	s3Factory func() (artifactrepo.Store, error),
) (*artifactcache.CachedStore, error) {
	var origin artifactrepo.Store
	backend := strings.ToLower(strings.TrimSpace(cfg.Artifact.Backend))
	switch backend {
	case "", "auto":
		if cfg.Artifact.CanUseS3() {
			s3Store, err := s3Factory()
			if err != nil {
				return nil, err
			}
			origin = s3Store
			break
		}
		logger.Info("artifact store: disk fallback (s3 config incomplete)", zap.String("dir", cfg.Artifact.Dir))
		origin = artifactrepo.NewDiskStore(cfg.Artifact.Dir)
	case "s3":
		if !cfg.Artifact.CanUseS3() {
			return nil, fmt.Errorf("artifact backend s3 requires endpoint, access key, secret key and bucket")
		}
		s3Store, err := s3Factory()
		if err != nil {
			return nil, err
		}
		origin = s3Store
	case "disk":
		logger.Info("artifact store: disk", zap.String("dir", cfg.Artifact.Dir))
		origin = artifactrepo.NewDiskStore(cfg.Artifact.Dir)
	case "sql":
		if db == nil {
			return nil, fmt.Errorf("artifact backend sql requires DATABASE_URL or a SQLite path")
		}
		logger.Info("artifact store: sql", zap.String("dialect", db.Dialect))
		origin = artifactrepo.NewSQLStore(db)
	case "memory":
		logger.Info("artifact store: in-memory")
		origin = artifactrepo.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown artifact backend %q", cfg.Artifact.Backend)
	}
	return artifactcache.NewCachedStore(origin, artifactcache.DefaultCacheConfig()), nil
}

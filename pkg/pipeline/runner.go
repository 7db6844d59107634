package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/clemen/pkg/cache"
	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/scene"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use it.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different scenes and options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute validates sc, builds it and renders every requested format.
//
// When the snapshot and all artifacts are cached (and opts.Refresh is not
// set) the build is skipped and Result.Layout is nil.
func (r *Runner) Execute(ctx context.Context, sc *scene.Scene, opts Options) (*Result, error) {
	if sc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no scene given")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	sceneHash, err := cache.HashJSON(sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash scene")
	}

	result := &Result{
		RunID:     uuid.New(),
		Scene:     sc,
		SceneHash: sceneHash,
	}
	logger := r.Logger.With("run", result.RunID.String()[:8], "scene", sc.Name)

	if !opts.Refresh {
		if snap, artifacts, ok := r.lookup(ctx, sceneHash, opts); ok {
			result.Snapshot = snap
			result.Artifacts = artifacts
			result.Stats.BoxCount = snap.Count()
			result.CacheHit = true
			logger.Info("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	// Stage 1: Build
	buildStart := time.Now()
	l, snap, err := r.Build(ctx, sc, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Layout = l
	result.Snapshot = snap
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.BoxCount = snap.Count()

	logger.Info("built scene",
		"boxes", result.Stats.BoxCount,
		"depth", snap.Depth(),
		"duration", result.Stats.BuildTime)

	r.store(ctx, r.Keyer.SceneKey(sceneHash, opts.SceneKeyOpts()), "snapshot", cache.TTLSnapshot, func() ([]byte, error) {
		return snapshot.Marshal(snap)
	})

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, snap, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	for format, data := range artifacts {
		r.store(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)), "artifact", cache.TTLArtifact, func() ([]byte, error) {
			return data, nil
		})
	}

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// lookup returns the cached snapshot and artifacts. It reports false unless
// every format is present.
func (r *Runner) lookup(ctx context.Context, sceneHash string, opts Options) (snapshot.Snapshot, map[string][]byte, bool) {
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format)))
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "err", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, "artifact")
			return snapshot.Snapshot{}, nil, false
		}
		hooks.OnCacheHit(ctx, "artifact")
		artifacts[format] = data
	}

	data, hit, err := r.Cache.Get(ctx, r.Keyer.SceneKey(sceneHash, opts.SceneKeyOpts()))
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, "snapshot")
		return snapshot.Snapshot{}, nil, false
	}
	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		// If deserialization fails, fall through to rebuild
		r.Logger.Debug("discarding cached snapshot", "err", err)
		hooks.OnCacheMiss(ctx, "snapshot")
		return snapshot.Snapshot{}, nil, false
	}
	hooks.OnCacheHit(ctx, "snapshot")
	return snap, artifacts, true
}

// store writes an entry; failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, key, keyType string, ttl time.Duration, encode func() ([]byte, error)) {
	data, err := encode()
	if err != nil {
		r.Logger.Debug("skip cache write", "type", keyType, "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

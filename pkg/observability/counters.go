package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters tallies events from every hook kind. The zero value is ready to
// use and safe for concurrent use.
type Counters struct {
	builds       atomic.Int64
	buildErrors  atomic.Int64
	boxes        atomic.Int64
	buildNanos   atomic.Int64
	renders      atomic.Int64
	renderErrors atomic.Int64

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
	cacheWrites atomic.Int64
	cacheBytes  atomic.Int64

	requests     atomic.Int64
	clientErrors atomic.Int64
	serverErrors atomic.Int64
}

// Stats is a point-in-time copy of Counters.
type Stats struct {
	Builds       int64         `json:"builds"`
	BuildErrors  int64         `json:"build_errors"`
	Boxes        int64         `json:"boxes"`
	BuildTime    time.Duration `json:"build_time_ns"`
	Renders      int64         `json:"renders"`
	RenderErrors int64         `json:"render_errors"`

	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	CacheWrites int64 `json:"cache_writes"`
	CacheBytes  int64 `json:"cache_bytes"`

	Requests     int64 `json:"requests"`
	ClientErrors int64 `json:"client_errors"`
	ServerErrors int64 `json:"server_errors"`
}

// HitRatio returns the share of cache lookups that hit, or 0 without lookups.
func (s Stats) HitRatio() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total)
}

// Snapshot copies the current counts.
func (c *Counters) Snapshot() Stats {
	return Stats{
		Builds:       c.builds.Load(),
		BuildErrors:  c.buildErrors.Load(),
		Boxes:        c.boxes.Load(),
		BuildTime:    time.Duration(c.buildNanos.Load()),
		Renders:      c.renders.Load(),
		RenderErrors: c.renderErrors.Load(),
		CacheHits:    c.cacheHits.Load(),
		CacheMisses:  c.cacheMisses.Load(),
		CacheWrites:  c.cacheWrites.Load(),
		CacheBytes:   c.cacheBytes.Load(),
		Requests:     c.requests.Load(),
		ClientErrors: c.clientErrors.Load(),
		ServerErrors: c.serverErrors.Load(),
	}
}

func (c *Counters) OnBuildStart(context.Context, string) {}

func (c *Counters) OnBuildComplete(_ context.Context, _ string, boxCount int, d time.Duration, err error) {
	c.builds.Add(1)
	c.buildNanos.Add(int64(d))
	if err != nil {
		c.buildErrors.Add(1)
		return
	}
	c.boxes.Add(int64(boxCount))
}

func (c *Counters) OnRenderStart(context.Context, []string) {}

func (c *Counters) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	c.renders.Add(1)
	if err != nil {
		c.renderErrors.Add(1)
	}
}

func (c *Counters) OnCacheHit(context.Context, string)  { c.cacheHits.Add(1) }
func (c *Counters) OnCacheMiss(context.Context, string) { c.cacheMisses.Add(1) }

func (c *Counters) OnCacheSet(_ context.Context, _ string, size int) {
	c.cacheWrites.Add(1)
	c.cacheBytes.Add(int64(size))
}

func (c *Counters) OnRequest(context.Context, string, string) { c.requests.Add(1) }

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
}

// Package observability carries clemen's build, render, cache and preview
// server events to whoever wants them.
//
// The pipeline, the cache layer and the server emit events unconditionally
// through [Pipeline], [Cache] and [HTTP]. Until something is registered the
// events go to no-op sinks. Commands register sinks at startup:
//
//	counters := &observability.Counters{}
//	observability.Attach(counters)
//
// [Attach] adds a sink next to the ones already registered, so a verbose
// log sink and a [Counters] can listen at the same time. The Set functions
// replace whatever is registered for one kind of event.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives scene build and render events.
type PipelineHooks interface {
	OnBuildStart(ctx context.Context, scene string)
	OnBuildComplete(ctx context.Context, scene string, boxCount int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and writes. keyType is "snapshot" or
// "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives preview server requests.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopPipelineHooks discards pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                            {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)   {}

// NoopCacheHooks discards cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards server events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// registry holds the sink for each kind of event.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var global = newRegistry()

func newRegistry() *registry {
	return &registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	}
}

// SetPipelineHooks replaces the pipeline sink. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	global.pipeline = h
	global.mu.Unlock()
}

// SetCacheHooks replaces the cache sink. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	global.cache = h
	global.mu.Unlock()
}

// SetHTTPHooks replaces the server sink. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	global.http = h
	global.mu.Unlock()
}

// Attach registers h for every hook interface it implements, alongside the
// sinks already registered. It returns false if h implements none of them.
func Attach(h any) bool {
	global.mu.Lock()
	defer global.mu.Unlock()

	attached := false
	if p, ok := h.(PipelineHooks); ok {
		global.pipeline = joinPipeline(global.pipeline, p)
		attached = true
	}
	if c, ok := h.(CacheHooks); ok {
		global.cache = joinCache(global.cache, c)
		attached = true
	}
	if s, ok := h.(HTTPHooks); ok {
		global.http = joinHTTP(global.http, s)
		attached = true
	}
	return attached
}

// Pipeline returns the registered pipeline sink.
func Pipeline() PipelineHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.pipeline
}

// Cache returns the registered cache sink.
func Cache() CacheHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.cache
}

// HTTP returns the registered server sink.
func HTTP() HTTPHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.http
}

// Reset drops every registered sink.
func Reset() {
	fresh := newRegistry()
	global.mu.Lock()
	global.pipeline, global.cache, global.http = fresh.pipeline, fresh.cache, fresh.http
	global.mu.Unlock()
}

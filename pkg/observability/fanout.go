package observability

import (
	"context"
	"time"
)

// The fan types forward each event to every sink in order. They are built
// by Attach and never shared, so appending to one is safe.

type pipelineFan []PipelineHooks

func joinPipeline(cur, h PipelineHooks) PipelineHooks {
	switch c := cur.(type) {
	case NoopPipelineHooks:
		return h
	case pipelineFan:
		return append(c[:len(c):len(c)], h)
	default:
		return pipelineFan{cur, h}
	}
}

func (f pipelineFan) OnBuildStart(ctx context.Context, scene string) {
	for _, h := range f {
		h.OnBuildStart(ctx, scene)
	}
}

func (f pipelineFan) OnBuildComplete(ctx context.Context, scene string, boxCount int, d time.Duration, err error) {
	for _, h := range f {
		h.OnBuildComplete(ctx, scene, boxCount, d, err)
	}
}

func (f pipelineFan) OnRenderStart(ctx context.Context, formats []string) {
	for _, h := range f {
		h.OnRenderStart(ctx, formats)
	}
}

func (f pipelineFan) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	for _, h := range f {
		h.OnRenderComplete(ctx, formats, d, err)
	}
}

type cacheFan []CacheHooks

func joinCache(cur, h CacheHooks) CacheHooks {
	switch c := cur.(type) {
	case NoopCacheHooks:
		return h
	case cacheFan:
		return append(c[:len(c):len(c)], h)
	default:
		return cacheFan{cur, h}
	}
}

func (f cacheFan) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range f {
		h.OnCacheHit(ctx, keyType)
	}
}

func (f cacheFan) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range f {
		h.OnCacheMiss(ctx, keyType)
	}
}

func (f cacheFan) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range f {
		h.OnCacheSet(ctx, keyType, size)
	}
}

type httpFan []HTTPHooks

func joinHTTP(cur, h HTTPHooks) HTTPHooks {
	switch c := cur.(type) {
	case NoopHTTPHooks:
		return h
	case httpFan:
		return append(c[:len(c):len(c)], h)
	default:
		return httpFan{cur, h}
	}
}

func (f httpFan) OnRequest(ctx context.Context, method, path string) {
	for _, h := range f {
		h.OnRequest(ctx, method, path)
	}
}

func (f httpFan) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	for _, h := range f {
		h.OnResponse(ctx, method, path, status, d)
	}
}

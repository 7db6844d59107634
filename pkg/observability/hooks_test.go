package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recorder struct {
	NoopPipelineHooks
	scenes []string
}

func (r *recorder) OnBuildStart(_ context.Context, scene string) {
	r.scenes = append(r.scenes, scene)
}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	// emitting into the defaults is always allowed
	ctx := context.Background()
	Pipeline().OnBuildComplete(ctx, "flex", 3, time.Millisecond, nil)
	Cache().OnCacheSet(ctx, "artifact", 10)
	HTTP().OnResponse(ctx, "GET", "/scenes", 200, time.Millisecond)
}

func TestSetReplaces(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first, second := &recorder{}, &recorder{}
	SetPipelineHooks(first)
	SetPipelineHooks(second)
	SetPipelineHooks(nil)

	Pipeline().OnBuildStart(context.Background(), "grid")
	if len(first.scenes) != 0 {
		t.Errorf("replaced sink saw %v", first.scenes)
	}
	if len(second.scenes) != 1 {
		t.Errorf("current sink saw %v, want one build", second.scenes)
	}
}

func TestAttachFansOut(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	a, b := &recorder{}, &recorder{}
	if !Attach(a) || !Attach(b) {
		t.Fatal("Attach() = false for a pipeline sink")
	}
	if Attach(struct{}{}) {
		t.Error("Attach() = true for a value with no hooks")
	}

	Pipeline().OnBuildStart(context.Background(), "block")
	Pipeline().OnBuildStart(context.Background(), "rows")

	for name, r := range map[string]*recorder{"first": a, "second": b} {
		if len(r.scenes) != 2 || r.scenes[1] != "rows" {
			t.Errorf("%s sink saw %v, want [block rows]", name, r.scenes)
		}
	}
}

func TestAttachFirstSinkIsUnwrapped(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	c := &Counters{}
	Attach(c)

	if Pipeline() != PipelineHooks(c) {
		t.Errorf("Pipeline() = %T, want the attached *Counters", Pipeline())
	}
	if HTTP() != HTTPHooks(c) {
		t.Errorf("HTTP() = %T, want the attached *Counters", HTTP())
	}
}

func TestCounters(t *testing.T) {
	ctx := context.Background()
	c := &Counters{}

	c.OnBuildComplete(ctx, "block", 10, 2*time.Millisecond, nil)
	c.OnBuildComplete(ctx, "broken", 0, time.Millisecond, errors.New("bad scene"))
	c.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	c.OnCacheHit(ctx, "snapshot")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 512)
	c.OnRequest(ctx, "GET", "/scenes")
	c.OnResponse(ctx, "GET", "/scenes", 200, 0)
	c.OnResponse(ctx, "GET", "/scenes/nope", 404, 0)
	c.OnResponse(ctx, "POST", "/render/svg", 500, 0)

	got := c.Snapshot()
	want := Stats{
		Builds:       2,
		BuildErrors:  1,
		Boxes:        10,
		BuildTime:    3 * time.Millisecond,
		Renders:      1,
		CacheHits:    1,
		CacheMisses:  2,
		CacheWrites:  1,
		CacheBytes:   512,
		Requests:     1,
		ClientErrors: 1,
		ServerErrors: 1,
	}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestHitRatio(t *testing.T) {
	tests := []struct {
		hits, misses int64
		want         float64
	}{
		{0, 0, 0},
		{1, 3, 0.25},
		{2, 0, 1},
	}
	for _, tt := range tests {
		s := Stats{CacheHits: tt.hits, CacheMisses: tt.misses}
		if got := s.HitRatio(); got != tt.want {
			t.Errorf("HitRatio(%d/%d) = %v, want %v", tt.hits, tt.misses, got, tt.want)
		}
	}
}

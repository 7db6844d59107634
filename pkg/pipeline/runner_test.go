package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/clemen/pkg/cache"
	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/render"
	"github.com/matzehuels/clemen/pkg/scene"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func builtin(t *testing.T, name string) *scene.Scene {
	t.Helper()
	sc, err := scene.Builtin(name)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner should fill defaults, got %+v", r)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())

	res, err := r.Execute(context.Background(), builtin(t, "block"), Options{
		Formats: []string{"html", "svg", "json", "dot", "tree"},
		Depth:   DepthAll,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.CacheHit {
		t.Error("first run should not hit the cache")
	}
	if res.Layout == nil {
		t.Fatal("Layout should be set after a build")
	}
	if res.Stats.BoxCount != 10 {
		t.Errorf("BoxCount = %d, want 10", res.Stats.BoxCount)
	}
	if res.SceneHash == "" {
		t.Error("SceneHash should be set")
	}
	for _, f := range []string{"html", "svg", "json", "dot", "tree"} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}

	snap, err := snapshot.Unmarshal(res.Artifacts["json"])
	if err != nil {
		t.Fatalf("json artifact does not parse: %v", err)
	}
	if snap.Count() != 10 {
		t.Errorf("json artifact has %d boxes, want 10", snap.Count())
	}
}

func TestExecuteRunIDsDiffer(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	sc := builtin(t, "flex")

	a, err := r.Execute(context.Background(), sc, Options{Formats: []string{"tree"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), sc, Options{Formats: []string{"tree"}})
	if err != nil {
		t.Fatal(err)
	}
	if a.RunID == b.RunID {
		t.Error("every run should get its own RunID")
	}
	if a.SceneHash != b.SceneHash {
		t.Error("the same scene should hash the same")
	}
}

func TestExecuteCache(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, quietLogger())
	sc := builtin(t, "flex_overflow")
	opts := Options{Formats: []string{"svg", "tree"}, Depth: DepthAll}

	first, err := r.Execute(ctx, sc, opts)
	if err != nil {
		t.Fatal(err)
	}

	second, err := r.Execute(ctx, sc, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second run should be served from cache")
	}
	if second.Layout != nil {
		t.Error("cached result should not carry a layout")
	}
	if second.Stats.BoxCount != first.Stats.BoxCount {
		t.Errorf("BoxCount = %d, want %d", second.Stats.BoxCount, first.Stats.BoxCount)
	}
	if !bytes.Equal(second.Artifacts["svg"], first.Artifacts["svg"]) {
		t.Error("cached svg differs from the rendered one")
	}

	refreshed := opts
	refreshed.Refresh = true
	third, err := r.Execute(ctx, sc, refreshed)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit || third.Layout == nil {
		t.Error("refresh should rebuild")
	}

	// a format not rendered before misses the cache
	more := opts
	more.Formats = []string{"svg", "html"}
	fourth, err := r.Execute(ctx, sc, more)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.CacheHit {
		t.Error("a new format should not hit the cache")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	ctx := context.Background()

	if _, err := r.Execute(ctx, nil, Options{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("nil scene error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	if _, err := r.Execute(ctx, builtin(t, "block"), Options{Formats: []string{"pdf"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}

	bad := &scene.Scene{Name: "bad", Width: 100, Height: 100, Layout: scene.LayoutSpec{Variant: "grid"}}
	if _, err := r.Execute(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("bad scene error = %v, want %s", err, errors.ErrCodeInvalidScene)
	}

	resizeBlock := &scene.Scene{
		Name:   "resize-block",
		Width:  100,
		Height: 100,
		Layout: scene.LayoutSpec{Variant: "block", Boxes: []scene.BoxSpec{{Width: 200, Height: 10}}},
		Steps:  []scene.StepSpec{{Op: scene.OpResize, Axis: "x"}},
	}
	if _, err := r.Execute(ctx, resizeBlock, Options{}); !errors.Is(err, errors.ErrCodeInvalidOperation) {
		t.Errorf("resize on block error = %v, want %s", err, errors.ErrCodeInvalidOperation)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := r.Execute(cancelled, builtin(t, "block"), Options{}); err == nil {
		t.Error("Execute with a cancelled context should fail")
	}
}

func TestRenderFormat(t *testing.T) {
	l, err := builtin(t, "nested").Build()
	if err != nil {
		t.Fatal(err)
	}
	snap := snapshot.FromLayout(l, DepthAll)
	ctx := context.Background()

	tests := []struct {
		format  string
		viz     string
		prefix  string
		wantErr errors.Code
	}{
		{format: "html", viz: VizBoxes, prefix: "<style>"},
		{format: "svg", viz: VizBoxes, prefix: "<svg"},
		{format: "png", viz: VizBoxes, prefix: "\x89PNG"},
		{format: "json", viz: VizBoxes, prefix: "{"},
		{format: "dot", viz: VizBoxes, prefix: "digraph"},
		{format: "html", viz: VizNodelink, wantErr: errors.ErrCodeUnsupported},
		{format: "png", viz: VizNodelink, wantErr: errors.ErrCodeUnsupported},
		{format: "pdf", viz: VizBoxes, wantErr: errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.viz+"/"+tt.format, func(t *testing.T) {
			opts := Options{VizType: tt.viz}
			opts.SetRenderDefaults()

			data, err := RenderFormat(ctx, snap, tt.format, opts)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RenderFormat() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RenderFormat() error = %v", err)
			}
			if !bytes.HasPrefix(bytes.TrimSpace(data), []byte(tt.prefix)) {
				t.Errorf("RenderFormat(%s) starts with %q, want %q", tt.format, firstBytes(data), tt.prefix)
			}
		})
	}
}

func TestRenderNodelinkSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	l, err := builtin(t, "nested").Build()
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{VizType: VizNodelink}
	opts.SetRenderDefaults()

	data, err := RenderFormat(context.Background(), snapshot.FromLayout(l, DepthAll), render.FormatSVG, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("nodelink svg should contain an <svg> element")
	}
}

func TestExecuteHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	rec := &recordingHooks{}
	observability.SetPipelineHooks(rec)

	r := NewRunner(nil, nil, quietLogger())
	if _, err := r.Execute(context.Background(), builtin(t, "block"), Options{Formats: []string{"svg", "tree"}}); err != nil {
		t.Fatal(err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := []string{"build-start", "build-complete", "render-start", "render-complete"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, rec.events[i], want[i])
		}
	}
	if rec.boxes != 10 {
		t.Errorf("reported box count = %d, want 10", rec.boxes)
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.toml")
	data := []byte(`
name = "pair"
width = 200.0
height = 100.0

[layout]
variant = "flexible"

[[layout.box]]
width = 120.0
height = 50.0
repeat = 2
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene(file): %v", err)
	}
	if sc.Name != "pair" {
		t.Errorf("Name = %q, want pair", sc.Name)
	}

	if sc, err := LoadScene("flex_col"); err != nil || sc.Name != "flex_col" {
		t.Errorf("LoadScene(builtin) = %v, %v", sc, err)
	}

	tests := []struct {
		ref  string
		want errors.Code
	}{
		{"", errors.ErrCodeInvalidInput},
		{"nope", errors.ErrCodeSceneNotFound},
		{filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		if _, err := LoadScene(tt.ref); !errors.Is(err, tt.want) {
			t.Errorf("LoadScene(%q) error = %v, want %s", tt.ref, err, tt.want)
		}
	}
}

func firstBytes(b []byte) []byte {
	if len(b) > 16 {
		return b[:16]
	}
	return b
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
	boxes  int
}

func (h *recordingHooks) record(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnBuildStart(context.Context, string) { h.record("build-start") }

func (h *recordingHooks) OnBuildComplete(_ context.Context, _ string, n int, _ time.Duration, _ error) {
	h.mu.Lock()
	h.boxes = n
	h.mu.Unlock()
	h.record("build-complete")
}

func (h *recordingHooks) OnRenderStart(context.Context, []string) { h.record("render-start") }

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.record("render-complete")
}

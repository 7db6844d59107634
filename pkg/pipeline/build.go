package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/scene"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// Build constructs the layout tree of sc, runs its steps and captures a
// snapshot limited to opts.Depth.
func (r *Runner) Build(ctx context.Context, sc *scene.Scene, opts Options) (*layout.Layout, snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, snapshot.Snapshot{}, err
	}
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, sc.Name)
	start := time.Now()

	l, err := sc.Build()
	if err != nil {
		hooks.OnBuildComplete(ctx, sc.Name, 0, time.Since(start), err)
		return nil, snapshot.Snapshot{}, err
	}
	snap := snapshot.FromLayout(l, opts.Depth)

	hooks.OnBuildComplete(ctx, sc.Name, snap.Count(), time.Since(start), nil)
	r.Logger.Debug("captured snapshot",
		"variant", snap.Variant,
		"children", len(snap.Boxes),
		"steps", len(sc.Steps))
	return l, snap, nil
}

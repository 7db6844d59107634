package pipeline

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/render"
	"github.com/matzehuels/clemen/pkg/render/nodelink"
	"github.com/matzehuels/clemen/pkg/render/sink"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// Render generates every format of opts from snap and emits render hooks.
func (r *Runner) Render(ctx context.Context, snap snapshot.Snapshot, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := RenderAll(ctx, snap, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// RenderAll renders the formats of opts concurrently. The snapshot is
// only read, so renderers share it without copying.
func RenderAll(ctx context.Context, snap snapshot.Snapshot, opts Options) (map[string][]byte, error) {
	outputs := make([][]byte, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		g.Go(func() error {
			data, err := RenderFormat(gctx, snap, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			outputs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(outputs))
	for i, format := range opts.Formats {
		artifacts[format] = outputs[i]
	}
	return artifacts, nil
}

// RenderFormat generates a single output format from snap.
func RenderFormat(ctx context.Context, snap snapshot.Snapshot, format string, opts Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.IsNodelink() && (format == render.FormatHTML || format == render.FormatPNG) {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s output is not available for nodelink diagrams", format)
	}

	switch format {
	case render.FormatHTML:
		return sink.RenderHTML(snap), nil
	case render.FormatSVG:
		if opts.IsNodelink() {
			return nodelink.RenderSVG(ctx, nodelink.ToDOT(snap, nodelink.Options{Detailed: opts.Labels}))
		}
		return sink.RenderSVG(snap, svgOptions(opts)...), nil
	case render.FormatPNG:
		return sink.RenderPNG(snap, pngOptions(opts)...)
	case render.FormatJSON:
		return sink.RenderJSON(snap)
	case render.FormatDOT:
		return []byte(nodelink.ToDOT(snap, nodelink.Options{Detailed: opts.Labels})), nil
	case render.FormatTree:
		return sink.RenderTree(snap), nil
	default:
		return nil, render.ValidateFormat(format)
	}
}

func svgOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Baseline {
		svgOpts = append(svgOpts, sink.WithBaseline())
	}
	return svgOpts
}

func pngOptions(opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.Labels {
		pngOpts = append(pngOpts, sink.WithPNGLabels())
	}
	return pngOpts
}

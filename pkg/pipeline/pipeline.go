// Package pipeline provides the build → render pipeline shared by the CLI
// and the preview server.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Construct the layout tree from a scene and run its steps
//  2. Render: Capture a snapshot and generate the requested formats
//
// Builds are single-threaded. Once built, the snapshot is immutable, so all
// formats render from it concurrently.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, sc, pipeline.Options{
//	    Formats: []string{"svg", "html"},
//	    Depth:   pipeline.DepthAll,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/clemen/pkg/cache"
	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/render"
	"github.com/matzehuels/clemen/pkg/scene"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DepthAll captures and renders every nested level.
	DepthAll = -1

	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0
)

// Visualization types.
const (
	// VizBoxes draws boxes at their computed geometry.
	VizBoxes = "boxes"
	// VizNodelink draws the box tree as a node-link diagram.
	VizNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizBoxes

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizBoxes:    true,
	VizNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Formats lists the outputs to render. Defaults to svg.
	Formats []string `json:"formats,omitempty"`
	// VizType selects boxes (default) or nodelink drawing for svg.
	VizType string `json:"viz_type,omitempty"`
	// Depth limits the nested levels captured: 0 keeps only the top-level
	// children and [DepthAll] keeps the whole tree.
	Depth int `json:"depth"`

	Labels   bool    `json:"labels,omitempty"`
	Baseline bool    `json:"baseline,omitempty"`
	Scale    float64 `json:"scale,omitempty"`

	// Refresh skips cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and server responses.
	RunID uuid.UUID

	Scene     *scene.Scene
	SceneHash string

	// Layout is the built tree. It is nil when the run was served from cache.
	Layout   *layout.Layout
	Snapshot snapshot.Snapshot

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit is set when the snapshot and every artifact came from cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BoxCount   int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid viz_type: %q (must be one of: boxes, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the options.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if o.Depth < DepthAll {
		o.Depth = DepthAll
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsNodelink returns true if svg output is a node-link diagram.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizNodelink
}

// SceneKeyOpts returns cache key options for the built snapshot.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{Depth: o.Depth}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:  format,
		VizType: o.VizType,
		Depth:   o.Depth,
		Labels:  o.Labels,
	}
	switch format {
	case render.FormatSVG:
		opts.Baseline = o.Baseline
	case render.FormatPNG:
		opts.Scale = o.Scale
	}
	return opts
}

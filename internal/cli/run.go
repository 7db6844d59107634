package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/pipeline"
	"github.com/matzehuels/clemen/pkg/render"
	"github.com/matzehuels/clemen/pkg/scene"
)

// runFlags holds the flags of the run command.
type runFlags struct {
	cacheFlags
	builtin  bool
	formats  string
	output   string
	depth    int
	viz      string
	labels   bool
	baseline bool
	scale    float64
	refresh  bool
}

// runCommand creates the run command.
func (c *CLI) runCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "Build a scene and write the rendered outputs",
		Long: `Build a scene and write the rendered outputs.

The scene is a TOML or HCL file, or the name of a builtin scene (see
"clemen list"). Each format is written to <output><ext>, where output
defaults to the scene name in the current directory.`,
		Example: `  clemen run flex -f svg,png
  clemen run ./scene.hcl -o out/scene -f html,json --depth 1
  clemen run --builtin nested --viz nodelink`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), args[0], f)
		},
	}

	cmd.Flags().BoolVar(&f.builtin, "builtin", false, "treat the argument as a builtin scene name")
	cmd.Flags().StringVarP(&f.formats, "format", "f", render.FormatSVG, "comma-separated output formats ("+strings.Join(render.Formats, ", ")+")")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output path without extension")
	cmd.Flags().IntVar(&f.depth, "depth", pipeline.DepthAll, "nesting levels to capture (-1 for all)")
	cmd.Flags().StringVar(&f.viz, "viz", pipeline.DefaultVizType, "visualization type for svg (boxes, nodelink)")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "label boxes with their index")
	cmd.Flags().BoolVar(&f.baseline, "baseline", false, "outline baseline geometry of resized boxes (svg)")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "pixel density for png")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
	f.cacheFlags.register(cmd)

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("viz", completeViz)

	return cmd
}

// run executes the pipeline for ref and writes every artifact.
func (c *CLI) run(ctx context.Context, ref string, f runFlags) error {
	logger := loggerFromContext(ctx)

	sc, err := resolveScene(ref, f.builtin)
	if err != nil {
		return err
	}
	formats, err := render.ParseFormats(f.formats)
	if err != nil {
		return err
	}
	base, err := outputBase(f.output, ref, sc)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, f.cacheFlags)
	if err != nil {
		return err
	}
	defer runner.Close()

	name := displayName(ref, sc)
	sp := startSpinner(ctx, stderr, "Building "+name+"...")
	result, err := runner.Execute(ctx, sc, pipeline.Options{
		Formats:  formats,
		VizType:  f.viz,
		Depth:    f.depth,
		Labels:   f.labels,
		Baseline: f.baseline,
		Scale:    f.scale,
		Refresh:  f.refresh,
		Logger:   logger,
	})
	if err != nil {
		if sp.interrupted() {
			sp.fail("Cancelled")
		} else {
			sp.stop()
		}
		return err
	}
	sp.succeed("Built " + StyleHighlight.Render(name))

	step := startStep(logger, "write artifacts")
	paths, err := writeArtifacts(base, formats, result.Artifacts)
	if err != nil {
		step.fail(err)
		return err
	}
	step.done("files", len(paths), "dir", filepath.Dir(base))

	printStats(result.Stats.BoxCount, result.Snapshot.Depth(), result.CacheHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// resolveScene loads ref as a file or builtin; with builtin set only the
// builtin scenes are consulted.
func resolveScene(ref string, builtin bool) (*scene.Scene, error) {
	if builtin {
		return scene.Builtin(ref)
	}
	return pipeline.LoadScene(ref)
}

// outputBase picks the path artifacts are written to, minus extension.
func outputBase(output, ref string, sc *scene.Scene) (string, error) {
	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return "", err
		}
		return output, nil
	}
	name := displayName(ref, sc)
	if err := errors.ValidateName(name); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "scene name is not a file name, pass --output")
	}
	return name, nil
}

// displayName is the scene's own name, falling back to the file stem.
func displayName(ref string, sc *scene.Scene) string {
	if sc.Name != "" {
		return sc.Name
	}
	return strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
}

// writeArtifacts writes one file per format and returns the paths in
// format order.
func writeArtifacts(base string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
		}
	}
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "no %s output produced", format)
		}
		path := base + render.Extension(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Package pkg provides the core libraries for clemen box layouts.
//
// # Overview
//
// Clemen places rectangular boxes inside container layouts. A block layout
// wraps its children into rows; a flexible layout additionally shrinks or
// grows them to fit its extent and can centre them. Every box may carry a
// nested layout of its own, so a scene is a tree of layouts.
//
// The pkg directory is organized into these areas:
//
//  1. [unit], [layout] - Lengths, vectors and the placement algorithms
//  2. [scene] - TOML and HCL scene files plus the builtin scenes
//  3. [snapshot] - The serialized layout tree shared by every renderer
//  4. [render] - HTML, SVG, PNG, JSON, DOT and text outputs
//  5. [pipeline] - Orchestration (load → build → render) with caching
//  6. [server] - The HTTP preview server
//
// # Architecture
//
// The typical data flow through clemen:
//
//	Scene file or builtin name
//	         ↓
//	    [scene] package (parse and validate)
//	         ↓
//	    [layout] package (build the tree, replay resize steps)
//	         ↓
//	    [snapshot] package (capture geometry)
//	         ↓
//	    [render] package (one artifact per format)
//
// # Quick Start
//
//	sc, _ := scene.Builtin("flex")
//	l, _ := sc.Build()
//	snap := snapshot.FromLayout(l, pipeline.DepthAll)
//	svg := sink.RenderSVG(snap, sink.WithLabels())
//
// Or through the pipeline, which adds caching and concurrent rendering:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, sc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//
// # Errors
//
// Every package reports failures as [errors.Error] values carrying a code
// such as INVALID_OPERATION or SCENE_NOT_FOUND. Codes group into classes
// that the server maps to HTTP statuses and the CLI maps to exit statuses.
package pkg

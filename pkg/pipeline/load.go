package pipeline

import (
	"os"
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/scene"
)

// LoadScene resolves ref to a scene. An existing file path is loaded from
// disk; anything else is looked up among the builtin scenes.
func LoadScene(ref string) (*scene.Scene, error) {
	if ref == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene reference is empty")
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return scene.Load(ref)
	}
	sc, err := scene.Builtin(ref)
	if errors.Is(err, errors.ErrCodeSceneNotFound) && looksLikePath(ref) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", ref)
	}
	return sc, err
}

func looksLikePath(ref string) bool {
	return strings.ContainsAny(ref, `/\`) || strings.HasSuffix(ref, ".toml") || strings.HasSuffix(ref, ".hcl")
}

package scene

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/matzehuels/clemen/pkg/errors"
)

// Syntax is the file format of a scene.
type Syntax string

const (
	SyntaxTOML Syntax = "toml"
	SyntaxHCL  Syntax = "hcl"
)

// ParseSyntax parses "toml" or "hcl" (case-insensitive). Empty means TOML.
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toml":
		return SyntaxTOML, nil
	case "hcl":
		return SyntaxHCL, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid scene syntax: %q (must be 'toml' or 'hcl')", s)
	}
}

// SyntaxFromPath picks the syntax from the file extension.
func SyntaxFromPath(path string) (Syntax, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SyntaxTOML, nil
	case ".hcl":
		return SyntaxHCL, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unsupported scene file %s (expected .toml or .hcl)", filepath.Base(path))
	}
}

// Load reads, parses and validates the scene file at path. A scene without
// a name is named after the file.
func Load(path string) (*Scene, error) {
	syntax, err := SyntaxFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	s, err := parse(data, syntax, path)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte, syntax Syntax) (*Scene, error) {
	s, err := parse(data, syntax, "scene."+string(syntax))
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func parse(data []byte, syntax Syntax, filename string) (*Scene, error) {
	switch syntax {
	case SyntaxTOML:
		return parseTOML(data)
	case SyntaxHCL:
		return parseHCL(data, filename)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid scene syntax: %q", syntax)
	}
}

func parseTOML(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &s, nil
}

// evalContext exposes a few numeric functions to HCL attribute expressions.
var evalContext = &hcl.EvalContext{
	Functions: map[string]function.Function{
		"min":   stdlib.MinFunc,
		"max":   stdlib.MaxFunc,
		"floor": stdlib.FloorFunc,
		"ceil":  stdlib.CeilFunc,
	},
}

func parseHCL(data []byte, filename string) (*Scene, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, diags, "parse hcl")
	}

	var s Scene
	if diags := gohcl.DecodeBody(file.Body, evalContext, &s); diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, diags, "decode hcl")
	}
	return &s, nil
}

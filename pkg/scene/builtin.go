package scene

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
)

//go:embed builtins/*.toml builtins/*.hcl
var builtinFS embed.FS

// Builtin loads the built-in scene with the given name.
func Builtin(name string) (*Scene, error) {
	for _, ext := range []string{".toml", ".hcl"} {
		file := path.Join("builtins", name+ext)
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			continue
		}
		syntax, err := SyntaxFromPath(file)
		if err != nil {
			return nil, err
		}
		s, err := parse(data, syntax, file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "builtin scene %s", name)
		}
		if s.Name == "" {
			s.Name = name
		}
		if err := s.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "builtin scene %s", name)
		}
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeSceneNotFound, "no built-in scene named %q (available: %s)", name, strings.Join(Builtins(), ", "))
}

// Builtins returns the names of all built-in scenes, sorted.
func Builtins() []string {
	entries, _ := fs.ReadDir(builtinFS, "builtins")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		n := e.Name()
		names = append(names, strings.TrimSuffix(n, path.Ext(n)))
	}
	slices.Sort(names)
	return names
}

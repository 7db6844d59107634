package render

import (
	"slices"
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// Formats lists every supported output format.
var Formats = []string{FormatHTML, FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatTree}

// ValidateFormat checks that format is one of [Formats].
func ValidateFormat(format string) error {
	if slices.Contains(Formats, format) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", format, strings.Join(Formats, ", "))
}

// ParseFormats splits a comma-separated list, trims blanks and validates
// each entry. Duplicates are dropped.
func ParseFormats(list string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return out, nil
}

// Extension returns the file extension (with leading dot) for format.
func Extension(format string) string {
	switch format {
	case FormatTree:
		return ".txt"
	case "":
		return ""
	default:
		return "." + format
	}
}

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch format {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

package scene

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/unit"
)

// maxBoxes bounds the number of boxes a scene may create, repeats included.
const maxBoxes = 100_000

// Validate checks names, sizes and enumerations across the whole scene.
// Errors carry the INVALID_SCENE code and name the offending element.
func (s *Scene) Validate() error {
	if s.Name != "" {
		if err := errors.ValidateName(s.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "scene name")
		}
	}
	if err := checkSize("scene", s.Width, s.Height); err != nil {
		return err
	}

	total := 0
	if err := validateLayout("layout", s.Layout, &total); err != nil {
		return err
	}

	for i, st := range s.Steps {
		if err := validateStep(i, st, &total); err != nil {
			return err
		}
	}
	if total > maxBoxes {
		return errors.New(errors.ErrCodeInvalidScene, "scene creates %d boxes (limit %d)", total, maxBoxes)
	}
	return nil
}

func validateLayout(where string, l LayoutSpec, total *int) error {
	if _, err := layout.ParseVariant(l.Variant); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", where)
	}
	if _, err := layout.ParseAlignX(l.AlignX); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", where)
	}
	if _, err := layout.ParseAlignY(l.AlignY); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", where)
	}
	if l.Offset < 0 || !finite(l.Offset) {
		return errors.New(errors.ErrCodeInvalidScene, "%s: offset must be a non-negative number, got %v", where, l.Offset)
	}
	for i, b := range l.Boxes {
		if err := validateBox(fmt.Sprintf("%s.box[%d]", where, i), b, total); err != nil {
			return err
		}
	}
	return nil
}

func validateBox(where string, b BoxSpec, total *int) error {
	if err := checkSize(where, b.Width, b.Height); err != nil {
		return err
	}
	if !finite(b.X) || !finite(b.Y) {
		return errors.New(errors.ErrCodeInvalidScene, "%s: position must be finite", where)
	}
	if _, err := layout.ParsePositionStyle(b.Style); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", where)
	}
	if b.Repeat < 0 {
		return errors.New(errors.ErrCodeInvalidScene, "%s: repeat must not be negative", where)
	}
	for _, bound := range []struct {
		name     string
		min, max *float64
	}{
		{"width", b.MinWidth, b.MaxWidth},
		{"height", b.MinHeight, b.MaxHeight},
	} {
		if bound.min != nil && (*bound.min < 0 || !finite(*bound.min)) {
			return errors.New(errors.ErrCodeInvalidScene, "%s: min_%s must be a non-negative number", where, bound.name)
		}
		if bound.max != nil && (*bound.max < 0 || math.IsNaN(*bound.max)) {
			return errors.New(errors.ErrCodeInvalidScene, "%s: max_%s must be a non-negative number", where, bound.name)
		}
		if bound.min != nil && bound.max != nil && *bound.min > *bound.max {
			return errors.New(errors.ErrCodeInvalidScene, "%s: min_%s %v exceeds max_%s %v", where, bound.name, *bound.min, bound.name, *bound.max)
		}
	}

	// a nested layout is created once per repeat, so its boxes count that often
	before := *total
	if b.Layout != nil {
		if err := validateLayout(where+".layout", *b.Layout, total); err != nil {
			return err
		}
	}
	nested := *total - before
	*total = before + b.Count()*(1+nested)
	return nil
}

func validateStep(i int, st StepSpec, total *int) error {
	where := fmt.Sprintf("step[%d]", i)
	if !slices.Contains(Ops, st.Op) {
		return errors.New(errors.ErrCodeInvalidScene, "%s: unknown op %q (must be one of %s)", where, st.Op, strings.Join(Ops, ", "))
	}
	for _, t := range st.Target {
		if t < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "%s: negative target index %d", where, t)
		}
	}

	switch st.Op {
	case OpAdd:
		if st.Box == nil {
			return errors.New(errors.ErrCodeInvalidScene, "%s: add requires a box", where)
		}
		return validateBox(where+".box", *st.Box, total)
	case OpRemove:
		if st.Index < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "%s: negative index %d", where, st.Index)
		}
	case OpResize:
		if _, err := unit.ParseAxis(st.Axis); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", where)
		}
	}
	return nil
}

func checkSize(where string, w, h float64) error {
	if w < 0 || h < 0 || !finite(w) || !finite(h) {
		return errors.New(errors.ErrCodeInvalidScene, "%s: size must be non-negative and finite, got %vx%v", where, w, h)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

package scene

import (
	"math"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/unit"
)

// Build creates the root layout, adds the scene's boxes and replays its
// steps in order. The scene should have passed [Scene.Validate].
//
// A failing step aborts the build; the returned error keeps the step's
// error code (for example OUT_OF_RANGE for a bad target or INVALID_OPERATION
// for resizing a block layout).
func (s *Scene) Build() (*layout.Layout, error) {
	root, err := newLayout(s.Layout, unit.Vec(s.Width, s.Height))
	if err != nil {
		return nil, err
	}
	for i, st := range s.Steps {
		if err := apply(root, st); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "step %d (%s)", i, st.Op)
		}
	}
	return root, nil
}

func apply(root *layout.Layout, st StepSpec) error {
	target, err := root.Nested(st.Target...)
	if err != nil {
		return err
	}

	switch st.Op {
	case OpAdd:
		if st.Box == nil {
			return errors.New(errors.ErrCodeInvalidScene, "add requires a box")
		}
		return addBoxes(target, *st.Box)
	case OpRemove:
		return target.Remove(st.Index)
	case OpResize:
		axis, err := unit.ParseAxis(st.Axis)
		if err != nil {
			return err
		}
		return target.ResizeFlexible(axis)
	case OpRevert:
		return target.RevertFlexible()
	case OpRecalculate:
		target.Recalculate()
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown op %q", st.Op)
	}
}

// newLayout creates a layout of the given container size and adds spec's boxes.
func newLayout(spec LayoutSpec, size unit.Vector2) (*layout.Layout, error) {
	l := layout.New(layout.Block, size)
	if err := configure(l, spec); err != nil {
		return nil, err
	}
	for _, b := range spec.Boxes {
		if err := addBoxes(l, b); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// configure copies spec's variant and properties onto l.
func configure(l *layout.Layout, spec LayoutSpec) error {
	variant, err := layout.ParseVariant(spec.Variant)
	if err != nil {
		return err
	}
	alignX, err := layout.ParseAlignX(spec.AlignX)
	if err != nil {
		return err
	}
	alignY, err := layout.ParseAlignY(spec.AlignY)
	if err != nil {
		return err
	}

	l.Variant = variant
	l.Col = spec.Col
	l.Properties.Offset = unit.Px(spec.Offset)
	l.Properties.AlignX = alignX
	l.Properties.AlignY = alignY
	if spec.FlexGrow != nil {
		l.Properties.FlexGrow = *spec.FlexGrow
	}
	return nil
}

func addBoxes(l *layout.Layout, spec BoxSpec) error {
	for range spec.Count() {
		b, err := newBox(spec)
		if err != nil {
			return err
		}
		l.Add(b)
	}
	return nil
}

func newBox(spec BoxSpec) (*layout.Box, error) {
	style, err := layout.ParsePositionStyle(spec.Style)
	if err != nil {
		return nil, err
	}

	b := layout.NewBox(unit.Vec(spec.Width, spec.Height), unit.Vec(spec.X, spec.Y), layout.Block)
	b.Attrs.Style = style

	if spec.MinWidth != nil || spec.MinHeight != nil {
		lo := *b.Attrs.MinSize
		if spec.MinWidth != nil {
			lo.X = unit.Px(*spec.MinWidth)
		}
		if spec.MinHeight != nil {
			lo.Y = unit.Px(*spec.MinHeight)
		}
		b.Attrs.MinSize = &lo
	}
	if spec.MaxWidth != nil || spec.MaxHeight != nil {
		hi := unit.Vec(math.Inf(1), math.Inf(1))
		if spec.MaxWidth != nil {
			hi.X = unit.Px(*spec.MaxWidth)
		}
		if spec.MaxHeight != nil {
			hi.Y = unit.Px(*spec.MaxHeight)
		}
		b.Attrs.MaxSize = &hi
	}

	if spec.Layout != nil {
		if err := configure(b.Sublayout, *spec.Layout); err != nil {
			return nil, err
		}
		for _, child := range spec.Layout.Boxes {
			if err := addBoxes(b.Sublayout, child); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

package snapshot

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/layout"
)

// =============================================================================
// Snapshot - Serialized Layout Tree
// =============================================================================

// Snapshot is the serialized form of a layout and its nested sub-layouts.
//
// Box coordinates are local to the container they belong to: a box inside
// a nested Snapshot is positioned relative to its parent box's origin.
type Snapshot struct {
	Variant string  `json:"variant" bson:"variant"`
	Width   float64 `json:"width" bson:"width"`
	Height  float64 `json:"height" bson:"height"`

	// Flexible-layout properties
	Offset   float64 `json:"offset,omitempty" bson:"offset,omitempty"`
	Col      bool    `json:"col,omitempty" bson:"col,omitempty"`
	AlignX   string  `json:"align_x,omitempty" bson:"align_x,omitempty"`
	AlignY   string  `json:"align_y,omitempty" bson:"align_y,omitempty"`
	FlexGrow bool    `json:"flex_grow,omitempty" bson:"flex_grow,omitempty"`

	Boxes []Box `json:"boxes" bson:"boxes"`
}

// Box is one positioned child of a Snapshot.
type Box struct {
	Index  int     `json:"index" bson:"index"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Baseline geometry recorded by the last flow placement
	RealX      float64 `json:"real_x" bson:"real_x"`
	RealY      float64 `json:"real_y" bson:"real_y"`
	RealWidth  float64 `json:"real_width" bson:"real_width"`
	RealHeight float64 `json:"real_height" bson:"real_height"`

	Style  string    `json:"style" bson:"style"`
	Layout *Snapshot `json:"layout,omitempty" bson:"layout,omitempty"`
}

// IsAbsolute reports whether the box was excluded from flow placement.
func (b Box) IsAbsolute() bool { return b.Style == layout.Absolute.String() }

// Resized reports whether the box's current geometry differs from its baseline.
func (b Box) Resized() bool {
	return b.X != b.RealX || b.Y != b.RealY || b.Width != b.RealWidth || b.Height != b.RealHeight
}

// =============================================================================
// Capture
// =============================================================================

// FromLayout captures l into a Snapshot.
//
// depth limits how many levels of nested sub-layouts are included: 0 captures
// only l's immediate children and a negative depth captures the whole tree.
// Sub-layouts without children are omitted.
func FromLayout(l *layout.Layout, depth int) Snapshot {
	s := Snapshot{
		Variant: l.Variant.String(),
		Width:   l.Size.X.Float64(),
		Height:  l.Size.Y.Float64(),
		Offset:  l.Properties.Offset.Float64(),
		Col:     l.Col,
	}
	if l.Variant == layout.Flexible {
		s.AlignX = l.Properties.AlignX.String()
		s.AlignY = l.Properties.AlignY.String()
		s.FlexGrow = l.Properties.FlexGrow
	}

	children := l.Children()
	s.Boxes = make([]Box, len(children))
	for i, c := range children {
		b := Box{
			Index:      i,
			X:          c.Position.X.Float64(),
			Y:          c.Position.Y.Float64(),
			Width:      c.Size.X.Float64(),
			Height:     c.Size.Y.Float64(),
			RealX:      c.RealPosition.X.Float64(),
			RealY:      c.RealPosition.Y.Float64(),
			RealWidth:  c.RealSize.X.Float64(),
			RealHeight: c.RealSize.Y.Float64(),
			Style:      c.Attrs.Style.String(),
		}
		if depth != 0 && c.Sublayout != nil && c.Sublayout.Len() > 0 {
			sub := FromLayout(c.Sublayout, depth-1)
			b.Layout = &sub
		}
		s.Boxes[i] = b
	}
	return s
}

// =============================================================================
// Traversal
// =============================================================================

// Count returns the number of boxes in the snapshot, nested ones included.
func (s Snapshot) Count() int {
	n := 0
	_ = s.Walk(func([]int, Box) error {
		n++
		return nil
	})
	return n
}

// Depth returns the number of nesting levels below s.
func (s Snapshot) Depth() int {
	d := 0
	for _, b := range s.Boxes {
		if b.Layout != nil {
			d = max(d, b.Layout.Depth()+1)
		}
	}
	return d
}

// Bounds returns the extent covered by the container and its immediate
// children. Boxes that overflow the container enlarge the bounds.
func (s Snapshot) Bounds() (width, height float64) {
	width, height = s.Width, s.Height
	for _, b := range s.Boxes {
		width = max(width, b.X+b.Width)
		height = max(height, b.Y+b.Height)
	}
	return width, height
}

// Walk calls fn for every box in depth-first pre-order. The path lists the
// child indices from the root down to the box; fn must not retain it.
// Walk stops at the first error fn returns.
func (s Snapshot) Walk(fn func(path []int, b Box) error) error {
	return s.walk(nil, fn)
}

func (s Snapshot) walk(prefix []int, fn func([]int, Box) error) error {
	for _, b := range s.Boxes {
		path := append(prefix, b.Index)
		if err := fn(path, b); err != nil {
			return err
		}
		if b.Layout != nil {
			if err := b.Layout.walk(path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal serializes a Snapshot to pretty-printed JSON bytes.
func Marshal(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Snapshot and validates it.
func Unmarshal(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal snapshot")
	}
	if s.Variant == "" {
		s.Variant = layout.Block.String()
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate checks variant and style names and rejects negative sizes.
func (s Snapshot) Validate() error {
	if _, err := layout.ParseVariant(s.Variant); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "snapshot")
	}
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "snapshot has negative size %vx%v", s.Width, s.Height)
	}
	return s.Walk(func(path []int, b Box) error {
		if _, err := layout.ParsePositionStyle(b.Style); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "box %v", path)
		}
		if b.Width < 0 || b.Height < 0 {
			return errors.New(errors.ErrCodeInvalidFormat, "box %v has negative size %vx%v", path, b.Width, b.Height)
		}
		if b.Layout != nil {
			if _, err := layout.ParseVariant(b.Layout.Variant); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "box %v", path)
			}
		}
		return nil
	})
}

// WriteFile writes a Snapshot to a JSON file.
func WriteFile(s Snapshot, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Snapshot from a JSON file.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return Snapshot{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Unmarshal(data)
}

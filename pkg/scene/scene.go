package scene

// Scene is a layout tree plus the operations to replay on it.
type Scene struct {
	Name        string  `toml:"name" hcl:"name,optional" json:"name,omitempty"`
	Description string  `toml:"description" hcl:"description,optional" json:"description,omitempty"`
	Width       float64 `toml:"width" hcl:"width" json:"width"`
	Height      float64 `toml:"height" hcl:"height" json:"height"`

	Layout LayoutSpec `toml:"layout" hcl:"layout,block" json:"layout"`
	Steps  []StepSpec `toml:"step" hcl:"step,block" json:"steps,omitempty"`
}

// LayoutSpec describes a layout and its children.
type LayoutSpec struct {
	Variant string  `toml:"variant" hcl:"variant,optional" json:"variant,omitempty"`
	Offset  float64 `toml:"offset" hcl:"offset,optional" json:"offset,omitempty"`
	Col     bool    `toml:"col" hcl:"col,optional" json:"col,omitempty"`
	AlignX  string  `toml:"align_x" hcl:"align_x,optional" json:"align_x,omitempty"`
	AlignY  string  `toml:"align_y" hcl:"align_y,optional" json:"align_y,omitempty"`
	// FlexGrow defaults to true when unset.
	FlexGrow *bool `toml:"flex_grow" hcl:"flex_grow,optional" json:"flex_grow,omitempty"`

	Boxes []BoxSpec `toml:"box" hcl:"box,block" json:"boxes,omitempty"`
}

// BoxSpec describes one child box. Repeat adds the same box several times.
type BoxSpec struct {
	Width  float64 `toml:"width" hcl:"width" json:"width"`
	Height float64 `toml:"height" hcl:"height" json:"height"`
	X      float64 `toml:"x" hcl:"x,optional" json:"x,omitempty"`
	Y      float64 `toml:"y" hcl:"y,optional" json:"y,omitempty"`
	Style  string  `toml:"style" hcl:"style,optional" json:"style,omitempty"`
	Repeat int     `toml:"repeat" hcl:"repeat,optional" json:"repeat,omitempty"`

	MinWidth  *float64 `toml:"min_width" hcl:"min_width,optional" json:"min_width,omitempty"`
	MinHeight *float64 `toml:"min_height" hcl:"min_height,optional" json:"min_height,omitempty"`
	MaxWidth  *float64 `toml:"max_width" hcl:"max_width,optional" json:"max_width,omitempty"`
	MaxHeight *float64 `toml:"max_height" hcl:"max_height,optional" json:"max_height,omitempty"`

	Layout *LayoutSpec `toml:"layout" hcl:"layout,block" json:"layout,omitempty"`
}

// Count returns how many boxes the spec adds.
func (b BoxSpec) Count() int {
	return max(b.Repeat, 1)
}

// StepSpec is one operation on the layout found by following Target (a path
// of child indices) from the root. An empty Target means the root layout.
type StepSpec struct {
	Op     string   `toml:"op" hcl:"op" json:"op"`
	Target []int    `toml:"target" hcl:"target,optional" json:"target,omitempty"`
	Axis   string   `toml:"axis" hcl:"axis,optional" json:"axis,omitempty"`
	Index  int      `toml:"index" hcl:"index,optional" json:"index,omitempty"`
	Box    *BoxSpec `toml:"box" hcl:"box,block" json:"box,omitempty"`
}

// Step operations.
const (
	OpAdd         = "add"
	OpRemove      = "remove"
	OpResize      = "resize"
	OpRevert      = "revert"
	OpRecalculate = "recalculate"
)

// Ops lists every step operation.
var Ops = []string{OpAdd, OpRemove, OpResize, OpRevert, OpRecalculate}

package layout

import (
	"testing"

	"github.com/matzehuels/clemen/pkg/unit"
)

func TestNewBox(t *testing.T) {
	b := NewBox(unit.Vec(40, 30), unit.Vec(5, 6), Flexible)

	if b.RealSize != b.Size || b.RealPosition != b.Position {
		t.Errorf("NewBox baseline = %v@%v, want %v@%v", b.RealSize, b.RealPosition, b.Size, b.Position)
	}
	if b.Sublayout == nil {
		t.Fatal("NewBox should create a sub-layout")
	}
	if b.Sublayout.Variant != Flexible {
		t.Errorf("Sublayout.Variant = %v, want flexible", b.Sublayout.Variant)
	}
	if b.Sublayout.Size != b.Size {
		t.Errorf("Sublayout.Size = %v, want %v", b.Sublayout.Size, b.Size)
	}
	if b.IsAbsolute() {
		t.Error("NewBox should be relative")
	}
}

func TestBoxGoto(t *testing.T) {
	b := newTestBox(10, 10)
	b.Goto(unit.Vec(7, 8))

	if !b.Position.X.EqualF(7) || !b.Position.Y.EqualF(8) {
		t.Errorf("Position = %v, want (7, 8)", b.Position)
	}
	if b.RealPosition != b.Position {
		t.Errorf("RealPosition = %v, want %v", b.RealPosition, b.Position)
	}
}

func TestBoxResizeRecomputesChildren(t *testing.T) {
	outer := NewBox(unit.Vec(200, 300), unit.Vec(0, 0), Block)
	for i := 0; i < 3; i++ {
		outer.Sublayout.Add(newTestBox(100, 100))
	}
	checkPosition(t, outer.Sublayout, 2, 0, 100)

	outer.Resize(unit.Vec(300, 300))

	if outer.RealSize != outer.Size {
		t.Errorf("RealSize = %v, want %v", outer.RealSize, outer.Size)
	}
	if outer.Sublayout.Size != outer.Size {
		t.Errorf("Sublayout.Size = %v, want %v", outer.Sublayout.Size, outer.Size)
	}
	checkPosition(t, outer.Sublayout, 2, 200, 0)
}

func TestFlexibleResizeSyncsSublayout(t *testing.T) {
	l := newFlexible(200, 100, false)
	child := NewBox(unit.Vec(120, 50), unit.Vec(0, 0), Block)
	l.Add(child)
	l.Add(newTestBox(120, 50))

	if err := l.ResizeFlexible(unit.X); err != nil {
		t.Fatal(err)
	}
	if !child.Sublayout.Size.X.EqualF(100) {
		t.Errorf("Sublayout.Size.X = %v, want 100", child.Sublayout.Size.X)
	}
}

func TestBoxClamp(t *testing.T) {
	min := unit.Vec(10, 20)
	max := unit.Vec(50, 60)
	b := newTestBox(30, 30)
	b.Attrs.MinSize = &min
	b.Attrs.MaxSize = &max

	tests := []struct {
		axis unit.Axis
		in   float64
		want float64
	}{
		{unit.X, 5, 10},
		{unit.X, 30, 30},
		{unit.X, 70, 50},
		{unit.Y, 5, 20},
		{unit.Y, 70, 60},
	}

	for _, tt := range tests {
		if got := b.clamp(tt.axis, unit.Px(tt.in)); !got.EqualF(tt.want) {
			t.Errorf("clamp(%v, %v) = %v, want %v", tt.axis, tt.in, got, tt.want)
		}
	}

	b.Attrs.MinSize, b.Attrs.MaxSize = nil, nil
	if got := b.clamp(unit.X, unit.Px(-3)); !got.EqualF(-3) {
		t.Errorf("clamp without bounds = %v, want -3", got)
	}
}

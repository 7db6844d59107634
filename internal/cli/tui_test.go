package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/clemen/pkg/errors"
	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/unit"
)

// newTestTree returns a 200 wide flexible row with two 120x50 boxes; the
// first box holds one nested child.
func newTestTree() *layout.Layout {
	l := layout.New(layout.Flexible, unit.Vec(200, 100))
	l.Properties.FlexGrow = false
	first := layout.NewBox(unit.Vec(120, 50), unit.Vec(0, 0), layout.Block)
	l.Add(first)
	l.Add(layout.NewBox(unit.Vec(120, 50), unit.Vec(0, 0), layout.Block))
	first.Sublayout.Add(layout.NewBox(unit.Vec(10, 10), unit.Vec(0, 0), layout.Block))
	return l
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m InspectModel, keys ...string) InspectModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(InspectModel)
	}
	return m
}

func TestInspectNavigation(t *testing.T) {
	m := NewInspectModel("test", newTestTree())

	tests := []struct {
		keys       []string
		wantCursor int
	}{
		{[]string{"down"}, 1},
		{[]string{"down", "down", "down"}, 1},
		{[]string{"down", "up"}, 0},
		{[]string{"up"}, 0},
		{[]string{"j", "k", "j"}, 1},
	}

	for _, tt := range tests {
		if got := press(m, tt.keys...).Cursor; got != tt.wantCursor {
			t.Errorf("after %v Cursor = %d, want %d", tt.keys, got, tt.wantCursor)
		}
	}
}

func TestInspectDescendAscend(t *testing.T) {
	root := newTestTree()
	m := NewInspectModel("test", root)

	m = press(m, "enter")
	first, _ := root.Child(0)
	if m.Current() != first.Sublayout {
		t.Fatal("enter should show the selected box's layout")
	}
	if got := m.Path(); len(got) != 1 || got[0] != 0 {
		t.Errorf("Path() = %v, want [0]", got)
	}
	if !strings.Contains(m.View(), "root › 0") {
		t.Errorf("View() breadcrumb missing:\n%s", m.View())
	}

	m = press(m, "backspace")
	if m.Current() != root || len(m.Path()) != 0 {
		t.Error("backspace should return to the root layout")
	}

	// backspace at the root is a no-op
	m = press(m, "down", "backspace")
	if m.Current() != root || m.Cursor != 1 {
		t.Errorf("backspace at root moved to cursor %d", m.Cursor)
	}

	// the restored cursor is the box that was entered
	m = press(m, "enter", "backspace")
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after ascending, want 1", m.Cursor)
	}
}

func TestInspectResizeAndRevert(t *testing.T) {
	root := newTestTree()
	m := press(NewInspectModel("test", root), "x")
	if m.Err != nil {
		t.Fatalf("resize failed: %v", m.Err)
	}

	for i, want := range []float64{0, 100} {
		b, _ := root.Child(i)
		if !b.Size.X.EqualF(100) || !b.Position.X.EqualF(want) {
			t.Errorf("child %d = %v@%v, want width 100 at x %v", i, b.Size, b.Position, want)
		}
	}
	if m.Status != "resized along x" {
		t.Errorf("Status = %q", m.Status)
	}

	m = press(m, "r")
	for i := 0; i < 2; i++ {
		b, _ := root.Child(i)
		if !b.Size.X.EqualF(120) {
			t.Errorf("child %d width = %v after revert, want 120", i, b.Size.X)
		}
	}
	if m.Err != nil {
		t.Errorf("revert failed: %v", m.Err)
	}
}

func TestInspectResizeBlockShowsError(t *testing.T) {
	m := press(NewInspectModel("test", newTestTree()), "enter", "y")

	if !errors.Is(m.Err, errors.ErrCodeInvalidOperation) {
		t.Fatalf("Err = %v, want %s", m.Err, errors.ErrCodeInvalidOperation)
	}
	if !strings.Contains(m.View(), m.Status) {
		t.Error("View() should show the error in the status line")
	}

	// the next successful operation clears the error
	m = press(m, "c")
	if m.Err != nil || m.Status != "recalculated" {
		t.Errorf("after recalculate Err = %v, Status = %q", m.Err, m.Status)
	}
}

func TestInspectAddAndRemove(t *testing.T) {
	root := newTestTree()
	m := press(NewInspectModel("test", root), "down", "a")

	if root.Len() != 3 {
		t.Fatalf("Len() = %d after add, want 3", root.Len())
	}
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want the new box", m.Cursor)
	}
	added, _ := root.Child(2)
	if !added.Size.X.EqualF(120) || !added.Size.Y.EqualF(50) {
		t.Errorf("added box size = %v, want (120, 50)", added.Size)
	}
	if !added.Position.X.EqualF(240) {
		t.Errorf("added box x = %v, want 240", added.Position.X)
	}

	m = press(m, "d")
	if root.Len() != 2 || m.Cursor != 1 {
		t.Errorf("after delete Len() = %d Cursor = %d, want 2 and 1", root.Len(), m.Cursor)
	}

	m = press(m, "d", "d")
	if root.Len() != 0 || m.Cursor != 0 {
		t.Fatalf("after deleting all Len() = %d Cursor = %d", root.Len(), m.Cursor)
	}
	if !strings.Contains(m.View(), "no boxes") {
		t.Error("View() should mark an empty layout")
	}

	m = press(m, "d")
	if m.Err == nil {
		t.Error("delete on an empty layout should fail")
	}
	m = press(m, "a")
	if m.Err == nil {
		t.Error("copying from an empty layout should fail")
	}
}

func TestInspectQuit(t *testing.T) {
	m := NewInspectModel("test", newTestTree())
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch k {
		case "q":
			msg = key("q")
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestInspectScroll(t *testing.T) {
	l := layout.New(layout.Block, unit.Vec(100, 100))
	for i := 0; i < 30; i++ {
		l.Add(layout.NewBox(unit.Vec(10, 10), unit.Vec(0, 0), layout.Block))
	}
	m := NewInspectModel("test", l)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 15})
	m = next.(InspectModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	for i := 0; i < 7; i++ {
		m = press(m, "down")
	}
	if m.Cursor != 7 || m.Offset != 3 {
		t.Errorf("Cursor = %d Offset = %d, want 7 and 3", m.Cursor, m.Offset)
	}
	if !strings.Contains(m.View(), "[8/30]") {
		t.Error("View() should show the cursor position")
	}
}

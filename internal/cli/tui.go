package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/clemen/pkg/layout"
	"github.com/matzehuels/clemen/pkg/unit"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorFaint)

// =============================================================================
// InspectModel - Interactive layout tree editor
// =============================================================================

// inspectFrame remembers the layout and cursor of an ancestor level.
type inspectFrame struct {
	layout *layout.Layout
	cursor int
}

// InspectModel is the bubbletea model for walking and editing a layout tree.
// Every key applies one layout operation to the layout being viewed.
type InspectModel struct {
	Title  string
	Root   *layout.Layout
	Cursor int
	Height int
	Offset int
	// Status reports the outcome of the last operation.
	Status string
	// Err is the error of the last operation, if it failed.
	Err error

	current *layout.Layout
	parents []inspectFrame
}

// NewInspectModel creates an inspector positioned at the root layout.
func NewInspectModel(title string, root *layout.Layout) InspectModel {
	return InspectModel{
		Title:   title,
		Root:    root,
		Height:  15,
		current: root,
	}
}

// Current returns the layout being viewed.
func (m InspectModel) Current() *layout.Layout { return m.current }

// Path returns the child indices from the root to the current layout.
func (m InspectModel) Path() []int {
	path := make([]int, len(m.parents))
	for i, f := range m.parents {
		path[i] = f.cursor
	}
	return path
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter", "right", "l":
			m.descend()
		case "backspace", "left", "h":
			m.ascend()
		case "x":
			m.apply(m.current.ResizeFlexible(unit.X), "resized along x")
		case "y":
			m.apply(m.current.ResizeFlexible(unit.Y), "resized along y")
		case "r":
			m.apply(m.current.RevertFlexible(), "reverted to baseline")
		case "c":
			m.current.Recalculate()
			m.apply(nil, "recalculated")
		case "a":
			m.addCopy()
		case "d":
			m.remove()
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
		m.scroll()
	}
	return m, nil
}

func (m *InspectModel) move(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= m.current.Len() {
		return
	}
	m.Cursor = next
	m.scroll()
}

func (m *InspectModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *InspectModel) descend() {
	b, err := m.current.Child(m.Cursor)
	if err != nil {
		m.apply(err, "")
		return
	}
	if b.Sublayout == nil {
		m.apply(nil, "box has no layout")
		return
	}
	m.parents = append(m.parents, inspectFrame{layout: m.current, cursor: m.Cursor})
	m.current = b.Sublayout
	m.Cursor, m.Offset = 0, 0
	m.apply(nil, "entered box "+strconv.Itoa(m.parents[len(m.parents)-1].cursor))
}

func (m *InspectModel) ascend() {
	if len(m.parents) == 0 {
		return
	}
	top := m.parents[len(m.parents)-1]
	m.parents = m.parents[:len(m.parents)-1]
	m.current = top.layout
	m.Cursor, m.Offset = top.cursor, 0
	m.scroll()
	m.apply(nil, "")
}

// addCopy appends a box with the selected box's size, style and bounds.
func (m *InspectModel) addCopy() {
	src, err := m.current.Child(m.Cursor)
	if err != nil {
		m.apply(err, "")
		return
	}
	display := layout.Block
	if src.Sublayout != nil {
		display = src.Sublayout.Variant
	}
	b := layout.NewBox(src.Size, src.Position, display)
	b.Attrs = src.Attrs
	m.Cursor = m.current.Add(b)
	m.scroll()
	m.apply(nil, "added box "+strconv.Itoa(m.Cursor))
}

func (m *InspectModel) remove() {
	i := m.Cursor
	if err := m.current.Remove(i); err != nil {
		m.apply(err, "")
		return
	}
	m.Cursor = max(min(m.Cursor, m.current.Len()-1), 0)
	m.scroll()
	m.apply(nil, "removed box "+strconv.Itoa(i))
}

// apply records the outcome of an operation in the status line.
func (m *InspectModel) apply(err error, ok string) {
	m.Err = err
	m.Status = ok
	if err != nil {
		m.Status = err.Error()
	}
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.Title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ⏎ enter  ⌫ back  x/y resize  r revert  c recalc  a add  d delete  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.summary())
	b.WriteString("\n")

	if m.current.Len() == 0 {
		b.WriteString(listDimStyle.Render("  (no boxes)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table())
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.current.Len())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.Err != nil:
		b.WriteString(StyleError.Render(iconFailure + " " + m.Status))
	case m.Status != "":
		b.WriteString(StyleSuccess.Render(iconSuccess + " " + m.Status))
	}
	return b.String()
}

func (m InspectModel) breadcrumb() string {
	parts := []string{"root"}
	for _, i := range m.Path() {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, " "+iconInfo+" ")
}

func (m InspectModel) summary() string {
	l := m.current
	parts := []string{l.Variant.String(), l.Size.X.String() + "×" + l.Size.Y.String()}
	if l.Variant == layout.Flexible {
		dir := "row"
		if l.Col {
			dir = "col"
		}
		parts = append(parts, dir,
			"align "+l.Properties.AlignX.String()+"/"+l.Properties.AlignY.String(),
			"grow "+strconv.FormatBool(l.Properties.FlexGrow))
	}
	if !l.Properties.Offset.IsZero() {
		parts = append(parts, "offset "+l.Properties.Offset.String())
	}
	return StyleValue.Render("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

func (m InspectModel) table() string {
	children := m.current.Children()
	end := min(m.Offset+m.Height, len(children))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := children[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		nested := "—"
		if c.Sublayout != nil && c.Sublayout.Len() > 0 {
			nested = fmt.Sprintf("%s (%d)", c.Sublayout.Variant, c.Sublayout.Len())
		}
		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			c.Attrs.Style.String(),
			c.Position.String(),
			c.Size.String(),
			c.RealSize.String(),
			nested,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "#", "Style", "Position", "Size", "Baseline", "Layout").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(children) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if children[idx].IsAbsolute() {
				base = base.Foreground(colorYellow)
			} else if children[idx].Size != children[idx].RealSize {
				base = base.Foreground(colorOK)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			if col == 5 {
				return base.Foreground(colorFaint)
			}
			return base
		})
	return t.Render()
}

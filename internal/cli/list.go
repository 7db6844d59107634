package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/clemen/pkg/scene"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the builtin scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := scenesTable()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, t)
			printNextStep("Render one", appName+" run <scene> -f svg,html")
			return nil
		},
	}
}

// scenesTable builds every builtin scene and tabulates its size.
func scenesTable() (string, error) {
	var rows [][]string
	for _, name := range scene.Builtins() {
		sc, err := scene.Builtin(name)
		if err != nil {
			return "", err
		}
		l, err := sc.Build()
		if err != nil {
			return "", fmt.Errorf("build %s: %w", name, err)
		}
		snap := snapshot.FromLayout(l, -1)
		rows = append(rows, []string{
			name,
			l.Variant.String(),
			strconv.Itoa(snap.Count()),
			strconv.Itoa(len(sc.Steps)),
			sc.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Scene", "Layout", "Boxes", "Steps", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight
			case col == 4:
				return StyleDim
			}
			return StyleValue
		})
	return t.Render(), nil
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/clemen/pkg/pipeline"
	"github.com/matzehuels/clemen/pkg/snapshot"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		builtin bool
		save    string
	)

	cmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "Walk and edit a built layout tree interactively",
		Long: `Build a scene and open it in an interactive inspector.

Select boxes with the arrow keys, enter a box to see its nested layout and
apply layout operations to the layout on screen: resize flexible children
along x or y, revert them, add a copy of the selected box or remove it.
With --save the edited tree is written as a JSON snapshot on exit.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeScenes,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sc, err := resolveScene(args[0], builtin)
			if err != nil {
				return err
			}
			if err := sc.Validate(); err != nil {
				return err
			}
			l, err := sc.Build()
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("built scene for inspection", "scene", displayName(args[0], sc), "boxes", l.Len())

			p := tea.NewProgram(NewInspectModel(displayName(args[0], sc), l), tea.WithContext(ctx), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("inspector: %w", err)
			}

			if save == "" {
				return nil
			}
			m := final.(InspectModel)
			snap := snapshot.FromLayout(m.Root, pipeline.DepthAll)
			if err := snapshot.WriteFile(snap, save); err != nil {
				return err
			}
			printSuccess("Saved edited layout")
			printStats(snap.Count(), snap.Depth(), false)
			printFile(save)
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "treat the argument as a builtin scene name")
	cmd.Flags().StringVar(&save, "save", "", "write the edited tree to this JSON file on exit")

	return cmd
}

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-board/board/pkg/manifest"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <manifest>",
		Short: "Browse a board manifest interactively",
		Long: `Show opens a board manifest in an interactive viewer. Arrow keys or
j/k move between items, q quits. Section headers and footers are fixed
decoration; only items and standalone leaves are selectable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("starting viewer", "blocks", b.Len())
			if _, err := tea.NewProgram(newBoardModel(b)).Run(); err != nil {
				return fmt.Errorf("viewer failed: %w", err)
			}
			return nil
		},
	}
}

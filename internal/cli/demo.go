package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spangrid/pkg/grid/state"
)

// newDemoCmd creates the demo command, an interactive terminal viewer.
func newDemoCmd() *cobra.Command {
	var stateKey string

	cmd := &cobra.Command{
		Use:   "demo [scenario.toml]",
		Short: "Explore a scenario interactively with keyboard scrolling",
		Long: `Explore a scenario interactively with keyboard scrolling.

The demo command packs the scenario and opens a terminal viewer showing
which items are materialized as the viewport scrolls. Without a scenario
file a built-in mixed-span scenario is used.

With --state-key the scroll position persists across runs under that key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := defaultScenario()
			if len(args) == 1 {
				loaded, err := loadScenario(args[0])
				if err != nil {
					return err
				}
				s = loaded
			}

			var store state.Store
			if stateKey != "" {
				fs, err := state.NewFileStore("")
				if err != nil {
					return fmt.Errorf("open state store: %w", err)
				}
				store = fs
				defer func() { _ = store.Close() }()
			}

			m, err := newDemoModel(cmd.Context(), s, store, stateKey)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stateKey, "state-key", "", "persist the scroll position under this key")

	return cmd
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spangrid/pkg/grid/state"
)

// newStateCmd creates the state management command.
func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Manage persisted scroll state",
	}

	cmd.AddCommand(newStatePathCmd())
	cmd.AddCommand(newStateClearCmd())

	return cmd
}

// newStatePathCmd creates the "state path" subcommand.
func newStatePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the state directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := state.NewFileStore("")
			if err != nil {
				return fmt.Errorf("open state store: %w", err)
			}
			defer func() { _ = store.Close() }()
			fmt.Println(store.Path())
			return nil
		},
	}
}

// newStateClearCmd creates the "state clear" subcommand.
func newStateClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all persisted scroll state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := state.NewFileStore("")
			if err != nil {
				return fmt.Errorf("open state store: %w", err)
			}
			defer func() { _ = store.Close() }()
			dir := store.Path()

			entries, err := os.ReadDir(dir)
			if os.IsNotExist(err) {
				printInfo("State is empty")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read state dir: %w", err)
			}

			count := 0
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
					count++
				}
			}

			printSuccess("Cleared %d state entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

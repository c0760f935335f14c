package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spangrid/pkg/grid/export"
)

// newPackCmd creates the pack command for headless layout passes.
func newPackCmd() *cobra.Command {
	var (
		output   string
		mongoURI string
		mongoDB  string
		mongoCol string
	)

	cmd := &cobra.Command{
		Use:   "pack <scenario.toml>",
		Short: "Run a full layout pass over a scenario and export the result",
		Long: `Run a full layout pass over a scenario and export the result.

The pack command reads a TOML scenario file describing the grid (lanes,
cell size, viewport) and its items (groups of spans), packs every item
into the grid, and writes the computed layout as JSON.

With --mongo-uri the layout is also archived in MongoDB and the document
ID printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(cmd.Context(), args[0], output, mongoURI, mongoDB, mongoCol)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "archive the layout in MongoDB at this URI")
	cmd.Flags().StringVar(&mongoDB, "mongo-db", "spangrid", "MongoDB database for --mongo-uri")
	cmd.Flags().StringVar(&mongoCol, "mongo-collection", "layouts", "MongoDB collection for --mongo-uri")

	return cmd
}

// runPack loads the scenario, runs the layout, and writes output.
func runPack(ctx context.Context, input, output, mongoURI, mongoDB, mongoCol string) error {
	logger := loggerFromContext(ctx)

	s, err := loadScenario(input)
	if err != nil {
		return err
	}
	eng, _, err := s.buildEngine(newLogHooks(logger))
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	prog := newProgress(logger)
	if err := eng.FullLayout(); err != nil {
		printError("Layout failed")
		return fmt.Errorf("pack %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Placed %d items", eng.ItemCount()))

	layout := export.Snapshot(eng)

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}
	if err := export.WriteFile(layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(eng.ItemCount(), layout.Lanes, layout.ContentEnd)

	if mongoURI != "" {
		archive, err := export.NewArchive(ctx, mongoURI, mongoDB, mongoCol)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer func() { _ = archive.Close(ctx) }()

		id, err := archive.Save(ctx, layout)
		if err != nil {
			return fmt.Errorf("archive layout: %w", err)
		}
		printDetail("Archived as %s", id)
	}

	printNewline()
	printNextStep("Explore", "spangrid demo "+input)

	return nil
}

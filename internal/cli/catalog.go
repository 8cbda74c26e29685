package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/manifold/internal/catalog"
)

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var db string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect recorded generation runs",
		Long: `Inspect the SQLite catalog written by generate --catalog: past
runs with their designs and multipliers, and the per-part mesh
statistics of any run.`,
	}

	cmd.PersistentFlags().StringVar(&db, "db", "manifold.db", "path to the catalog database")

	cmd.AddCommand(newCatalogRunsCommand(rootOpts, &db))
	cmd.AddCommand(newCatalogPartsCommand(rootOpts, &db))

	return cmd
}

func newCatalogRunsCommand(rootOpts *RootOptions, db *string) *cobra.Command {
	return &cobra.Command{
		Use:           "runs",
		Short:         "List recorded runs, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newCatalogFormatter(rootOpts, cmd)
			store, err := openCatalog(formatter, *db)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context())
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return WrapExitError(ExitFailure, "listing runs", err)
			}

			if rootOpts.Format == "json" {
				return formatter.Success(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(formatter.Writer, "no runs recorded")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(formatter.Writer, "%s  %s  %s  res %.2f mm  multiplier %.2fx (target %.2fx)\n",
					r.ID, r.CreatedAt, r.DesignFile, r.ResolutionMM, r.ActualMultiplier, r.TargetMultiplier)
			}
			return nil
		},
	}
}

func newCatalogPartsCommand(rootOpts *RootOptions, db *string) *cobra.Command {
	return &cobra.Command{
		Use:           "parts <run-id>",
		Short:         "List the parts of one run",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newCatalogFormatter(rootOpts, cmd)
			store, err := openCatalog(formatter, *db)
			if err != nil {
				return err
			}
			defer store.Close()

			parts, err := store.ListParts(cmd.Context(), args[0])
			if err != nil {
				formatter.Error(ErrCodeCatalog, err.Error(), nil)
				return WrapExitError(ExitFailure, "listing parts", err)
			}

			if rootOpts.Format == "json" {
				return formatter.Success(parts)
			}
			if len(parts) == 0 {
				fmt.Fprintf(formatter.Writer, "no parts recorded for run %s\n", args[0])
				return nil
			}
			for _, pt := range parts {
				if pt.Status == catalog.StatusFailed {
					fmt.Fprintf(formatter.Writer, "✗ %-32s failed\n", pt.Name)
					continue
				}
				fmt.Fprintf(formatter.Writer, "✓ %-32s x%d  %d triangles  %.0f x %.0f x %.0f mm  %s\n",
					pt.Name, pt.Quantity, pt.Triangles, pt.SizeX, pt.SizeY, pt.SizeZ, pt.File)
			}
			return nil
		},
	}
}

func newCatalogFormatter(rootOpts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}
}

// openCatalog opens an existing catalog, insisting that the file is
// already there so a typo in --db does not create an empty database.
func openCatalog(formatter *OutputFormatter, path string) (*catalog.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		formatter.Error(ErrCodeNotFound, fmt.Sprintf("catalog not found: %s", path), nil)
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("catalog not found: %s", path))
	}
	store, err := catalog.Open(path)
	if err != nil {
		formatter.Error(ErrCodeCatalog, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "opening catalog", err)
	}
	return store, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/corey/rankbot/internal/adapters/bbolt"
	"github.com/corey/rankbot/internal/app"
	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the loaded features and any imported snapshots",
	Args:  cobra.NoArgs,
	RunE:  runDatasets,
}

var datasetsRmCmd = &cobra.Command{
	Use:   "rm <snapshot>",
	Short: "Remove an imported snapshot from the local database",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetsRm,
}

func init() {
	datasetsCmd.AddCommand(datasetsRmCmd)
}

func runDatasets(cmd *cobra.Command, args []string) error {
	a, closer, err := newApp(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	color := a.Config().Color

	fmt.Fprintln(out, app.Heading(fmt.Sprintf("Features (%s)", a.Config().Source), color))
	for _, name := range a.Dataset.FeatureNames() {
		unit := a.Dataset.Unit(name)
		if unit == "" {
			unit = "-"
		}
		fmt.Fprintf(out, "  %-20s %-12s %d countries\n", name, unit, a.Dataset.Len(name))
	}

	// Snapshots are informational; a missing database is not an error.
	p, err := paths()
	if err != nil {
		return err
	}
	store, err := bbolt.OpenReadOnly(dbPath(p))
	if err != nil {
		return nil
	}
	defer store.Close()

	names, err := store.ListDatasets()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, app.Heading("Snapshots", color))
	for _, n := range names {
		fmt.Fprintf(out, "  %s\n", n)
	}
	return nil
}

func runDatasetsRm(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	db := dbPath(p)
	if _, err := os.Stat(db); err != nil {
		return fmt.Errorf("no database at %s: %w", db, err)
	}

	store, err := bbolt.NewStore(db)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteDataset(args[0]); err != nil {
		return fmt.Errorf("remove snapshot %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed snapshot %q from %s\n", args[0], db)
	return nil
}

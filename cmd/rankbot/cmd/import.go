package cmd

import (
	"fmt"

	"github.com/corey/rankbot/internal/adapters/bbolt"
	"github.com/corey/rankbot/internal/domain/dataset"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var importCmd = &cobra.Command{
	Use:   "import <file-or-dir>",
	Short: "Load a JSON/YAML dataset into the local database",
	Long: `Validates a dataset file or directory and stores it as a named snapshot
(--name, default "default") in the bbolt database. Use it afterwards with
--source bolt. Importing under an existing name replaces that snapshot.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ds, err := dataset.LoadPath(args[0])
	if err != nil {
		return err
	}

	p, err := paths()
	if err != nil {
		return err
	}
	db := dbPath(p)
	if db == p.DB {
		if err := p.EnsureDirs(); err != nil {
			return err
		}
	}

	store, err := bbolt.NewStore(db)
	if err != nil {
		return err
	}
	defer store.Close()

	name := viper.GetString("dataset.name")
	if err := store.SaveDataset(name, ds.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot %q: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d features into %s (snapshot %q)\n",
		len(ds.FeatureNames()), db, name)
	return nil
}

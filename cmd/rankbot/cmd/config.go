package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	file := viper.ConfigFileUsed()
	if file == "" {
		file = "(none)"
	}
	fmt.Fprintf(out, "config file:     %s\n", file)
	fmt.Fprintf(out, "dataset.source:  %s\n", viper.GetString("dataset.source"))
	fmt.Fprintf(out, "dataset.db:      %s\n", dbPath(p))
	fmt.Fprintf(out, "dataset.name:    %s\n", viper.GetString("dataset.name"))
	fmt.Fprintf(out, "prompt:          %q\n", viper.GetString("prompt"))
	fmt.Fprintf(out, "farewell:        %q\n", viper.GetString("farewell"))
	fmt.Fprintf(out, "color:           %s\n", viper.GetString("color"))
	fmt.Fprintf(out, "debug:           %t\n", viper.GetBool("debug"))
	fmt.Fprintf(out, "debug log:       %s\n", p.SessionLog)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/corey/rankbot/internal/app"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the question patterns, in match order",
	Long: `Lists every question pattern in the order they are tried.
"_" matches exactly one word; "%" matches one or more words.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) error {
	a, closer, err := newApp(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, app.Heading("Patterns", a.Config().Color))
	for i, e := range a.Registry.Entries() {
		fmt.Fprintf(out, "  %d. %-60s %s\n", i+1, e.Pattern.String(), e.Name)
	}
	return nil
}

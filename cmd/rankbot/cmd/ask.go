package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/rankbot/internal/app"
	"github.com/corey/rankbot/internal/domain/query"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Answer a single question and exit",
	Long: `Answers one question given on the command line. Exits 1 when the
question matches no pattern, so scripts can tell the difference between
"No answers" and "I don't understand".`,
	Example: `  rankbot ask which country has the highest population
  rankbot ask "what is japan ranked for median age?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, closer, err := newApp(false)
	if err != nil {
		return err
	}
	defer closer.Close()

	out := cmd.OutOrStdout()
	res := a.Ask(strings.Join(args, " "))
	switch res.Status {
	case query.Farewell:
		fmt.Fprintln(out, a.Config().Farewell)
	case query.Unrecognized:
		fmt.Fprintln(out, app.Render(res, a.Config().Color))
		return exitError{code: 1}
	default:
		fmt.Fprintln(out, app.Render(res, a.Config().Color))
	}
	return nil
}

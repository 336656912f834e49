package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session (the default)",
	Long: `Reads one question per line from stdin and prints one answer per line.
The session ends on "bye", end of input, or Ctrl-C. The prompt is only shown
when stdin is a terminal.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	a, closer, err := newApp(isTerminal(os.Stdin))
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

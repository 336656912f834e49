package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/rankbot/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// flagKeys maps persistent flags to their viper keys.
var flagKeys = map[string]string{
	"source":   "dataset.source",
	"db":       "dataset.db",
	"name":     "dataset.name",
	"debug":    "debug",
	"color":    "color",
	"no-color": "no_color",
}

// rootCmd starts the chat loop when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "rankbot",
	Short: "rankbot: ask questions about country statistics",
	Long: `rankbot answers plain-English questions about country rankings
(population, area, median age, ...) by matching them against a fixed set of
question patterns. Type "what kinds of questions do you understand" to see them.`,
	Args:          cobra.NoArgs,
	RunE:          runChat,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rankbot.yaml)")
	pf.String("source", app.SourceEmbedded, "dataset source: embedded, bolt, or a JSON/YAML file or directory")
	pf.String("db", "", "bbolt database used by --source bolt and import (default is $HOME/.rankbot/rankbot.db)")
	pf.String("name", app.DefaultSnapshot, "snapshot name inside the database")
	pf.Bool("debug", false, "append a debug log to $HOME/.rankbot/log/session.log")
	pf.String("color", "auto", "colour output: auto, always, never")
	pf.Bool("no-color", false, "disable colour output")

	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind --%s to %s: %v", flag, key, err))
		}
	}

	viper.SetDefault("dataset.source", app.SourceEmbedded)
	viper.SetDefault("dataset.name", app.DefaultSnapshot)
	viper.SetDefault("prompt", app.DefaultPrompt)
	viper.SetDefault("farewell", app.DefaultFarewell)
	viper.SetDefault("color", "auto")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rankbot")
	}

	// RANKBOT_DATASET_SOURCE, RANKBOT_DEBUG, ...
	viper.SetEnvPrefix("rankbot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("debug") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// paths returns the .rankbot/ layout under the user's home directory.
func paths() (*app.Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error finding home directory: %w", err)
	}
	return app.NewPaths(home), nil
}

// dbPath returns the configured bbolt path, defaulting into .rankbot/.
func dbPath(p *app.Paths) string {
	if db := viper.GetString("dataset.db"); db != "" {
		return db
	}
	return p.DB
}

// buildConfig assembles the app configuration from viper. The returned
// closer releases the debug log file, if one was opened.
func buildConfig(interactive bool) (app.Config, io.Closer, error) {
	p, err := paths()
	if err != nil {
		return app.Config{}, nil, err
	}

	color, err := resolveColor(viper.GetString("color"), viper.GetBool("no_color"))
	if err != nil {
		return app.Config{}, nil, err
	}

	cfg := app.Config{
		Source:   viper.GetString("dataset.source"),
		DBPath:   dbPath(p),
		Snapshot: viper.GetString("dataset.name"),
		Farewell: viper.GetString("farewell"),
		Color:    color,
	}
	if interactive {
		cfg.Prompt = viper.GetString("prompt")
	}

	var closer io.Closer = io.NopCloser(nil)
	if viper.GetBool("debug") {
		f, err := p.OpenSessionLog()
		if err != nil {
			return app.Config{}, nil, fmt.Errorf("open debug log: %w", err)
		}
		cfg.Logger = app.NewLogger(f)
		closer = f
	}
	return cfg, closer, nil
}

// newApp builds the app from the current configuration.
func newApp(interactive bool) (*app.App, io.Closer, error) {
	cfg, closer, err := buildConfig(interactive)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(cfg)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return a, closer, nil
}

// Package cli implements the arbor command line demonstration harness.
package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the arbor release version.
const Version = "0.1.0"

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the arbor CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor - in-memory blog database",
		Long: `arbor is an in-memory data store for accounts, posts, and comments
with secondary indexes and cascading deletes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
			opts.Verbose = viper.GetBool("verbose")
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// initConfig wires environment variables into viper so every flag can also
// be set as ARBOR_<FLAG>.
func initConfig() {
	viper.SetEnvPrefix("arbor")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the slog logger commands hand to the store. Progress
// output goes to stderr so golden-tested stdout stays clean.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

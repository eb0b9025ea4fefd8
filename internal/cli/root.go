package cli

import (
	"fmt"
	"io"
	"os"

	"MiniCheck/internal/config"
	l "MiniCheck/internal/logger"

	"github.com/spf13/cobra"
)

type options struct {
	cfgFile string
	verbose bool
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "minicheck",
		Short: "MiniCheck - syntax checker for the mini language",
		Long: `MiniCheck tokenizes and parses programs written in the mini language
(assignments, if/end_if, loop/end_loop, arithmetic) and reports the first
syntax error with its line and column.

Front ends:
  check   - check files or stdin
  tokens  - dump the token stream
  repl    - interactive line-based checker
  tui     - terminal editor
  serve   - HTTP and WebSocket API`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCheckCmd(opts),
		newTokensCmd(opts),
		newReplCmd(opts),
		newTUICmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		cfg.Log.Level = l.DEBUG.String()
	}
	return cfg, nil
}

// consoleLogger writes to stderr when --verbose is set and discards otherwise.
func (o *options) consoleLogger(cmd *cobra.Command, name string) *l.Logger {
	if !o.verbose {
		return l.Discard()
	}
	return l.NewWriter(name, cmd.ErrOrStderr(), l.DEBUG)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

package cli

import (
	"context"
	"os/signal"
	"syscall"

	"MiniCheck/internal/repl"
	"MiniCheck/internal/server"
	"MiniCheck/internal/tui"

	"github.com/spf13/cobra"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check programs interactively, line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log, err := cfg.OpenLogger("repl")
			if err != nil {
				return err
			}
			defer log.Close()

			return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log, err := cfg.OpenLogger("tui")
			if err != nil {
				return err
			}
			defer log.Close()

			return tui.Run(cfg.TUI, log)
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checker over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			log, err := cfg.OpenLogger("server")
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Listening on %s\n", cfg.Server.Addr)
			return server.New(cfg.Server, log).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] addr)")
	return cmd
}

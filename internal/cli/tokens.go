package cli

import (
	"fmt"

	"MiniCheck/internal/lexer"
	"MiniCheck/internal/report"

	"github.com/spf13/cobra"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			src, err := readSource(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(src)
			if err != nil {
				opts.consoleLogger(cmd, "tokens").Error("%s: %v", displayName(name), err)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.TokenTable(tokens))
			return nil
		},
	}
}

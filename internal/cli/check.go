package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"MiniCheck/internal/checker"
	"MiniCheck/internal/report"

	"github.com/spf13/cobra"
)

var errInvalidPrograms = errors.New("one or more programs are invalid")

func newCheckCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check programs for syntax errors",
		Long:  "Check each file, or stdin when no file or '-' is given, and report the first syntax error per program.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			log := opts.consoleLogger(cmd, "check")

			if len(args) == 0 {
				args = []string{"-"}
			}

			reports := make([]report.Report, 0, len(args))
			failed := 0
			for _, name := range args {
				src, err := readSource(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				result := checker.Analyze(src)
				log.Debug("%s: valid=%v tokens=%d", name, result.Valid, len(result.Tokens))
				if !result.Valid {
					failed++
				}
				reports = append(reports, report.New(displayName(name), result))
			}

			if err := report.Render(cmd.OutOrStdout(), reports, f); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			if failed > 0 {
				return errInvalidPrograms
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "output format: text, json or yaml")
	return cmd
}

// readSource reads name, or stdin for "-", with CRLF line endings folded to LF.
func readSource(stdin io.Reader, name string) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(name), err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"MiniCheck/internal/checker"
	"MiniCheck/internal/lexer"
	"MiniCheck/internal/logger"
)

const (
	prompt     = "> "
	contPrompt = ". "
)

// Run reads programs from in until EOF or "exit". A program is buffered
// until a line reading end_program or a blank line, then checked.
func Run(in io.Reader, out io.Writer, log *logger.Logger) error {
	log.Info("Starting REPL session")
	fmt.Fprintln(out, "Welcome to MiniCheck")
	fmt.Fprintln(out, "Enter a program ending in end_program (or a blank line), or type 'exit' to quit")

	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	fmt.Fprint(out, prompt)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if buf.Len() == 0 && strings.ToLower(trimmed) == "exit" {
			log.Info("User requested exit")
			break
		}

		if trimmed != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}

		if (trimmed == "" || trimmed == lexer.KwEndProgram) && buf.Len() > 0 {
			evaluate(out, log, buf.String())
			buf.Reset()
		}

		if buf.Len() == 0 {
			fmt.Fprint(out, prompt)
		} else {
			fmt.Fprint(out, contPrompt)
		}
	}

	if buf.Len() > 0 {
		evaluate(out, log, buf.String())
	}

	if err := scanner.Err(); err != nil {
		log.Error("Error reading input: %v", err)
		return fmt.Errorf("error reading input: %w", err)
	}

	log.Info("REPL session ended")
	return nil
}

func evaluate(out io.Writer, log *logger.Logger, src string) {
	log.Debug("Checking program: %q", src)

	if err := checker.Check(src); err != nil {
		log.Error("Check failed: %v", err)
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	log.Debug("Program accepted")
	fmt.Fprintln(out, "OK: program is syntactically valid")
}

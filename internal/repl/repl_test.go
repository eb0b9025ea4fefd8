package repl

import (
	"bytes"
	"strings"
	"testing"

	"MiniCheck/internal/logger"
)

func run(t *testing.T, input string) (string, string) {
	t.Helper()
	defer logger.ResetRegistry()

	var logBuf, out bytes.Buffer
	log := logger.NewWriter("repl-test", &logBuf, logger.DEBUG)
	if err := Run(strings.NewReader(input), &out, log); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String(), logBuf.String()
}

func TestValidProgramOverSeveralLines(t *testing.T) {
	out, logs := run(t, "program\nvalue = 32;\nend_program\nexit\n")

	if !strings.Contains(out, "OK: program is syntactically valid") {
		t.Errorf("expected success message, got %q", out)
	}
	if strings.Count(out, contPrompt) != 2 {
		t.Errorf("expected two continuation prompts, got %q", out)
	}
	if !strings.Contains(logs, "User requested exit") {
		t.Errorf("expected exit to be logged, got %q", logs)
	}
}

func TestErrorIsReported(t *testing.T) {
	out, logs := run(t, "program value = ; end_program\n")

	if !strings.Contains(out, "Error: expected number, identifier, or parenthesized expression") {
		t.Errorf("expected parse error, got %q", out)
	}
	if !strings.Contains(logs, "ERROR: Check failed") {
		t.Errorf("expected failure to be logged, got %q", logs)
	}
}

func TestBlankLineFlushesBuffer(t *testing.T) {
	out, _ := run(t, "program\nx = 1;\n\nprogram end_program\n")

	if !strings.Contains(out, "Error: expected Identifier=\"end_program\", found end of input") {
		t.Errorf("expected unterminated program error, got %q", out)
	}
	if !strings.Contains(out, "OK") {
		t.Errorf("expected the second program to pass, got %q", out)
	}
}

func TestPendingInputCheckedAtEOF(t *testing.T) {
	out, _ := run(t, "program x = @;")

	if !strings.Contains(out, "Error: unexpected character '@' at line 1") {
		t.Errorf("expected lex error, got %q", out)
	}
}

func TestExitOnlyAtProgramStart(t *testing.T) {
	out, _ := run(t, "program\nexit\n")

	// "exit" inside a program is an ordinary identifier line
	if !strings.Contains(out, "Error: expected Assign") {
		t.Errorf("expected exit to be treated as source, got %q", out)
	}
}

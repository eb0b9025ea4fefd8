package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"MiniCheck/internal/checker"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Report is the serialisable outcome of checking one source.
type Report struct {
	File    string `json:"file" yaml:"file"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Stage   string `json:"stage,omitempty" yaml:"stage,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
	Tokens  int    `json:"tokens" yaml:"tokens"`
}

func New(file string, result checker.Result) Report {
	return Report{
		File:    file,
		Valid:   result.Valid,
		Stage:   string(result.Stage),
		Message: result.Message,
		Line:    result.Line,
		Column:  result.Column,
		Tokens:  len(result.Tokens),
	}
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

func Render(w io.Writer, reports []Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, r := range reports {
			if _, err := io.WriteString(w, Text(r)+"\n"); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// Text renders r as a single human readable line.
func Text(r Report) string {
	if r.Valid {
		return fmt.Sprintf("%s: %s (%d tokens)", r.File, okStyle.Render("OK"), r.Tokens)
	}
	return fmt.Sprintf("%s: %s %s error: %s", r.File, failStyle.Render("FAIL"), r.Stage, r.Message)
}

package tui

import (
	"strings"
	"testing"

	"MiniCheck/internal/config"
	l "MiniCheck/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(src string) model {
	m := newModel(config.Default().TUI, l.Discard())
	m.input.SetValue(src)
	return m
}

// runCheck presses k and feeds the resulting message back into the model.
func runCheck(t *testing.T, m model, k tea.KeyType) model {
	t.Helper()

	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	m = updated.(model)
	if !m.checking {
		t.Fatal("expected model to be checking")
	}
	if cmd == nil {
		t.Fatal("expected a check command")
	}

	msg, ok := cmd().(checkMsg)
	if !ok {
		t.Fatal("expected command to produce a checkMsg")
	}
	updated, _ = m.Update(msg)
	return updated.(model)
}

func TestCheckValidProgram(t *testing.T) {
	m := runCheck(t, newTestModel("program\nvalue = 32;\nend_program"), tea.KeyCtrlS)

	if m.checking || !m.valid {
		t.Fatalf("expected a finished, valid check; status %q", m.status)
	}
	if !strings.Contains(m.status, "No errors found") {
		t.Errorf("unexpected status %q", m.status)
	}
	if !strings.Contains(m.viewport.View(), "Valid program (6 tokens)") {
		t.Errorf("unexpected result view %q", m.viewport.View())
	}
}

func TestCheckInvalidProgramShowsContext(t *testing.T) {
	m := newTestModel("program\n  value = ;\nend_program")
	msg := checkCmd(m.input.Value(), false)().(checkMsg)

	out := m.renderResult(msg)
	if !strings.Contains(out, "parse error: expected number, identifier, or parenthesized expression") {
		t.Errorf("unexpected result %q", out)
	}
	if !strings.Contains(out, "   2 |   value = ;") {
		t.Errorf("expected offending line to be quoted, got %q", out)
	}
	if !strings.Contains(out, "     |           ^") {
		t.Errorf("expected caret under column 11, got %q", out)
	}
}

func TestTokenTableRequested(t *testing.T) {
	m := newTestModel("program end_program")
	msg := checkCmd(m.input.Value(), true)().(checkMsg)

	out := m.renderResult(msg)
	if !strings.Contains(out, "end_program") || !strings.Contains(out, "2 token(s)") {
		t.Errorf("expected token table, got %q", out)
	}
}

func TestQuit(t *testing.T) {
	_, cmd := newTestModel("").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowResize(t *testing.T) {
	updated, _ := newTestModel("").Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m := updated.(model)
	if m.viewport.Width != 94 {
		t.Errorf("expected viewport width 94, got %d", m.viewport.Width)
	}
	if m.input.Height()+m.viewport.Height != 28 {
		t.Errorf("expected panes to share 28 lines, got %d and %d", m.input.Height(), m.viewport.Height)
	}
	if !strings.Contains(m.View(), "MiniCheck") {
		t.Error("expected title in view")
	}
}

func TestEditDuringCheckQuotesCheckedSource(t *testing.T) {
	m := newTestModel("program\n  x = ;\nend_program")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(model)
	msg := cmd().(checkMsg)

	m.input.SetValue("program\n  yy = 1 + 2 + 3;\nend_program")
	updated, _ = m.Update(msg)
	m = updated.(model)

	view := m.viewport.View()
	if !strings.Contains(view, "   2 |   x = ;") {
		t.Errorf("expected the checked line to be quoted, got %q", view)
	}
	if !strings.Contains(view, "     |       ^") {
		t.Errorf("expected caret under column 7, got %q", view)
	}
	if strings.Contains(view, "yy = 1") {
		t.Errorf("quoted the edited text instead of the checked source: %q", view)
	}
}

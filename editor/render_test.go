package editor

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := newTestModel(sb.String(), true)
	m = m.SetSize(10, 121)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 121 {
		t.Fatalf("expected 121 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines[:120] {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(ansi.Strip(line), wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorCell(t *testing.T) {
	st := Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}

	cases := []struct {
		name string
		text string
		keys string
		want string
	}{
		{name: "first rune", text: "ab", want: " a b"},
		{name: "last rune", text: "ab", keys: "l", want: "a b "},
		{name: "past end in insert", text: "ab", keys: "la", want: "ab   "},
		{name: "empty line", text: "", want: "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(Config{Text: tc.text, Style: st, Logger: log.New(io.Discard, "", 0)})
			if tc.keys != "" {
				m, _ = press(m, runes(tc.keys))
			}
			if got := m.renderContent(); got != tc.want {
				t.Fatalf("render=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_CursorProducesANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Reverse(true)}
	m := New(Config{Text: "ab", Style: st, Logger: log.New(io.Discard, "", 0)})

	got := m.renderContent()
	want := st.Text.Render("") + st.Cursor.Render("a") + st.Text.Render("b")
	if got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequence in %q", got)
	}
}

func TestRender_ExpandsTabs(t *testing.T) {
	m := New(Config{Text: "x\n\ty", TabWidth: 4, Logger: log.New(io.Discard, "", 0)})
	lines := strings.Split(m.renderContent(), "\n")
	if got, want := lines[1], "    y"; got != want {
		t.Fatalf("line=%q, want %q", got, want)
	}

	m, _ = press(m, runes("j"))
	lines = strings.Split(m.renderContent(), "\n")
	if got, want := lines[1], "    y"; got != want {
		t.Fatalf("cursor on tab: line=%q, want %q", got, want)
	}
}

func TestRender_StatusLine(t *testing.T) {
	cases := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{name: "normal", want: "1,1"},
		{name: "insert", msgs: []tea.Msg{runes("a")}, want: "-- INSERT --" + strings.Repeat(" ", 6) + "1,2"},
		{name: "command", msgs: []tea.Msg{runes(":wq")}, want: ":wq" + strings.Repeat(" ", 15) + "1,1"},
		{
			name: "write status",
			msgs: []tea.Msg{runes(":w"), tea.KeyMsg{Type: tea.KeyEnter}},
			want: `"doc.txt" 1L, 2B written` + strings.Repeat(" ", 1) + "1,1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel("ab", false)
			m = m.SetSize(21, 2)
			m, _ = press(m, tc.msgs...)
			lines := viewLines(m)
			if got := strings.TrimLeft(lines[len(lines)-1], " "); got != tc.want {
				t.Fatalf("status=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_StatusShowsCellColumn(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{text: "\tx", want: "1,2-5"},
		{text: "テx", want: "1,2-3"},
		{text: "ax", want: "1,2"},
	}
	for _, tc := range cases {
		m := newTestModel(tc.text, false)
		m = m.SetSize(10, 2)
		m, _ = press(m, runes("l"))
		lines := viewLines(m)
		if got := strings.TrimLeft(lines[len(lines)-1], " "); got != tc.want {
			t.Fatalf("text %q: status=%q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestGutterDigits(t *testing.T) {
	cases := []struct{ n, want int }{{0, 1}, {1, 1}, {9, 1}, {10, 2}, {120, 3}}
	for _, tc := range cases {
		if got := gutterDigits(tc.n); got != tc.want {
			t.Fatalf("gutterDigits(%d)=%d, want %d", tc.n, got, tc.want)
		}
	}
}

package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// statusHeight is the number of rows reserved below the document.
const statusHeight = 1

// Model is a Bubble Tea component that renders a Session and feeds it key
// presses.
type Model struct {
	cfg  Config
	sess *Session

	viewport viewport.Model
	width    int

	lastVersion uint64
	lastCursor  Cursor
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		sess:     NewSession(cfg),
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.sess.Table().Version()
	m.lastCursor = m.sess.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Session() *Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. One row is taken by the status line.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < statusHeight {
		height = statusHeight
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - statusHeight

	m.rebuildContent()
	m.followCursorWithForce(true)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		for _, a := range m.cfg.KeyMap.Actions(msg) {
			out, err := m.sess.Handle(a)
			if err != nil {
				// Already logged by the session; the action was dropped.
				continue
			}
			if out.Quit {
				m.syncFromSession()
				return m, tea.Quit
			}
		}
		if m.syncFromSession() {
			m.followCursorWithForce(false)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus()
}

// syncFromSession rebuilds the viewport content when the document or cursor
// moved since the last render.
func (m *Model) syncFromSession() (changed bool) {
	ver := m.sess.Table().Version()
	cur := m.sess.Cursor()
	if ver == m.lastVersion && cur == m.lastCursor {
		return false
	}
	m.lastVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursorWithForce(force bool) {
	cur := m.sess.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if force && y > 0 && y+h > m.viewport.TotalLineCount() {
		y = max(m.viewport.TotalLineCount()-h, 0)
		m.viewport.SetYOffset(y)
	}
	if cur.Y < y {
		m.viewport.SetYOffset(cur.Y)
		return
	}
	if cur.Y >= y+h {
		m.viewport.SetYOffset(cur.Y - h + 1)
	}
}

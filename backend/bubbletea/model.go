package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newbpydev/tuifw/screen"
)

// renderMsg asks the model to repaint from the Backend's current grid; it
// carries no data of its own. Backend.Update sends one through the
// attached *tea.Program on every call.
type renderMsg struct{}

// model is the tea.Model that owns a Backend: every tea.Msg it receives is
// translated into a screen.Event and pushed onto the Backend, and its
// View renders the Backend's grid with Lip Gloss.
type model struct {
	backend *Backend
}

func newModel(b *Backend) *model { return &model{backend: b} }

// Init implements tea.Model.
func (m *model) Init() tea.Cmd { return nil }

// Update implements tea.Model: it never changes m itself (the Backend is
// the only mutable state), it only translates msg and, for renderMsg,
// triggers a redraw.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case renderMsg:
		// No-op: returning (m, nil) is enough for Bubble Tea to call
		// View() again with the Backend's latest grid contents.
	case tea.WindowSizeMsg:
		m.backend.resize(int16(msg.Width), int16(msg.Height))
		m.backend.push(screen.Event{Kind: screen.EventResize})
	case tea.KeyMsg:
		if ev, ok := translateKey(msg); ok {
			m.backend.push(ev)
		}
	case tea.MouseMsg:
		if ev, ok := translateMouse(msg); ok {
			m.backend.push(ev)
		}
	}
	return m, nil
}

// View implements tea.Model: it renders the Backend's grid, one styled
// line per row.
func (m *model) View() string {
	return renderGrid(m.backend)
}

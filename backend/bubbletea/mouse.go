package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newbpydev/tuifw/screen"
)

// translateMouse converts a Bubble Tea mouse message into the core's
// left-button-only mouse taxonomy (spec §6: "Lmb(down)/Lmb(up)"). Every
// other button and motion/wheel event has no slot in that taxonomy and is
// dropped.
func translateMouse(msg tea.MouseMsg) (screen.Event, bool) {
	if msg.Button != tea.MouseButtonLeft {
		return screen.Event{}, false
	}
	at := screen.Point{X: int16(msg.X), Y: int16(msg.Y)}
	switch msg.Action {
	case tea.MouseActionPress:
		return screen.Event{Kind: screen.EventLmbDown, At: at}, true
	case tea.MouseActionRelease:
		return screen.Event{Kind: screen.EventLmbUp, At: at}, true
	default:
		return screen.Event{}, false
	}
}

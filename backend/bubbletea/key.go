package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newbpydev/tuifw/screen"
)

// translateKey converts a Bubble Tea key message into the core's key
// taxonomy (spec §6). ok is false for key types this taxonomy has no slot
// for (reported keys beyond F12, and the rarer Ctrl combinations).
func translateKey(msg tea.KeyMsg) (screen.Event, bool) {
	rc := 1
	if k, ok := keyFromType(msg.Type); ok {
		if msg.Alt && k.Kind != screen.KeyAlt {
			k = screen.Alt(k.Char)
		}
		return screen.Event{Kind: screen.EventKey, Key: k, RepeatCount: rc}, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		r := msg.Runes[0]
		k := screen.Char(r)
		if msg.Alt {
			k = screen.Alt(r)
		}
		return screen.Event{Kind: screen.EventKey, Key: k, RepeatCount: rc}, true
	}
	return screen.Event{}, false
}

func keyFromType(t tea.KeyType) (screen.Key, bool) {
	switch t {
	case tea.KeyEnter:
		return screen.Key{Kind: screen.KeyEnter}, true
	case tea.KeyTab:
		return screen.Key{Kind: screen.KeyTab}, true
	case tea.KeyEsc:
		return screen.Key{Kind: screen.KeyEscape}, true
	case tea.KeyBackspace:
		return screen.Key{Kind: screen.KeyBackspace}, true
	case tea.KeyDelete:
		return screen.Key{Kind: screen.KeyDelete}, true
	case tea.KeyInsert:
		return screen.Key{Kind: screen.KeyInsert}, true
	case tea.KeyHome:
		return screen.Key{Kind: screen.KeyHome}, true
	case tea.KeyEnd:
		return screen.Key{Kind: screen.KeyEnd}, true
	case tea.KeyPgUp:
		return screen.Key{Kind: screen.KeyPageUp}, true
	case tea.KeyPgDown:
		return screen.Key{Kind: screen.KeyPageDown}, true
	case tea.KeyUp:
		return screen.Key{Kind: screen.KeyUp}, true
	case tea.KeyDown:
		return screen.Key{Kind: screen.KeyDown}, true
	case tea.KeyLeft:
		return screen.Key{Kind: screen.KeyLeft}, true
	case tea.KeyRight:
		return screen.Key{Kind: screen.KeyRight}, true
	case tea.KeySpace:
		return screen.Char(' '), true
	case tea.KeyF1:
		return screen.Key{Kind: screen.KeyF1}, true
	case tea.KeyF2:
		return screen.Key{Kind: screen.KeyF2}, true
	case tea.KeyF3:
		return screen.Key{Kind: screen.KeyF3}, true
	case tea.KeyF4:
		return screen.Key{Kind: screen.KeyF4}, true
	case tea.KeyF5:
		return screen.Key{Kind: screen.KeyF5}, true
	case tea.KeyF6:
		return screen.Key{Kind: screen.KeyF6}, true
	case tea.KeyF7:
		return screen.Key{Kind: screen.KeyF7}, true
	case tea.KeyF8:
		return screen.Key{Kind: screen.KeyF8}, true
	case tea.KeyF9:
		return screen.Key{Kind: screen.KeyF9}, true
	case tea.KeyF10:
		return screen.Key{Kind: screen.KeyF10}, true
	case tea.KeyF11:
		return screen.Key{Kind: screen.KeyF11}, true
	case tea.KeyF12:
		return screen.Key{Kind: screen.KeyF12}, true
	case tea.KeyCtrlAt:
		return screen.Ctrl('@'), true
	case tea.KeyCtrlBackslash:
		return screen.Ctrl('\\'), true
	case tea.KeyCtrlCloseBracket:
		return screen.Ctrl(']'), true
	case tea.KeyCtrlCaret:
		return screen.Ctrl('^'), true
	case tea.KeyCtrlUnderscore:
		return screen.Ctrl('_'), true
	case tea.KeyCtrlA:
		return screen.Ctrl('A'), true
	case tea.KeyCtrlB:
		return screen.Ctrl('B'), true
	case tea.KeyCtrlC:
		return screen.Ctrl('C'), true
	case tea.KeyCtrlD:
		return screen.Ctrl('D'), true
	case tea.KeyCtrlE:
		return screen.Ctrl('E'), true
	case tea.KeyCtrlF:
		return screen.Ctrl('F'), true
	case tea.KeyCtrlG:
		return screen.Ctrl('G'), true
	case tea.KeyCtrlH:
		return screen.Ctrl('H'), true
	case tea.KeyCtrlJ:
		return screen.Ctrl('J'), true
	case tea.KeyCtrlK:
		return screen.Ctrl('K'), true
	case tea.KeyCtrlL:
		return screen.Ctrl('L'), true
	case tea.KeyCtrlN:
		return screen.Ctrl('N'), true
	case tea.KeyCtrlO:
		return screen.Ctrl('O'), true
	case tea.KeyCtrlP:
		return screen.Ctrl('P'), true
	case tea.KeyCtrlQ:
		return screen.Ctrl('Q'), true
	case tea.KeyCtrlR:
		return screen.Ctrl('R'), true
	case tea.KeyCtrlS:
		return screen.Ctrl('S'), true
	case tea.KeyCtrlT:
		return screen.Ctrl('T'), true
	case tea.KeyCtrlU:
		return screen.Ctrl('U'), true
	case tea.KeyCtrlV:
		return screen.Ctrl('V'), true
	case tea.KeyCtrlW:
		return screen.Ctrl('W'), true
	case tea.KeyCtrlX:
		return screen.Ctrl('X'), true
	case tea.KeyCtrlY:
		return screen.Ctrl('Y'), true
	case tea.KeyCtrlZ:
		return screen.Ctrl('Z'), true
	default:
		return screen.Key{}, false
	}
}

package bubbletea

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newbpydev/tuifw/screen"
)

func TestTranslateMouseMapsLeftPressAndRelease(t *testing.T) {
	down, ok := translateMouse(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	require.True(t, ok)
	assert.Equal(t, screen.EventLmbDown, down.Kind)
	assert.Equal(t, screen.Point{X: 3, Y: 4}, down.At)

	up, ok := translateMouse(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	require.True(t, ok)
	assert.Equal(t, screen.EventLmbUp, up.Kind)
}

func TestTranslateMouseRejectsNonLeftButton(t *testing.T) {
	_, ok := translateMouse(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	assert.False(t, ok)
}

func TestTranslateMouseRejectsMotion(t *testing.T) {
	_, ok := translateMouse(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	assert.False(t, ok)
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMenuModel_SelectLogin(t *testing.T) {
	m := NewMenuModel()

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Equal(t, NavigateTo{Page: "login"}, execCmd(t, cmd))
}

func TestMenuModel_SelectRegister(t *testing.T) {
	m := NewMenuModel()

	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyDown))
	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Equal(t, 1, m.idx)
	assert.Equal(t, NavigateTo{Page: "register"}, execCmd(t, cmd))
}

func TestMenuModel_CursorStaysInBounds(t *testing.T) {
	m := NewMenuModel()

	m.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, 0, m.idx)

	m.Update(runes("j"))
	m.Update(runes("k"))
	assert.Equal(t, 0, m.idx)
}

func TestMenuModel_RegisterNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(RegisterSuccessNotice{Username: "reader"})

	assert.Contains(t, m.View(), "Account reader created")
}

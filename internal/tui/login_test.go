package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLoginModel(t *testing.T) (*LoginModel, *mock.MockClientAuthService) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewLoginModel(context.Background(), auth)
	m.Init()
	return m, auth
}

func TestLoginModel_RequiresFields(t *testing.T) {
	m, _ := newLoginModel(t)
	typeInto(t, m, "reader")

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Login and password are required")
}

func TestLoginModel_Submit(t *testing.T) {
	m, auth := newLoginModel(t)
	typeInto(t, m, " reader ")
	m.Update(keyMsg(tea.KeyTab))
	typeInto(t, m, "secret")

	auth.EXPECT().
		Login(gomock.Any(), models.User{Login: "reader", Password: "secret"}).
		Return(nil)

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	assert.True(t, m.submitting)

	// a second enter while the request runs is ignored
	_, again := m.Update(keyMsg(tea.KeyEnter))
	assert.Nil(t, again)

	assert.Equal(t, LoginResult{Username: "reader"}, execCmd(t, cmd))
}

func TestLoginModel_ShowsError(t *testing.T) {
	m, _ := newLoginModel(t)
	m.submitting = true

	m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Wrong login or password")
}

func TestLoginModel_BackTabWraps(t *testing.T) {
	m, _ := newLoginModel(t)

	m.Update(keyMsg(tea.KeyShiftTab))

	assert.Equal(t, 1, m.focus)
	assert.True(t, m.inputs[1].Focused())
	assert.False(t, m.inputs[0].Focused())
}

func TestLoginModel_EscGoesBack(t *testing.T) {
	m, _ := newLoginModel(t)
	m.errMsg = "old"

	_, cmd := m.Update(keyMsg(tea.KeyEsc))

	assert.Empty(t, m.errMsg)
	assert.Equal(t, NavigateTo{Page: "menu"}, execCmd(t, cmd))
}

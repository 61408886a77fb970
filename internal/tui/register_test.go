package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fillRegisterForm(t *testing.T, m *RegisterModel, values ...string) {
	t.Helper()
	for i, v := range values {
		if i > 0 {
			m.Update(keyMsg(tea.KeyTab))
		}
		typeInto(t, m, v)
	}
}

func newRegisterModel(t *testing.T) (*RegisterModel, *mock.MockClientAuthService) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	m := NewRegisterModel(context.Background(), auth)
	m.Init()
	return m, auth
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	m, _ := newRegisterModel(t)
	fillRegisterForm(t, m, "Ann", "ann", "secret1", "secret2")

	_, cmd := m.Update(keyMsg(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Passwords do not match")
}

func TestRegisterModel_Submit(t *testing.T) {
	m, auth := newRegisterModel(t)
	fillRegisterForm(t, m, "Ann", "ann", "secret", "secret")

	auth.EXPECT().
		Register(gomock.Any(), models.User{Name: "Ann", Login: "ann", Password: "secret"}).
		Return(nil)

	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	result := execCmd(t, cmd)
	assert.Equal(t, RegisterResult{Username: "ann"}, result)

	_, cmd = m.Update(result)
	assert.Equal(t,
		NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: "ann"}},
		execCmd(t, cmd))

	for _, in := range m.inputs {
		assert.Empty(t, in.Value())
	}
	assert.Equal(t, 0, m.focus)
}

func TestRegisterModel_LoginTaken(t *testing.T) {
	m, _ := newRegisterModel(t)
	m.submitting = true

	_, cmd := m.Update(RegisterResult{Err: store.ErrLoginAlreadyExists, Username: "ann"})

	require.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "This login is already taken")
}

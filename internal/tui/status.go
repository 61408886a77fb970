package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusRefreshInterval = time.Second
	statusNoticeTTL       = 3 * time.Second
	maxListedBooks        = 10

	themeLight = "light"
	themeDark  = "dark"
)

// StatusModel is the main screen of a signed-in client. It shows the sync
// status and the shelf, and lets the user force a push, add books and
// switch the theme.
type StatusModel struct {
	ctx   context.Context
	sync  service.ClientSyncService
	state store.LocalStateStore

	copyToClipboard func(string) error

	spinner  spinner.Model
	status   models.SyncStatus
	form     *BookFormModel
	notice   string
	errMsg   string
	pushing  bool
	logout   bool
	quitting bool
}

func NewStatusModel(ctx context.Context, sync service.ClientSyncService, state store.LocalStateStore) *StatusModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &StatusModel{
		ctx:             ctx,
		sync:            sync,
		state:           state,
		copyToClipboard: clipboard.WriteAll,
		spinner:         sp,
		status:          sync.GetSyncStatus(),
	}
}

func (m *StatusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickStatus())
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		m.status = m.sync.GetSyncStatus()
		return m, tickStatus()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case syncDoneMsg:
		m.pushing = false
		m.status = m.sync.GetSyncStatus()
		if msg.ok {
			return m, m.flash("Synced")
		}
		m.errMsg = "Sync did not complete, it will be retried"
		return m, nil

	case bookSavedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form = nil
		m.status = m.sync.GetSyncStatus()
		return m, m.flash("Added " + msg.title)

	case themeChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.flash("Theme: " + msg.theme)

	case clearStatusMsg:
		m.notice = ""
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.sync):
		if m.pushing || !m.status.IsConfigured {
			return m, nil
		}
		m.pushing = true
		return m, m.cmdForceSync()
	case key.Matches(keyMsg, keys.copy):
		id := m.sync.DeviceID()
		if id == "" {
			return m, nil
		}
		if err := m.copyToClipboard(id); err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		return m, m.flash("Device id copied")
	case key.Matches(keyMsg, keys.newBook):
		m.form = NewBookFormModel()
		return m, m.form.Init()
	case key.Matches(keyMsg, keys.theme):
		return m, m.cmdToggleTheme()
	}

	return m, nil
}

func (m *StatusModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.form = nil
		return m, nil
	}

	book, submitted, cmd := m.form.Update(msg)
	if !submitted {
		return m, cmd
	}
	return m, m.cmdSaveBook(book)
}

func (m *StatusModel) View() string {
	if m.form != nil {
		return m.form.View(m.errMsg)
	}

	var b strings.Builder

	syncState := "idle"
	switch {
	case !m.status.IsConfigured:
		syncState = "offline mode"
	case m.pushing || m.status.IsSyncing:
		syncState = m.spinner.View() + " syncing"
	}

	deviceID := m.sync.DeviceID()
	if deviceID == "" {
		deviceID = "-"
	}

	b.WriteString(fmt.Sprintf("Sync       │ %s\n", syncState))
	b.WriteString(fmt.Sprintf("Last sync  │ %s\n", formatSyncTime(m.status.LastSyncTimestamp)))
	b.WriteString(fmt.Sprintf("Version    │ %d\n", m.status.Version))
	b.WriteString(fmt.Sprintf("Device     │ %s\n", deviceID))
	b.WriteString(fmt.Sprintf("Theme      │ %s\n", currentTheme(m.state)))

	data := m.state.CurrentState()
	b.WriteString(fmt.Sprintf("\nBooks %d │ Friends %d │ Groups %d │ Activities %d │ Requests %d\n",
		len(data.Books), len(data.Friends), len(data.Groups), len(data.Activities), len(data.FriendRequests)))

	if len(data.Books) > 0 {
		b.WriteString("\n")
		for i, book := range data.Books {
			if i == maxListedBooks {
				b.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Books)-maxListedBooks))
				break
			}
			b.WriteString(fmt.Sprintf("  %-32s %-20s %s\n", fitText(book.Title, 32), fitText(book.Author, 20), book.Status))
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + okStyle.Render("OK: "+m.notice) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("SHELF", strings.TrimRight(b.String(), "\n"),
		"s: sync now │ a: add book │ c: copy device id │ t: theme │ l: logout │ q: quit")
}

func (m *StatusModel) flash(notice string) tea.Cmd {
	m.notice = notice
	return tea.Tick(statusNoticeTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *StatusModel) cmdForceSync() tea.Cmd {
	ctx := m.ctx
	sync := m.sync

	return func() tea.Msg {
		return syncDoneMsg{ok: sync.ForceSyncNow(ctx)}
	}
}

func (m *StatusModel) cmdSaveBook(book models.Book) tea.Cmd {
	ctx := m.ctx
	state := m.state

	return func() tea.Msg {
		return bookSavedMsg{title: book.Title, err: state.SaveBook(ctx, book)}
	}
}

func (m *StatusModel) cmdToggleTheme() tea.Cmd {
	ctx := m.ctx
	state := m.state

	next := themeDark
	if currentTheme(state) == themeDark {
		next = themeLight
	}

	return func() tea.Msg {
		return themeChangedMsg{theme: next, err: state.SetTheme(ctx, next)}
	}
}

func currentTheme(state store.LocalStateStore) string {
	if theme := state.Theme(); theme != "" {
		return theme
	}
	return themeLight
}

func tickStatus() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
}

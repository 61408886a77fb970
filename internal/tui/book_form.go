package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/shelfsync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// BookFormModel collects a new shelf entry. It is embedded in
// [StatusModel] rather than routed as a page.
type BookFormModel struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

func NewBookFormModel() *BookFormModel {
	return &BookFormModel{
		inputs: []textinput.Model{
			newTextInput("title", 200, false),
			newTextInput("author", 120, false),
			newTextInput("total pages", 6, false),
		},
	}
}

func (f *BookFormModel) Init() tea.Cmd {
	f.inputs[f.focus].Focus()
	return textinput.Blink
}

// Update returns the book and true once the form was submitted with valid
// values.
func (f *BookFormModel) Update(msg tea.Msg) (models.Book, bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			f.focus = moveFocus(f.inputs, f.focus, 1)
			return models.Book{}, false, nil
		case key.Matches(keyMsg, keys.backtab):
			f.focus = moveFocus(f.inputs, f.focus, -1)
			return models.Book{}, false, nil
		case key.Matches(keyMsg, keys.enter):
			book, err := f.book()
			if err != "" {
				f.errMsg = err
				return models.Book{}, false, nil
			}
			f.errMsg = ""
			return book, true, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return models.Book{}, false, cmd
}

func (f *BookFormModel) View(saveErr string) string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────\n")
	b.WriteString("Title       │ [" + f.inputs[0].View() + "]\n")
	b.WriteString("Author      │ [" + f.inputs[1].View() + "]\n")
	b.WriteString("Total pages │ [" + f.inputs[2].View() + "]\n")

	errMsg := f.errMsg
	if errMsg == "" {
		errMsg = saveErr
	}
	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+errMsg) + "\n")
	}

	return renderPage("ADD BOOK", strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (f *BookFormModel) book() (models.Book, string) {
	title := strings.TrimSpace(f.inputs[0].Value())
	if title == "" {
		return models.Book{}, "Title is required"
	}

	pages := 0
	if raw := strings.TrimSpace(f.inputs[2].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.Book{}, "Total pages must be a non-negative number"
		}
		pages = n
	}

	return models.Book{
		ID:         uuid.NewString(),
		Title:      title,
		Author:     strings.TrimSpace(f.inputs[1].Value()),
		TotalPages: pages,
		Status:     models.BookWantToRead,
		AddedAt:    time.Now().UnixMilli(),
	}, ""
}

package tui

// NavigateTo asks [RootModel] to switch pages. Payload, when set, is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page once the server answered.
type LoginResult struct {
	Err      error
	Username string
}

// RegisterResult is produced by the register page once the server answered.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown by the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type syncDoneMsg struct {
	ok bool
}

type bookSavedMsg struct {
	title string
	err   error
}

type themeChangedMsg struct {
	theme string
	err   error
}

type statusTickMsg struct{}

type clearStatusMsg struct{}

package views

import "vanta/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Navigation messages handled by the app

// SwitchToProjectsMsg shows the project catalog
type SwitchToProjectsMsg struct{}

// SwitchToSearchMsg shows the search page
type SwitchToSearchMsg struct{}

// SwitchToBoardMsg shows the vision board of a project. An empty ProjectID
// opens the first project's board.
type SwitchToBoardMsg struct {
	ProjectID string
}

// SwitchToCreateMsg opens the project creation form
type SwitchToCreateMsg struct{}

// SwitchToHelpMsg shows the key reference
type SwitchToHelpMsg struct{}

// ProjectCreatedMsg is sent after the form handed a draft to the catalog
type ProjectCreatedMsg struct {
	Project domain.Project
}

// CreateErrMsg reports a failed creation
type CreateErrMsg struct {
	Err error
}

// TextCapturer is implemented by views that can hold keyboard focus in a
// text field. While Capturing is true the app leaves printable keys alone.
type TextCapturer interface {
	Capturing() bool
}

package tui

import (
	"strings"

	"github.com/MKhiriev/docker-lab/internal/display"
	"github.com/MKhiriev/docker-lab/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LabModel renders the lab page in the terminal:
// 1) enter/space or a left mouse click press the counter control
// 2) v toggles the build info window, esc closes it
// 3) q/ctrl+c quit
type LabModel struct {
	display   *display.Display
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewLabModel wraps d. The model never replaces d, so its counter lives as
// long as the program.
func NewLabModel(d *display.Display, buildInfo models.AppBuildInfo) LabModel {
	return LabModel{
		display:   d,
		buildInfo: buildInfo,
	}
}

func (m LabModel) Init() tea.Cmd {
	return nil
}

func (m LabModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case key.Matches(msg, keys.esc):
			m.showBuildInfo = false
			return m, nil
		}

		if m.showBuildInfo {
			return m, nil
		}

		if key.Matches(msg, keys.click) {
			m.display.Click()
		}
	case tea.MouseMsg:
		if m.showBuildInfo {
			return m, nil
		}
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.display.Click()
		}
	}

	return m, nil
}

func (m LabModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	view := m.display.Render()

	var b strings.Builder
	b.WriteString(view.Heading)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(display.RuntimeLabel))
	b.WriteString(" ")
	b.WriteString(view.RuntimeValue)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(display.BuildLabel))
	b.WriteString(" ")
	b.WriteString(view.BuildValue)
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render(view.ButtonLabel()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(display.Hint))

	return renderPage(view.Title, b.String(), "enter/space/click: count │ v: build info")
}

// Count returns the counter value of the wrapped component.
func (m LabModel) Count() int {
	return m.display.Count()
}

// QuitByUser reports whether the program ended on a quit key.
func (m LabModel) QuitByUser() bool {
	return m.quitByUser
}

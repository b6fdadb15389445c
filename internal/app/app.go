package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
	"github.com/yichen/quizdrill/internal/router"
	"github.com/yichen/quizdrill/internal/screen"
	"github.com/yichen/quizdrill/internal/screens/picker"
	"github.com/yichen/quizdrill/internal/ui/layout"
)

// Options carries the app's dependencies.
type Options struct {
	Bank   *bank.Bank
	Config config.Config
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model. It owns the screen stack and
// the long-lived session state; screens mutate the state through the
// quiz transition functions.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the model with the picker as the root screen.
func newAppModel(opts Options) AppModel {
	state := quiz.NewSessionState(opts.Config.QuestionCap)
	root := picker.New(opts.Bank, state, opts.Config, opts.Logger)
	return AppModel{
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Quit is the only global key; everything else, esc included,
		// belongs to the active screen.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

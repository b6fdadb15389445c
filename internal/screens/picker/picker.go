package picker

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
	"github.com/yichen/quizdrill/internal/router"
	"github.com/yichen/quizdrill/internal/screen"
	"github.com/yichen/quizdrill/internal/screens/attempt"
	"github.com/yichen/quizdrill/internal/ui/components"
	"github.com/yichen/quizdrill/internal/ui/layout"
	"github.com/yichen/quizdrill/internal/ui/theme"
)

// PickerScreen is the chapter selection screen and the root of the
// screen stack. It owns nothing but the checkbox UI; the session state
// lives for the whole program and is passed down to the attempt screen.
type PickerScreen struct {
	bank   *bank.Bank
	state  *quiz.SessionState
	cfg    config.Config
	logger *zap.Logger

	list   components.Checklist
	errMsg string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)
var _ screen.StatusProvider = (*PickerScreen)(nil)

// New creates the picker over the loaded bank.
func New(b *bank.Bank, state *quiz.SessionState, cfg config.Config, logger *zap.Logger) *PickerScreen {
	items := make([]components.ChecklistItem, 0, len(b.Chapters()))
	for _, c := range b.Chapters() {
		items = append(items, components.ChecklistItem{Label: c, Count: b.Count(c)})
	}
	return &PickerScreen{
		bank:   b,
		state:  state,
		cfg:    cfg,
		logger: logger,
		list:   components.NewChecklist(items),
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Select Chapters"
}

func (p *PickerScreen) Status() string {
	return fmt.Sprintf("%d questions", p.bank.Len())
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A/X", Description: "All/None"},
		{Key: "S", Description: "Single-chapter mode"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "a":
		p.list.CheckAll(true)
		p.errMsg = ""
		return p, nil
	case "x":
		p.list.CheckAll(false)
		p.errMsg = ""
		return p, nil
	case "s":
		p.list.SetSingle(!p.list.Single)
		p.errMsg = ""
		return p, nil
	case "enter":
		return p, p.start()
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// start validates the selection and launches an attempt. Validation
// errors are shown inline; the selection stays as it was.
func (p *PickerScreen) start() tea.Cmd {
	chapters := p.list.CheckedLabels()
	if err := quiz.Start(p.state, p.bank, chapters, p.list.Single, nil); err != nil {
		var verr *quiz.ValidationError
		if errors.As(err, &verr) {
			p.errMsg = verr.Reason
			return nil
		}
		// Sampler failure after validation: internal inconsistency.
		p.errMsg = err.Error()
		p.logger.Error("start failed", zap.Error(err))
		return nil
	}

	p.errMsg = ""
	p.logger.Debug("attempt started",
		zap.String("attempt_id", p.state.AttemptID),
		zap.Strings("chapters", chapters),
		zap.Bool("single_chapter", p.list.Single),
		zap.Int("questions", p.state.TotalQuestions()),
	)

	next := attempt.New(p.bank, p.state, p.cfg, p.logger)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Pick your chapters"))
	b.WriteString("\n")

	mode := "random subset, up to " + fmt.Sprint(p.state.QuestionCap) + " questions"
	if p.list.Single {
		mode = "single chapter, every question"
	}
	b.WriteString(theme.Subtitle.Width(width).Render(mode))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.list.View()))
	b.WriteString("\n")

	selected := p.bank.CountAll(p.list.CheckedLabels())
	target := quiz.TargetCount(p.bank, p.list.CheckedLabels(), p.list.Single, p.state.QuestionCap)
	info := fmt.Sprintf("%d questions available — attempt size %d", selected, target)
	if selected == 0 {
		info = "nothing selected yet"
	}
	b.WriteString(theme.Subtitle.Width(width).Render(info))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.errMsg))
	}

	return b.String()
}

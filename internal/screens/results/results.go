package results

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
	"github.com/yichen/quizdrill/internal/router"
	"github.com/yichen/quizdrill/internal/screen"
	"github.com/yichen/quizdrill/internal/ui/components"
	"github.com/yichen/quizdrill/internal/ui/layout"
)

// Tab indexes, in display order.
const (
	tabWrong = iota
	tabCorrect
	tabAll
)

// ResultsScreen shows the graded attempt: score, categorized review
// tabs, and the restart / back-to-selection actions. The Result it
// renders is independent of the session state, so restarting underneath
// it does not disturb the review until the screen is left.
type ResultsScreen struct {
	bank   *bank.Bank
	state  *quiz.SessionState
	result *quiz.Result
	cfg    config.Config
	logger *zap.Logger

	tabs         components.Tabs
	scrollOffset int
	errMsg       string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates the results screen for a graded attempt.
func New(b *bank.Bank, state *quiz.SessionState, result *quiz.Result, cfg config.Config, logger *zap.Logger) *ResultsScreen {
	return &ResultsScreen{
		bank:   b,
		state:  state,
		result: result,
		cfg:    cfg,
		logger: logger,
		tabs: components.NewTabs(
			fmt.Sprintf("Wrong (%d)", result.Wrong+result.Unanswered),
			fmt.Sprintf("Correct (%d)", result.Correct),
			fmt.Sprintf("All (%d)", len(result.Entries)),
		),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("score %.1f", s.result.ScorePercent)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Switch view"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retry"},
		{Key: "B", Description: "Chapter select"},
	}
}

// visibleEntries returns the entries of the active tab, question order
// preserved. The wrong tab is the mistake review, so unanswered
// questions belong there too.
func (s *ResultsScreen) visibleEntries() []quiz.ResultEntry {
	switch s.tabs.Active {
	case tabWrong:
		var out []quiz.ResultEntry
		for _, e := range s.result.Entries {
			if e.Status != quiz.StatusCorrect {
				out = append(out, e)
			}
		}
		return out
	case tabCorrect:
		return s.result.Filter(quiz.StatusCorrect)
	default:
		return s.result.Entries
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		s.tabs.Prev()
		s.scrollOffset = 0
	case "right", "l", "tab":
		s.tabs.Next()
		s.scrollOffset = 0
	case "1":
		s.tabs.Select(tabWrong)
		s.scrollOffset = 0
	case "2":
		s.tabs.Select(tabCorrect)
		s.scrollOffset = 0
	case "3":
		s.tabs.Select(tabAll)
		s.scrollOffset = 0
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		if s.scrollOffset < len(s.visibleEntries())-1 {
			s.scrollOffset++
		}
	case "r":
		return s, s.restart()
	case "b", "esc":
		return s, s.backToSelect()
	}

	return s, nil
}

// restart re-samples the retained chapter selection and pops back to
// the attempt screen, which rebuilds its view on the RestartedEvent.
// Without a retained selection the whole stack unwinds to the picker.
func (s *ResultsScreen) restart() tea.Cmd {
	resumed, err := quiz.Restart(s.state, s.bank, nil)
	if err != nil {
		s.errMsg = err.Error()
		s.logger.Error("restart failed", zap.Error(err))
		return nil
	}
	if !resumed {
		return func() tea.Msg { return router.PopToRootMsg{} }
	}

	s.logger.Debug("attempt restarted",
		zap.String("attempt_id", s.state.AttemptID),
		zap.Int("questions", s.state.TotalQuestions()),
	)
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		func() tea.Msg { return quiz.RestartedEvent{} },
	)
}

func (s *ResultsScreen) backToSelect() tea.Cmd {
	quiz.BackToSelect(s.state)
	return func() tea.Msg { return router.PopToRootMsg{} }
}

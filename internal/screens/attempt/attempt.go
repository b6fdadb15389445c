package attempt

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
	"github.com/yichen/quizdrill/internal/router"
	"github.com/yichen/quizdrill/internal/screen"
	"github.com/yichen/quizdrill/internal/screens/results"
	"github.com/yichen/quizdrill/internal/ui/components"
	"github.com/yichen/quizdrill/internal/ui/layout"
)

// AttemptScreen serves the sampled questions one at a time: answer
// locking, instant feedback, auto-advance on correct answers, marking,
// navigation, and the submit confirmation.
type AttemptScreen struct {
	bank   *bank.Bank
	state  *quiz.SessionState
	cfg    config.Config
	logger *zap.Logger

	options  components.OptionList
	feedback *quiz.Feedback
	notice   string
	markErr  string

	confirmSubmit bool
	confirmAbort  bool

	jumpActive bool
	jump       components.TextInput
}

var _ screen.Screen = (*AttemptScreen)(nil)
var _ screen.KeyHintProvider = (*AttemptScreen)(nil)
var _ screen.StatusProvider = (*AttemptScreen)(nil)

// New creates the attempt screen over an already-started session.
func New(b *bank.Bank, state *quiz.SessionState, cfg config.Config, logger *zap.Logger) *AttemptScreen {
	s := &AttemptScreen{
		bank:   b,
		state:  state,
		cfg:    cfg,
		logger: logger,
	}
	s.loadQuestion()
	return s
}

func (s *AttemptScreen) Init() tea.Cmd {
	return nil
}

func (s *AttemptScreen) Title() string {
	return "Quiz"
}

func (s *AttemptScreen) Status() string {
	return fmt.Sprintf("answered %d/%d", s.state.AnsweredCount(), s.state.TotalQuestions())
}

func (s *AttemptScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmSubmit, s.confirmAbort:
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	case s.jumpActive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	case s.feedback != nil && !s.feedback.Correct:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "←", Description: "Previous"},
		}
	default:
		return []layout.KeyHint{
			{Key: "A-H/Enter", Description: "Answer"},
			{Key: "←→", Description: "Navigate"},
			{Key: "M", Description: "Mark"},
			{Key: "G", Description: "Go to"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Abort"},
		}
	}
}

// loadQuestion rebuilds the option list for the current question and
// clears per-question display state. Called on entry and after every
// navigation.
func (s *AttemptScreen) loadQuestion() {
	s.feedback = nil
	s.notice = ""
	s.markErr = ""
	s.jumpActive = false

	q := s.state.Current()
	if q == nil {
		s.options = components.OptionList{}
		return
	}
	s.options = components.NewOptionList(q.Options)
	if letter, ok := s.state.Answers[s.state.CurrentIndex]; ok {
		// Show the earlier choice, but leave the list unlocked so the
		// user can change their mind after navigating back.
		s.options.ChosenLetter = letter
		if i := s.options.IndexOfLetter(letter); i >= 0 {
			s.options.Cursor = i
		}
	}
}

func (s *AttemptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autoAdvanceMsg:
		return s.handleAutoAdvance(msg)

	case quiz.RestartedEvent:
		// The results screen re-sampled and popped back to us.
		s.confirmSubmit = false
		s.confirmAbort = false
		s.loadQuestion()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *AttemptScreen) handleAutoAdvance(msg autoAdvanceMsg) (screen.Screen, tea.Cmd) {
	// Stale token: the user navigated (or submitted) before the delay
	// elapsed, so this advance was revoked.
	if msg.seq != s.state.AdvanceSeq || s.state.Phase != quiz.PhaseAnswering {
		return s, nil
	}
	// Hold position while a dialog is open.
	if s.confirmSubmit || s.confirmAbort || s.jumpActive {
		return s, nil
	}
	if s.feedback == nil || !s.feedback.Correct {
		return s, nil
	}
	s.advance(+1)
	return s, nil
}

func (s *AttemptScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmAbort {
		switch key {
		case "y", "Y":
			s.confirmAbort = false
			quiz.BackToSelect(s.state)
			s.logger.Debug("attempt aborted", zap.String("attempt_id", s.state.AttemptID))
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "n", "N", "esc":
			s.confirmAbort = false
		}
		return s, nil
	}

	if s.confirmSubmit {
		switch key {
		case "y", "Y":
			s.confirmSubmit = false
			return s, s.submit()
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	if s.jumpActive {
		switch key {
		case "enter":
			if n, err := s.jump.NumericValue(); err == nil {
				if quiz.Goto(s.state, n-1) == quiz.Advanced {
					s.loadQuestion()
					return s, nil
				}
			}
			s.jumpActive = false
			return s, nil
		case "esc":
			s.jumpActive = false
			return s, nil
		}
		var cmd tea.Cmd
		s.jump, cmd = s.jump.Update(msg)
		return s, cmd
	}

	if s.feedback != nil {
		return s.handleFeedbackKey(key)
	}

	switch key {
	case "enter":
		return s, s.selectLetter(s.options.CursorLetter())
	case "right", "l", "n":
		// An option claiming the letter wins over the navigation alias.
		if cmd, ok := s.selectByKey(key); ok {
			return s, cmd
		}
		s.advance(+1)
		return s, nil
	case "left", "h", "p":
		if cmd, ok := s.selectByKey(key); ok {
			return s, cmd
		}
		s.advance(-1)
		return s, nil
	case "m":
		s.toggleMark()
		return s, nil
	case "g":
		s.jumpActive = true
		s.jump = components.NewTextInput(fmt.Sprintf("1-%d", s.state.TotalQuestions()), true, 3)
		return s, s.jump.Init()
	case "s":
		s.confirmSubmit = true
		return s, nil
	case "esc":
		s.confirmAbort = true
		return s, nil
	}

	// Single letters select the matching option directly.
	if cmd, ok := s.selectByKey(key); ok {
		return s, cmd
	}
	if len(key) == 1 && key[0] >= 'a' && key[0] <= 'z' {
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// selectByKey answers with the option carrying the pressed letter, if
// the current question has one. Reports false when the key is not a
// single letter or no option claims it.
func (s *AttemptScreen) selectByKey(key string) (tea.Cmd, bool) {
	if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
		return nil, false
	}
	letter := strings.ToUpper(key)
	if s.options.IndexOfLetter(letter) < 0 {
		return nil, false
	}
	return s.selectLetter(letter), true
}

// handleFeedbackKey runs while the answer verdict is on screen. A wrong
// answer keeps the verdict up until the user explicitly moves on; a
// correct one is usually gone before any key lands (auto-advance).
func (s *AttemptScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter", "space", " ", "right", "l", "n":
		if s.feedback.Correct && s.feedback.LastQuestion {
			s.confirmSubmit = true
			return s, nil
		}
		s.advance(+1)
		return s, nil
	case "left", "h", "p":
		s.advance(-1)
		return s, nil
	case "s":
		s.confirmSubmit = true
		return s, nil
	case "m":
		s.toggleMark()
		return s, nil
	case "esc":
		s.confirmAbort = true
		return s, nil
	}
	return s, nil
}

// selectLetter records the answer and schedules the auto-advance when
// it applies. Locked questions ignore the press entirely.
func (s *AttemptScreen) selectLetter(letter string) tea.Cmd {
	if letter == "" {
		return nil
	}
	fb := quiz.SelectOption(s.state, letter)
	if fb == nil {
		return nil
	}

	if i := s.options.IndexOfLetter(letter); i >= 0 {
		s.options.Cursor = i
	}
	s.options.Locked = true
	s.options.ChosenLetter = letter
	s.options.CorrectLetters = fb.CorrectLetters
	s.feedback = fb
	s.markErr = ""

	s.logger.Debug("answer recorded",
		zap.String("attempt_id", s.state.AttemptID),
		zap.Int("index", s.state.CurrentIndex),
		zap.String("letter", letter),
		zap.Bool("correct", fb.Correct),
	)

	if fb.Correct && !fb.LastQuestion {
		seq := s.state.AdvanceSeq
		return tea.Tick(s.cfg.AutoAdvanceDelay, func(time.Time) tea.Msg {
			return autoAdvanceMsg{seq: seq}
		})
	}
	return nil
}

// advance executes a navigation step and refreshes the question view.
func (s *AttemptScreen) advance(delta int) {
	switch quiz.Advance(s.state, delta) {
	case quiz.Advanced:
		s.loadQuestion()
	case quiz.AtEnd:
		s.loadQuestion()
		s.notice = "End of quiz — press S to submit"
	case quiz.AtStart:
		s.loadQuestion()
	}
}

func (s *AttemptScreen) toggleMark() {
	if err := quiz.ToggleMark(s.state); err != nil {
		s.markErr = err.Error()
		return
	}
	s.markErr = ""
}

// submit grades the attempt and pushes the results screen.
func (s *AttemptScreen) submit() tea.Cmd {
	result := quiz.Submit(s.state)
	s.logger.Debug("attempt submitted",
		zap.String("attempt_id", s.state.AttemptID),
		zap.Float64("score", result.ScorePercent),
		zap.Int("correct", result.Correct),
		zap.Int("wrong", result.Wrong),
		zap.Int("unanswered", result.Unanswered),
	)

	next := results.New(s.bank, s.state, result, s.cfg, s.logger)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

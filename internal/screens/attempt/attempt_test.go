package attempt

import (
	"fmt"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// uniformBank builds a bank of n interchangeable questions so tests do
// not depend on the sampled order.
func uniformBank(t *testing.T, n int) *bank.Bank {
	t.Helper()
	questions := make([]bank.Question, n)
	for i := range questions {
		questions[i] = bank.Question{
			Chapter: "Memory",
			Text:    fmt.Sprintf("question %d", i),
			Options: []string{"A. yes", "B. no"},
			Answer:  "A",
		}
	}
	b, err := bank.New(questions)
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	return b
}

func startedScreen(t *testing.T, b *bank.Bank) (*AttemptScreen, *quiz.SessionState) {
	t.Helper()
	state := quiz.NewSessionState(40)
	rng := rand.New(rand.NewPCG(11, 11))
	if err := quiz.Start(state, b, b.Chapters(), false, rng); err != nil {
		t.Fatalf("quiz.Start: %v", err)
	}
	return New(b, state, config.Default(), zap.NewNop()), state
}

func TestAutoAdvanceOnCorrectAnswer(t *testing.T) {
	s, state := startedScreen(t, uniformBank(t, 4))

	_, cmd := s.Update(keyPress('a'))
	if cmd == nil {
		t.Fatal("a correct answer should schedule the auto-advance timer")
	}
	if s.feedback == nil || !s.feedback.Correct {
		t.Fatal("expected correct feedback on screen")
	}

	s.Update(autoAdvanceMsg{seq: state.AdvanceSeq})
	if state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1 after the timer fires", state.CurrentIndex)
	}
	if s.feedback != nil {
		t.Error("advancing should clear the feedback banner")
	}
}

func TestAutoAdvanceStaleTokenDiscarded(t *testing.T) {
	s, state := startedScreen(t, uniformBank(t, 4))

	seq := state.AdvanceSeq
	if _, cmd := s.Update(keyPress('a')); cmd == nil {
		t.Fatal("a correct answer should schedule the auto-advance timer")
	}

	// The user moves on before the delay elapses; the pending timer
	// still carries the old token.
	s.Update(keyPress('n'))
	if state.CurrentIndex != 1 {
		t.Fatalf("CurrentIndex = %d, want 1 after manual advance", state.CurrentIndex)
	}

	s.Update(autoAdvanceMsg{seq: seq})
	if state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, stale timer must not advance again", state.CurrentIndex)
	}
}

func TestAutoAdvanceHeldByDialog(t *testing.T) {
	s, state := startedScreen(t, uniformBank(t, 4))

	s.Update(keyPress('a'))
	s.Update(keyPress('s')) // submit dialog over the feedback
	if !s.confirmSubmit {
		t.Fatal("expected the submit confirmation to open")
	}

	s.Update(autoAdvanceMsg{seq: state.AdvanceSeq})
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, timer must hold while a dialog is open", state.CurrentIndex)
	}
}

func TestNoAutoAdvanceOnWrongAnswer(t *testing.T) {
	s, state := startedScreen(t, uniformBank(t, 4))

	_, cmd := s.Update(keyPress('b'))
	if cmd != nil {
		t.Error("a wrong answer must not schedule the auto-advance timer")
	}
	if s.feedback == nil || s.feedback.Correct {
		t.Fatal("expected wrong feedback on screen")
	}

	s.Update(autoAdvanceMsg{seq: state.AdvanceSeq})
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, wrong-answer feedback waits for the user", state.CurrentIndex)
	}
}

func TestLetterWinsOverNavigationAlias(t *testing.T) {
	b, err := bank.New([]bank.Question{{
		Chapter: "Memory",
		Text:    "pick a letter",
		Options: []string{"A. alpha", "H. eta", "L. lambda", "N. nu", "P. pi"},
		Answer:  "L",
	}})
	if err != nil {
		t.Fatalf("bank.New: %v", err)
	}
	s, state := startedScreen(t, b)

	s.Update(keyPress('l'))
	if state.Answers[0] != "L" {
		t.Errorf("Answers[0] = %q, want option L selected, not navigation", state.Answers[0])
	}
	if s.feedback == nil || !s.feedback.Correct {
		t.Error("expected correct feedback for option L")
	}
}

func TestNavigationAliasWithoutMatchingOption(t *testing.T) {
	s, state := startedScreen(t, uniformBank(t, 4))

	// No option is labeled N, so 'n' stays a navigation alias.
	s.Update(keyPress('n'))
	if state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1 after 'n'", state.CurrentIndex)
	}
	s.Update(keyPress('h'))
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0 after 'h'", state.CurrentIndex)
	}
	if _, answered := state.Answers[0]; answered {
		t.Error("navigation aliases must not record an answer")
	}
}

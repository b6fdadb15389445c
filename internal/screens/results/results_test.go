package results

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/config"
	"github.com/yichen/quizdrill/internal/quiz"
)

// gradedScreen builds a results screen over three questions: one
// correct, one wrong, one unanswered.
func gradedScreen(t *testing.T) *ResultsScreen {
	t.Helper()
	questions := make([]bank.Question, 3)
	for i := range questions {
		questions[i] = bank.Question{
			Chapter: "Memory",
			Text:    "q",
			Options: []string{"A. yes", "B. no"},
			Answer:  "A",
		}
	}
	result := quiz.Grade(questions, map[int]string{0: "A", 1: "B"})
	return New(nil, quiz.NewSessionState(40), result, config.Default(), zap.NewNop())
}

func TestWrongTabIncludesUnanswered(t *testing.T) {
	s := gradedScreen(t)

	s.tabs.Select(tabWrong)
	entries := s.visibleEntries()
	if len(entries) != 2 {
		t.Fatalf("wrong tab has %d entries, want 2 (wrong + unanswered)", len(entries))
	}
	if entries[0].Status != quiz.StatusWrong || entries[0].Index != 1 {
		t.Errorf("entry 0 = %v/%d, want the wrong answer at index 1", entries[0].Status, entries[0].Index)
	}
	if entries[1].Status != quiz.StatusUnanswered || entries[1].Index != 2 {
		t.Errorf("entry 1 = %v/%d, want the unanswered question at index 2", entries[1].Status, entries[1].Index)
	}

	if s.tabs.Labels[tabWrong] != "Wrong (2)" {
		t.Errorf("wrong tab label = %q, want %q", s.tabs.Labels[tabWrong], "Wrong (2)")
	}
}

func TestCorrectAndAllTabs(t *testing.T) {
	s := gradedScreen(t)

	s.tabs.Select(tabCorrect)
	if entries := s.visibleEntries(); len(entries) != 1 || entries[0].Index != 0 {
		t.Errorf("correct tab = %d entries, want just index 0", len(entries))
	}

	s.tabs.Select(tabAll)
	if entries := s.visibleEntries(); len(entries) != 3 {
		t.Errorf("all tab = %d entries, want 3", len(entries))
	}
}

func TestRenderEntryImage(t *testing.T) {
	diagram := "+----+\n| A  |\n+----+"
	got := renderEntryImage(diagram, 80)
	for _, line := range []string{"+----+", "| A  |"} {
		if !strings.Contains(got, line) {
			t.Errorf("inline diagram output missing %q", line)
		}
	}
	if strings.Contains(got, "[image:") {
		t.Error("inline diagram must not be rendered as a file reference")
	}

	got = renderEntryImage("cache.png", 80)
	if !strings.Contains(got, "[image: cache.png]") {
		t.Errorf("file image output = %q, want the bracketed reference", got)
	}

	if renderEntryImage("", 80) != "" {
		t.Error("empty image renders nothing")
	}
}

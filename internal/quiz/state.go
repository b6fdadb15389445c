package quiz

import (
	"github.com/yichen/quizdrill/internal/bank"
)

// Phase represents where an attempt is in its lifecycle.
type Phase int

const (
	PhaseSelecting Phase = iota // picking chapters, no questions loaded
	PhaseAnswering              // serving questions
	PhaseSubmitted              // graded, showing results
)

// SessionState is the mutable state of a single attempt. It is owned by
// exactly one event handler at a time; all mutation goes through the
// transition functions in session.go.
type SessionState struct {
	Phase Phase

	// Questions is the sampled sequence, fixed for the attempt.
	Questions []bank.Question

	// Answers maps question index to the chosen option letter. Grows as
	// the user answers; only Restart and BackToSelect clear it.
	Answers map[int]string

	// Marked holds the indexes the user starred for review.
	Marked map[int]bool

	// CurrentIndex is the question on screen, in [0, len(Questions)).
	CurrentIndex int

	// AnswerLocked is set once the current question has been answered.
	// Further option selections are ignored until navigation unlocks.
	AnswerLocked bool

	// LastSelectedChapters and SingleChapterMode are retained across
	// Restart so the re-sample uses the same selection.
	LastSelectedChapters []string
	SingleChapterMode    bool

	// AttemptID identifies this attempt in debug logs.
	AttemptID string

	// AdvanceSeq is the auto-advance cancellation token. Every
	// navigation, restart, and reset bumps it; a scheduled auto-advance
	// carrying a stale value must be discarded.
	AdvanceSeq int

	// QuestionCap bounds random-subset attempts (default 40).
	QuestionCap int
}

// NewSessionState returns an empty state in the selecting phase.
func NewSessionState(questionCap int) *SessionState {
	if questionCap <= 0 {
		questionCap = DefaultQuestionCap
	}
	return &SessionState{
		Phase:       PhaseSelecting,
		Answers:     make(map[int]string),
		Marked:      make(map[int]bool),
		QuestionCap: questionCap,
	}
}

// TotalQuestions returns the attempt size.
func (s *SessionState) TotalQuestions() int {
	return len(s.Questions)
}

// Current returns the question on screen, or nil outside the answering
// phase.
func (s *SessionState) Current() *bank.Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *SessionState) AnsweredCount() int {
	return len(s.Answers)
}

// MarkedCount returns how many questions are starred.
func (s *SessionState) MarkedCount() int {
	return len(s.Marked)
}

// AtLastQuestion reports whether the current question is the final one.
func (s *SessionState) AtLastQuestion() bool {
	return len(s.Questions) > 0 && s.CurrentIndex == len(s.Questions)-1
}

package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/yichen/quizdrill/internal/bank"
)

// Feedback is emitted when an answer is recorded, carrying what the
// presenter needs to show the verdict.
type Feedback struct {
	Correct bool

	// CorrectLetters is the full answer-letter string of the question.
	CorrectLetters string

	// CorrectAnswerText is the full option text for the correct answer;
	// for multi-letter answers the texts are joined with " / ".
	CorrectAnswerText string

	// LastQuestion is true when there is nothing to auto-advance to, so
	// a correct answer should prompt for submission instead.
	LastQuestion bool
}

// AdvanceOutcome reports what a navigation request did.
type AdvanceOutcome int

const (
	Advanced AdvanceOutcome = iota
	AtEnd                   // forward past the last question: stay, show the end notice
	AtStart                 // backward past index 0: silent no-op
)

// Start validates the selection, samples questions, and moves the state
// into the answering phase. On a *ValidationError the state is left
// unchanged. rng may be nil.
func Start(s *SessionState, b *bank.Bank, chapters []string, single bool, rng *rand.Rand) error {
	if len(chapters) == 0 {
		return &ValidationError{Reason: reasonNoChapters}
	}
	if single && len(chapters) != 1 {
		return &ValidationError{Reason: reasonSingleMode}
	}
	if b.CountAll(chapters) == 0 {
		return &ValidationError{Reason: reasonNoQuestions}
	}

	mode := RandomSubset
	if single {
		mode = FullSingleChapter
	}
	req := Request{
		Chapters:    chapters,
		Mode:        mode,
		TargetCount: TargetCount(b, chapters, single, s.QuestionCap),
	}
	questions, err := Sample(b, req, rng)
	if err != nil {
		// Unreachable after the validation above; surfacing it means the
		// bank and its chapter counts disagree.
		return fmt.Errorf("sample questions: %w", err)
	}

	s.Questions = questions
	s.Answers = make(map[int]string)
	s.Marked = make(map[int]bool)
	s.CurrentIndex = 0
	s.AnswerLocked = false
	s.LastSelectedChapters = append([]string(nil), chapters...)
	s.SingleChapterMode = single
	s.AttemptID = uuid.New().String()
	s.AdvanceSeq++
	s.Phase = PhaseAnswering
	return nil
}

// SelectOption records the chosen letter for the current question and
// locks it. Returns the feedback to display, or nil when the call is
// ignored: a locked question (post-lock clicks are idempotent, not an
// error) or a state outside the answering phase.
func SelectOption(s *SessionState, letter string) *Feedback {
	if s.Phase != PhaseAnswering || s.AnswerLocked {
		return nil
	}
	q := s.Current()
	if q == nil {
		return nil
	}

	s.Answers[s.CurrentIndex] = letter
	s.AnswerLocked = true

	correct := letter == q.Answer
	return &Feedback{
		Correct:           correct,
		CorrectLetters:    q.Answer,
		CorrectAnswerText: correctAnswerText(q),
		LastQuestion:      s.AtLastQuestion(),
	}
}

// correctAnswerText resolves every letter of the answer string to its
// option text. Single-letter answers yield one option text.
func correctAnswerText(q *bank.Question) string {
	text := ""
	for _, r := range q.Answer {
		if text != "" {
			text += " / "
		}
		text += q.OptionText(string(r))
	}
	return text
}

// Advance moves the current index by delta (+1 or -1). It always clears
// the lock and revokes any pending auto-advance; moving forward from
// the last question stays put and reports AtEnd so the presenter can
// show the end-of-quiz notice.
func Advance(s *SessionState, delta int) AdvanceOutcome {
	s.AnswerLocked = false
	s.AdvanceSeq++

	next := s.CurrentIndex + delta
	if next >= len(s.Questions) {
		return AtEnd
	}
	if next < 0 {
		return AtStart
	}
	s.CurrentIndex = next
	return Advanced
}

// Goto jumps straight to the question at index. Like Advance it clears
// the lock and revokes any pending auto-advance; out-of-range indexes
// are ignored.
func Goto(s *SessionState, index int) AdvanceOutcome {
	if index < 0 {
		return AtStart
	}
	if index >= len(s.Questions) {
		return AtEnd
	}
	s.AnswerLocked = false
	s.AdvanceSeq++
	s.CurrentIndex = index
	return Advanced
}

// ToggleMark flips the star on the current question. A question that is
// answered and still locked cannot be marked until navigation resets
// the lock; the returned error is for display, nothing is mutated.
func ToggleMark(s *SessionState) error {
	if s.AnswerLocked {
		if _, answered := s.Answers[s.CurrentIndex]; answered {
			return fmt.Errorf("cannot mark an answered question")
		}
	}
	if s.Marked[s.CurrentIndex] {
		delete(s.Marked, s.CurrentIndex)
	} else {
		s.Marked[s.CurrentIndex] = true
	}
	return nil
}

// Submit grades the attempt and moves to the submitted phase. Answers
// and marks are kept; only Restart and BackToSelect discard them.
func Submit(s *SessionState) *Result {
	result := Grade(s.Questions, s.Answers)
	s.AdvanceSeq++
	s.Phase = PhaseSubmitted
	return result
}

// Restart re-samples from the retained chapter selection and begins a
// fresh attempt. When no selection was retained it falls back to
// BackToSelect and reports resumed=false.
func Restart(s *SessionState, b *bank.Bank, rng *rand.Rand) (resumed bool, err error) {
	if len(s.LastSelectedChapters) == 0 {
		BackToSelect(s)
		return false, nil
	}
	if err := Start(s, b, s.LastSelectedChapters, s.SingleChapterMode, rng); err != nil {
		return false, err
	}
	return true, nil
}

// BackToSelect discards the attempt entirely and returns to chapter
// selection. Retained chapters are cleared too: the user is about to
// pick fresh ones.
func BackToSelect(s *SessionState) {
	s.Questions = nil
	s.Answers = make(map[int]string)
	s.Marked = make(map[int]bool)
	s.CurrentIndex = 0
	s.AnswerLocked = false
	s.LastSelectedChapters = nil
	s.SingleChapterMode = false
	s.AdvanceSeq++
	s.Phase = PhaseSelecting
}

package quiz

import (
	"math"

	"github.com/yichen/quizdrill/internal/bank"
)

// Status classifies a graded question.
type Status int

const (
	StatusCorrect Status = iota
	StatusWrong
	StatusUnanswered
)

func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusWrong:
		return "wrong"
	default:
		return "unanswered"
	}
}

// ResultEntry is one graded question. The flat entry list preserves
// question order and is the single source of truth for the wrong,
// correct, and all result views; the presenter filters it.
type ResultEntry struct {
	Index         int
	Chapter       string
	Question      string
	UserAnswer    string
	CorrectAnswer string
	Image         string
	Status        Status
}

// Result is the graded outcome of an attempt. It is independent of the
// session state it was computed from and survives a restart.
type Result struct {
	ScorePercent float64
	Entries      []ResultEntry
	Correct      int
	Wrong        int
	Unanswered   int
}

// Filter returns the entries with the given status, in question order.
func (r *Result) Filter(status Status) []ResultEntry {
	var out []ResultEntry
	for _, e := range r.Entries {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

const unansweredText = "not answered"

// Grade scores an attempt. It is pure and total: every index is graded
// whether answered or not, and calling it twice on the same inputs
// yields identical results. The user's letter must match the question's
// full answer-letter string exactly (multi-letter answers included).
func Grade(questions []bank.Question, answers map[int]string) *Result {
	result := &Result{
		Entries: make([]ResultEntry, 0, len(questions)),
	}

	for i, q := range questions {
		entry := ResultEntry{
			Index:         i,
			Chapter:       q.Chapter,
			Question:      q.Text,
			CorrectAnswer: correctAnswerText(&q),
			Image:         q.Image,
		}

		letter, answered := answers[i]
		switch {
		case !answered:
			entry.Status = StatusUnanswered
			entry.UserAnswer = unansweredText
			result.Unanswered++
		case letter == q.Answer:
			entry.Status = StatusCorrect
			entry.UserAnswer = q.OptionText(letter)
			result.Correct++
		default:
			entry.Status = StatusWrong
			entry.UserAnswer = q.OptionText(letter)
			result.Wrong++
		}

		result.Entries = append(result.Entries, entry)
	}

	if len(questions) > 0 {
		pct := 100 * float64(result.Correct) / float64(len(questions))
		// Round half up to one decimal.
		result.ScorePercent = math.Floor(pct*10+0.5) / 10
	}
	return result
}

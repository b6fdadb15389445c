package attempt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/ui/components"
	"github.com/yichen/quizdrill/internal/ui/theme"
)

func (s *AttemptScreen) View(width, height int) string {
	if s.confirmAbort {
		return s.renderAbortConfirm(width)
	}
	if s.confirmSubmit {
		return s.renderSubmitConfirm(width)
	}

	q := s.state.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No question loaded.")
	}

	var b strings.Builder

	// Position line: index, chapter tag, mark star.
	pos := fmt.Sprintf("  Question %d/%d", s.state.CurrentIndex+1, s.state.TotalQuestions())
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Chapter)
	if s.state.Marked[s.state.CurrentIndex] {
		right += "  " + theme.MarkStar.Render("★")
	} else {
		right += "  " + lipgloss.NewStyle().Foreground(theme.Border).Render("☆")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")

	// Progress over the attempt.
	var pct float64
	if s.state.TotalQuestions() > 0 {
		pct = float64(s.state.AnsweredCount()) / float64(s.state.TotalQuestions())
	}
	bar := components.NewProgressBar("", pct, false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	// Illustration, when present.
	if img := renderImage(*q, width); img != "" {
		b.WriteString(img)
		b.WriteString("\n")
	}

	// Options.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n")

	if s.jumpActive {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Go to question: " + s.jump.View()))
		b.WriteString("\n")
	}

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
	}

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.notice))
		b.WriteString("\n")
	}

	if s.markErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.markErr))
		b.WriteString("\n")
	}

	return b.String()
}

// renderImage renders the question's illustration line: a bracketed
// reference for files, the text itself for inline diagrams.
func renderImage(q bank.Question, width int) string {
	switch q.ImageKind() {
	case bank.ImageFile:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("[image: %s]", q.Image)) + "\n"
	case bank.ImageInline:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Image)) + "\n"
	default:
		return ""
	}
}

// renderFeedback shows the verdict banner under the options.
func (s *AttemptScreen) renderFeedback(width int) string {
	var b strings.Builder

	if s.feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
		b.WriteString("\n")
		if s.feedback.LastQuestion {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Render("That was the last question — press Enter to submit"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Moving on in %s...", s.cfg.AutoAdvanceDelay)))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Wrong"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("Correct answer: " + s.feedback.CorrectAnswerText))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to continue"))
	}
	b.WriteString("\n")
	return b.String()
}

func (s *AttemptScreen) renderSubmitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit this attempt?"))
	b.WriteString("\n")

	unanswered := s.state.TotalQuestions() - s.state.AnsweredCount()
	summary := fmt.Sprintf("%d answered, %d unanswered, %d marked",
		s.state.AnsweredCount(), unanswered, s.state.MarkedCount())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers cannot be changed after submitting."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Submit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep answering"))

	return b.String()
}

func (s *AttemptScreen) renderAbortConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this attempt?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep answering"))

	return b.String()
}

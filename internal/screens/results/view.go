package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/quiz"
	"github.com/yichen/quizdrill/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	// Score header.
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%.1f", s.result.ScorePercent)))
	b.WriteString("\n")

	total := len(s.result.Entries)
	desc := fmt.Sprintf("Answered %d of %d correctly — %.1f points",
		s.result.Correct, total, s.result.ScorePercent)
	b.WriteString(theme.Subtitle.Width(width).Render(desc))
	b.WriteString("\n\n")

	// Tabs.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.tabs.View()))
	b.WriteString("\n\n")

	entries := s.visibleEntries()
	if len(entries) == 0 {
		empty := "Nothing here."
		if s.tabs.Active == tabWrong {
			empty = "No wrong answers — a perfect run!"
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(empty))
		return b.String()
	}

	// Entry list, scrolled by whole entries. Render enough to fill the
	// frame; the layout clips the rest.
	headerLines := lipgloss.Height(b.String())
	budget := height - headerLines
	if budget < 4 {
		budget = 4
	}

	used := 0
	for _, e := range entries[s.scrollOffset:] {
		block := renderEntry(e, width)
		used += lipgloss.Height(block) + 1
		b.WriteString(block)
		b.WriteString("\n")
		if used > budget {
			break
		}
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

// renderEntry renders one graded question block.
func renderEntry(e quiz.ResultEntry, width int) string {
	var b strings.Builder

	statusStyle := theme.Correct
	statusMark := "✓"
	switch e.Status {
	case quiz.StatusWrong:
		statusStyle = theme.Incorrect
		statusMark = "✗"
	case quiz.StatusUnanswered:
		statusStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		statusMark = "—"
	}

	head := fmt.Sprintf("  %s %d. [%s] %s", statusMark, e.Index+1, e.Chapter, e.Question)
	b.WriteString(statusStyle.Render(truncate(head, width-2)))
	b.WriteString("\n")

	if img := renderEntryImage(e.Image, width); img != "" {
		b.WriteString(img)
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(truncate("      Your answer: "+e.UserAnswer, width-2)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
		Render(truncate("      Correct answer: "+e.CorrectAnswer, width-2)))

	return b.String()
}

// renderEntryImage renders a graded question's illustration the same
// way the attempt screen does: a bracketed reference for files, the
// text itself for inline diagrams (which may span lines).
func renderEntryImage(image string, width int) string {
	q := bank.Question{Image: image}
	switch q.ImageKind() {
	case bank.ImageFile:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render(truncate("      [image: "+image+"]", width-2))
	case bank.ImageInline:
		var b strings.Builder
		for i, line := range strings.Split(image, "\n") {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(truncate("      "+line, width-2)))
		}
		return b.String()
	default:
		return ""
	}
}

// truncate cuts a line to the given display width.
func truncate(line string, width int) string {
	if width <= 3 || lipgloss.Width(line) <= width {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width-3 {
		return line
	}
	return string(runes[:width-3]) + "..."
}

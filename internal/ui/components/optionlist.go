package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yichen/quizdrill/internal/bank"
	"github.com/yichen/quizdrill/internal/ui/theme"
)

// OptionList renders a question's lettered options and tracks the
// cursor. Once Locked, it stops reacting to input and highlights the
// verdict: every option whose letter appears in CorrectLetters is shown
// correct (multi-letter answers highlight each of their letters), and a
// wrong chosen option is shown as the mistake.
type OptionList struct {
	Options        []string
	Cursor         int
	Locked         bool
	ChosenLetter   string
	CorrectLetters string
}

// NewOptionList creates an option list for the given option texts.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Locked lists ignore everything.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}
	return o, nil
}

// CursorLetter returns the letter label under the cursor.
func (o OptionList) CursorLetter() string {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return ""
	}
	return bank.OptionLetter(o.Options[o.Cursor])
}

// IndexOfLetter returns the option index carrying the letter, or -1.
func (o OptionList) IndexOfLetter(letter string) int {
	for i, opt := range o.Options {
		if bank.OptionLetter(opt) == letter {
			return i
		}
	}
	return -1
}

// View renders the options.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		letter := bank.OptionLetter(opt)
		prefix := "  "
		if !o.Locked && i == o.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s", prefix, opt)

		if o.Locked {
			switch {
			case strings.Contains(o.CorrectLetters, letter):
				b.WriteString(theme.Correct.Render(line))
			case letter == o.ChosenLetter:
				b.WriteString(theme.Incorrect.Render(line))
			default:
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
			}
		} else {
			switch {
			case i == o.Cursor:
				b.WriteString(theme.Selected.Render(line))
			case letter == o.ChosenLetter:
				b.WriteString(theme.Selected.Render(line))
			default:
				b.WriteString(theme.Unselected.Render(line))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

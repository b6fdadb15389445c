package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/yichen/quizdrill/internal/ui/theme"
)

// Tabs is a horizontal tab bar.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Next moves to the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Labels)
}

// Prev moves to the preceding tab, wrapping around.
func (t *Tabs) Prev() {
	if len(t.Labels) == 0 {
		return
	}
	t.Active = (t.Active + len(t.Labels) - 1) % len(t.Labels)
}

// Select activates the tab at i if it exists.
func (t *Tabs) Select(i int) {
	if i >= 0 && i < len(t.Labels) {
		t.Active = i
	}
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Underline(true).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render("  │  ")
	return strings.Join(parts, sep)
}

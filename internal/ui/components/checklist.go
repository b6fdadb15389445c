package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/yichen/quizdrill/internal/ui/theme"
)

// ChecklistItem is one selectable row with an item count badge.
type ChecklistItem struct {
	Label   string
	Count   int
	Checked bool
}

// Checklist is a vertical checkbox list. In single mode checking an
// item unchecks every other one, so the selection behavior is always a
// pure function of the mode — there is no per-item wiring to undo when
// the mode flips.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int
	Single bool
}

// NewChecklist creates a checklist over the given rows.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Init returns nil (no initial command).
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ":
		c.toggle(c.Cursor)
	}

	return c, nil
}

func (c *Checklist) toggle(i int) {
	if i < 0 || i >= len(c.Items) {
		return
	}
	if c.Single {
		checked := c.Items[i].Checked
		for j := range c.Items {
			c.Items[j].Checked = false
		}
		c.Items[i].Checked = !checked
		return
	}
	c.Items[i].Checked = !c.Items[i].Checked
}

// SetSingle switches selection mode. Entering single mode keeps only
// the first checked item.
func (c *Checklist) SetSingle(single bool) {
	c.Single = single
	if !single {
		return
	}
	kept := false
	for i := range c.Items {
		if c.Items[i].Checked {
			if kept {
				c.Items[i].Checked = false
			}
			kept = true
		}
	}
}

// CheckAll checks or unchecks every item. In single mode checking all
// is meaningless and only the first item is checked.
func (c *Checklist) CheckAll(checked bool) {
	for i := range c.Items {
		c.Items[i].Checked = checked && (!c.Single || i == 0)
	}
}

// CheckedLabels returns the labels of checked items in display order.
func (c Checklist) CheckedLabels() []string {
	var out []string
	for _, item := range c.Items {
		if item.Checked {
			out = append(out, item.Label)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ]"
		if item.Checked {
			box = "[x]"
		}
		cursor := "  "
		if i == c.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s %s (%d)", cursor, box, item.Label, item.Count)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case item.Checked:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return s
}

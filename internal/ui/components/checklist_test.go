package components

import "testing"

func newTestChecklist() Checklist {
	return NewChecklist([]ChecklistItem{
		{Label: "Memory", Count: 20},
		{Label: "Caches", Count: 58},
		{Label: "IO", Count: 18},
	})
}

func TestChecklistToggle(t *testing.T) {
	c := newTestChecklist()

	c.toggle(1)
	if !c.Items[1].Checked {
		t.Error("toggle should check the item")
	}
	c.toggle(1)
	if c.Items[1].Checked {
		t.Error("second toggle should uncheck the item")
	}
	c.toggle(5) // out of range, no-op
}

func TestChecklistSingleMode(t *testing.T) {
	c := newTestChecklist()
	c.Single = true

	c.toggle(0)
	c.toggle(2)
	if c.Items[0].Checked {
		t.Error("single mode should uncheck the previous item")
	}
	if !c.Items[2].Checked {
		t.Error("single mode should check the new item")
	}
	if got := len(c.CheckedLabels()); got != 1 {
		t.Errorf("single mode has %d checked items, want 1", got)
	}
}

func TestChecklistSetSingleKeepsFirst(t *testing.T) {
	c := newTestChecklist()
	c.toggle(0)
	c.toggle(2)

	c.SetSingle(true)
	if !c.Items[0].Checked || c.Items[2].Checked {
		t.Error("entering single mode should keep only the first checked item")
	}

	c.SetSingle(false)
	if !c.Items[0].Checked {
		t.Error("leaving single mode should not change the selection")
	}
}

func TestChecklistCheckAll(t *testing.T) {
	c := newTestChecklist()

	c.CheckAll(true)
	if got := c.CheckedLabels(); len(got) != 3 {
		t.Errorf("CheckAll(true) checked %d items, want 3", len(got))
	}

	c.CheckAll(false)
	if got := c.CheckedLabels(); len(got) != 0 {
		t.Errorf("CheckAll(false) left %d items checked, want 0", len(got))
	}

	c.Single = true
	c.CheckAll(true)
	if got := c.CheckedLabels(); len(got) != 1 || got[0] != "Memory" {
		t.Errorf("CheckAll(true) in single mode = %v, want just the first item", got)
	}
}

func TestChecklistCheckedLabelsOrder(t *testing.T) {
	c := newTestChecklist()
	c.toggle(2)
	c.toggle(0)

	got := c.CheckedLabels()
	if len(got) != 2 || got[0] != "Memory" || got[1] != "IO" {
		t.Errorf("CheckedLabels = %v, want display order [Memory IO]", got)
	}
}

package bank

import (
	"testing"
)

func TestNewChapterOrderAndCounts(t *testing.T) {
	questions := []Question{
		{Chapter: "Memory", Text: "q1", Options: []string{"A. x"}, Answer: "A"},
		{Chapter: "Caches", Text: "q2", Options: []string{"A. x"}, Answer: "A"},
		{Chapter: "Memory", Text: "q3", Options: []string{"A. x"}, Answer: "A"},
		{Chapter: "IO", Text: "q4", Options: []string{"A. x"}, Answer: "A"},
	}

	b, err := New(questions)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"Memory", "Caches", "IO"}
	got := b.Chapters()
	if len(got) != len(want) {
		t.Fatalf("Chapters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Chapters[%d] = %q, want %q (first-seen order)", i, got[i], want[i])
		}
	}
	if b.Count("Memory") != 2 || b.Count("Caches") != 1 || b.Count("IO") != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1",
			b.Count("Memory"), b.Count("Caches"), b.Count("IO"))
	}
	if b.CountAll([]string{"Memory", "IO", "Nope"}) != 3 {
		t.Errorf("CountAll = %d, want 3", b.CountAll([]string{"Memory", "IO", "Nope"}))
	}
	if b.Len() != 4 {
		t.Errorf("Len = %d, want 4", b.Len())
	}
}

func TestNewRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		q    Question
	}{
		{"missing chapter", Question{Text: "q", Options: []string{"A. x"}, Answer: "A"}},
		{"no options", Question{Chapter: "Memory", Text: "q", Answer: "A"}},
		{"missing answer", Question{Chapter: "Memory", Text: "q", Options: []string{"A. x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New([]Question{tt.q}); err == nil {
				t.Error("New should reject the record")
			}
		})
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("New(nil) should error")
	}
}

func TestOptionLetter(t *testing.T) {
	tests := []struct {
		option string
		want   string
	}{
		{"A. A cache line", "A"},
		{"B. Something", "B"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := OptionLetter(tt.option); got != tt.want {
			t.Errorf("OptionLetter(%q) = %q, want %q", tt.option, got, tt.want)
		}
	}
}

func TestOptionText(t *testing.T) {
	q := Question{
		Chapter: "Memory",
		Text:    "q",
		Options: []string{"A. first", "B. second"},
		Answer:  "A",
	}
	if got := q.OptionText("B"); got != "B. second" {
		t.Errorf("OptionText(B) = %q, want %q", got, "B. second")
	}
	if got := q.OptionText("Z"); got != "option not found (Z)" {
		t.Errorf("OptionText(Z) = %q, want the placeholder", got)
	}
}

func TestImageKind(t *testing.T) {
	tests := []struct {
		name  string
		image string
		want  ImageKind
	}{
		{"none", "", ImageNone},
		{"png file", "diagram.png", ImageFile},
		{"uppercase ext", "DIAGRAM.PNG", ImageFile},
		{"path with separator", "img/figure", ImageFile},
		{"inline ascii art", "+----+\n| A  |\n+----+", ImageInline},
		{"inline text", "a -> b -> c", ImageInline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{Image: tt.image}
			if got := q.ImageKind(); got != tt.want {
				t.Errorf("ImageKind(%q) = %v, want %v", tt.image, got, tt.want)
			}
		})
	}
}

package bank

import (
	"fmt"
	"path"
	"strings"
)

// Question is a single multiple-choice question record. Records are
// immutable once loaded; the quiz core only ever reads them.
type Question struct {
	// Chapter is the topical grouping tag used for selection and stats.
	Chapter string `json:"chapter"`

	// Text is the question prompt.
	Text string `json:"question"`

	// Options are the answer choices in display order. Each option text
	// begins with its letter label, e.g. "A. A cache line".
	Options []string `json:"options"`

	// Answer is the correct option letter(s) as a concatenated string.
	// Single-letter in every bank shipped so far, but multi-letter values
	// are accepted and matched exactly.
	Answer string `json:"answer"`

	// Image is an optional illustration: either a file reference or
	// inline text (an ASCII diagram). Empty if the question has none.
	Image string `json:"image,omitempty"`
}

// ImageKind classifies a Question's Image field.
type ImageKind int

const (
	ImageNone ImageKind = iota
	ImageFile
	ImageInline
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// ImageKind reports whether the question's image is absent, a file
// reference, or inline text. A value with an image file extension or a
// path separator is treated as a file reference.
func (q Question) ImageKind() ImageKind {
	if q.Image == "" {
		return ImageNone
	}
	if imageExts[strings.ToLower(path.Ext(q.Image))] || strings.ContainsRune(q.Image, '/') {
		return ImageFile
	}
	return ImageInline
}

// OptionLetter returns the letter label of an option text, i.e. its
// first rune. Empty options yield an empty string.
func OptionLetter(option string) string {
	for _, r := range option {
		return string(r)
	}
	return ""
}

// OptionText returns the full option text matching the given answer
// letter. Unknown letters produce a placeholder instead of an error so
// grading stays total even over malformed records.
func (q Question) OptionText(letter string) string {
	for _, opt := range q.Options {
		if OptionLetter(opt) == letter {
			return opt
		}
	}
	return fmt.Sprintf("option not found (%s)", letter)
}

// Bank is an immutable, ordered question collection with per-chapter
// counts derived from the records themselves, so counts and records can
// never drift apart.
type Bank struct {
	questions []Question
	chapters  []string
	counts    map[string]int
}

// New builds a Bank from the given records. Chapter order follows first
// appearance in the input.
func New(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	b := &Bank{
		questions: questions,
		counts:    make(map[string]int),
	}
	for i, q := range questions {
		if q.Chapter == "" {
			return nil, fmt.Errorf("question %d: missing chapter", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d: no options", i)
		}
		if q.Answer == "" {
			return nil, fmt.Errorf("question %d: missing answer", i)
		}
		if b.counts[q.Chapter] == 0 {
			b.chapters = append(b.chapters, q.Chapter)
		}
		b.counts[q.Chapter]++
	}
	return b, nil
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns the full ordered record list. Callers must not
// mutate the returned slice.
func (b *Bank) Questions() []Question {
	return b.questions
}

// Chapters returns chapter identifiers in first-seen order.
func (b *Bank) Chapters() []string {
	return b.chapters
}

// Count returns the number of questions tagged with the chapter.
func (b *Bank) Count(chapter string) int {
	return b.counts[chapter]
}

// CountAll returns the combined question count across the given
// chapters. Unknown chapters contribute zero.
func (b *Bank) CountAll(chapters []string) int {
	total := 0
	for _, c := range chapters {
		total += b.counts[c]
	}
	return total
}

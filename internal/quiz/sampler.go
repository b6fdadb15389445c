package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/yichen/quizdrill/internal/bank"
)

// Mode selects how a session draws its questions.
type Mode int

const (
	// RandomSubset draws up to the question cap from the union of the
	// selected chapters.
	RandomSubset Mode = iota

	// FullSingleChapter serves every question of exactly one chapter,
	// still in randomized order.
	FullSingleChapter
)

// DefaultQuestionCap is the standard attempt size for random subsets.
const DefaultQuestionCap = 40

// Request describes one sampling run.
type Request struct {
	Chapters    []string
	Mode        Mode
	TargetCount int
}

// TargetCount computes the attempt size for a selection: the full
// chapter in single-chapter mode, otherwise min(cap, available).
func TargetCount(b *bank.Bank, chapters []string, single bool, cap int) int {
	available := b.CountAll(chapters)
	if single {
		return available
	}
	if available < cap {
		return available
	}
	return cap
}

// Sample draws an ordered, randomized question sequence for one attempt.
// The filtered pool is shuffled with an unbiased permutation; when the
// pool is no larger than the target the whole shuffled pool is returned,
// otherwise exactly TargetCount questions. rng may be nil, in which case
// a fresh time-seeded source is used.
//
// An empty filtered pool is a precondition violation: Start validates
// the selection first, so hitting it means the bank and the selection
// disagree.
func Sample(b *bank.Bank, req Request, rng *rand.Rand) ([]bank.Question, error) {
	selected := make(map[string]bool, len(req.Chapters))
	for _, c := range req.Chapters {
		selected[c] = true
	}

	var pool []bank.Question
	for _, q := range b.Questions() {
		if selected[q.Chapter] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("no questions in chapters %v", req.Chapters)
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) <= req.TargetCount {
		return pool, nil
	}
	return pool[:req.TargetCount], nil
}

package attempt

// autoAdvanceMsg fires when the post-correct-answer delay elapses. seq
// is the cancellation token: it must still match the session's
// AdvanceSeq or the advance is stale and dropped (the user navigated
// first).
type autoAdvanceMsg struct {
	seq int
}

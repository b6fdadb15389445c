package quiz

// ValidationError reports a chapter selection the session cannot start
// from. It is user-recoverable: the selection stays on screen and the
// session state is left untouched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

const (
	reasonNoChapters  = "select at least one chapter"
	reasonSingleMode  = "single-chapter mode needs exactly one chapter"
	reasonNoQuestions = "the selected chapters contain no questions"
)

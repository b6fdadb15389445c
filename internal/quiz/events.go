package quiz

// RestartedEvent is broadcast to the presenter after Restart has
// re-sampled, so the screen showing the attempt can rebuild its view of
// the fresh state.
type RestartedEvent struct{}

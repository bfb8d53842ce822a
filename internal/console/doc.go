package console

// Package console implements the label print console: debounced product
// search, selection, live preview refresh and print submission. The
// Controller owns all state and drives a View; it is independent of any
// rendering toolkit. Controller methods must be called on the UI goroutine;
// timers and network calls run elsewhere and hand their results back through
// the configured dispatcher.

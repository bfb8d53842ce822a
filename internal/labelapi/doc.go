package labelapi

// Package labelapi is the HTTP client for the label server: product search,
// label preview images and print submission. Every call is bounded by the
// caller's context and the client timeout, tagged with an X-Request-ID and
// logged with zap.

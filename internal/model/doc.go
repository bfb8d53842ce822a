package model

// Package model defines the data exchanged with the label server: products
// returned by search, print requests and their results, and the submit state
// of the print control. Structures carry JSON tags matching the server wire
// format and are never mutated after decoding.

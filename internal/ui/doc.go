package ui

// Package ui contains the Fyne-based desktop user interface for the label
// console. RootUI lays out the search, preview and print controls, implements
// console.View and forwards widget events to the console controller. All UI
// strings are localized via Localization.

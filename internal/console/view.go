package console

import "github.com/labelkit/label-console/internal/model"

// View is the rendering surface driven by the Controller.
type View interface {
	RenderSuggestions(products []model.Product)
	HideSuggestions()

	// SetSearchText replaces the search box text without reporting a change
	SetSearchText(text string)

	SetPreviewSource(url string)
	SetPreviewImage(png []byte)
	SetMeta(text string)
	SetPrintButtonState(enabled bool, label string)

	// ShowInlineError shows a non-blocking error next to the inputs
	ShowInlineError(message string)
	ClearInlineError()

	// Notify reports the outcome of a print request
	Notify(kind model.NotifyKind, message string)
}

// Messages holds the user-facing texts produced by the Controller.
// Format strings take the arguments noted on each field.
type Messages struct {
	PrintLabel string
	BusyLabel  string

	// PrintSuccess: printed count
	PrintSuccess string
	// PrintPartial: printed count, requested count, joined errors
	PrintPartial string
	// PrintFailed: error description
	PrintFailed string
	// SearchFailed: error description
	SearchFailed string
	// PreviewFailed: error description
	PreviewFailed string
	// NoErrorDetails replaces an empty error list
	NoErrorDetails string
}

// DefaultMessages returns the English texts
func DefaultMessages() Messages {
	return Messages{
		PrintLabel:     "Print",
		BusyLabel:      "Printing...",
		PrintSuccess:   "Printed %d label(s)",
		PrintPartial:   "Printed %d of %d label(s). Errors: %s",
		PrintFailed:    "Print failed: %s",
		SearchFailed:   "Search failed: %s",
		PreviewFailed:  "Preview failed: %s",
		NoErrorDetails: "no details from server",
	}
}

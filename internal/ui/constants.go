package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSave     = "💾"
	IconError    = "❌"
)

// Window and layout sizing
const (
	WindowWidth  float32 = 860
	WindowHeight float32 = 560

	PreviewMinWidth  float32 = 360
	PreviewMinHeight float32 = 240

	SplitOffset = 0.45
)

// Initial field values
const (
	InitialCount = "1"
)

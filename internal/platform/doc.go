package platform

// Package platform contains OS integration: the user's Downloads directory,
// writing saved label previews to disk and opening them with the default app.

package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/labelkit/label-console/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyStoreName      = "store_name"
	KeySearchDebounce = "search_debounce_ms"
	KeyRequestTimeout = "request_timeout_sec"
	KeySaveDir        = "preview_save_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultServerURL      = "http://localhost:5001"
	DefaultStoreName      = "SRI VELAVAN SUPERMARKET"
	DefaultSearchDebounce = 180 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
	DefaultLanguage       = "system"
)

// Bounds for numeric settings
const (
	MinSearchDebounce = 50 * time.Millisecond
	MaxSearchDebounce = 2 * time.Second
	MinRequestTimeout = 1 * time.Second
	MaxRequestTimeout = 2 * time.Minute
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the label server base URL
func (s *Settings) GetServerURL() string {
	u := s.app.Preferences().String(KeyServerURL)
	if u == "" {
		return DefaultServerURL
	}
	return u
}

// SetServerURL sets the label server base URL
func (s *Settings) SetServerURL(u string) {
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(strings.TrimSpace(u), "/"))
}

// GetStoreName returns the store name prefilled on every label
func (s *Settings) GetStoreName() string {
	return s.app.Preferences().StringWithFallback(KeyStoreName, DefaultStoreName)
}

// SetStoreName sets the default store name
func (s *Settings) SetStoreName(name string) {
	s.app.Preferences().SetString(KeyStoreName, strings.TrimSpace(name))
}

// GetSearchDebounce returns the quiet period before a search is sent
func (s *Settings) GetSearchDebounce() time.Duration {
	ms := s.app.Preferences().Int(KeySearchDebounce)
	if ms <= 0 {
		return DefaultSearchDebounce
	}
	return time.Duration(ms) * time.Millisecond
}

// SetSearchDebounce sets the search quiet period
func (s *Settings) SetSearchDebounce(d time.Duration) {
	if d < MinSearchDebounce {
		d = MinSearchDebounce
	}
	if d > MaxSearchDebounce {
		d = MaxSearchDebounce
	}
	s.app.Preferences().SetInt(KeySearchDebounce, int(d/time.Millisecond))
}

// GetRequestTimeout returns the timeout applied to every label server call
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().Int(KeyRequestTimeout)
	if sec <= 0 {
		return DefaultRequestTimeout
	}
	return time.Duration(sec) * time.Second
}

// SetRequestTimeout sets the request timeout, rounded down to whole seconds
func (s *Settings) SetRequestTimeout(d time.Duration) {
	if d < MinRequestTimeout {
		d = MinRequestTimeout
	}
	if d > MaxRequestTimeout {
		d = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(d/time.Second))
}

// GetSaveDirectory returns where saved previews are written
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/labels"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets where saved previews are written
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ApplyEnv stores environment overrides so they win over saved preferences
func (s *Settings) ApplyEnv(env *Env) {
	if env == nil {
		return
	}
	if env.ServerURL != "" {
		s.SetServerURL(env.ServerURL)
	}
	if env.StoreName != "" {
		s.SetStoreName(env.StoreName)
	}
	if env.RequestTimeout > 0 {
		s.SetRequestTimeout(env.RequestTimeout)
	}
}

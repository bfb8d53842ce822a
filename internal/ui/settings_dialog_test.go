package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/labelkit/label-console/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetSaveDirectory(t.TempDir())

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_Apply(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.serverEntry.SetText(" http://10.0.0.5:5001/ ")
	sd.storeEntry.SetText("Corner Shop")
	sd.debounceEntry.SetText("250")
	sd.timeoutEntry.SetText("30")
	sd.languageSelect.SetSelected("ru")

	if err := sd.apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := settings.GetServerURL(); got != "http://10.0.0.5:5001" {
		t.Errorf("server URL = %q", got)
	}
	if got := settings.GetStoreName(); got != "Corner Shop" {
		t.Errorf("store name = %q", got)
	}
	if got := settings.GetSearchDebounce(); got != 250*time.Millisecond {
		t.Errorf("debounce = %v", got)
	}
	if got := settings.GetRequestTimeout(); got != 30*time.Second {
		t.Errorf("timeout = %v", got)
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("language = %q", got)
	}
}

func TestSettingsDialog_InvalidServerURL(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.serverEntry.SetText("localhost:5001")
	sd.storeEntry.SetText("Changed")

	if err := sd.apply(); err == nil {
		t.Fatal("expected error for URL without scheme")
	}

	if got := settings.GetServerURL(); got != config.DefaultServerURL {
		t.Errorf("server URL changed to %q", got)
	}
	if got := settings.GetStoreName(); got != config.DefaultStoreName {
		t.Errorf("store name changed to %q", got)
	}
}

func TestSettingsDialog_IgnoresNonNumericDurations(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.debounceEntry.SetText("fast")
	sd.timeoutEntry.SetText("")

	if err := sd.apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := settings.GetSearchDebounce(); got != config.DefaultSearchDebounce {
		t.Errorf("debounce = %v", got)
	}
	if got := settings.GetRequestTimeout(); got != config.DefaultRequestTimeout {
		t.Errorf("timeout = %v", got)
	}
}

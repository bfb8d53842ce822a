package ui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/labelkit/label-console/internal/config"
	"github.com/labelkit/label-console/internal/labelapi"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverEntry    *widget.Entry
	storeEntry     *widget.Entry
	debounceEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	saveDirEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a
// successful save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.serverEntry = widget.NewEntry()
	sd.serverEntry.SetPlaceHolder(config.DefaultServerURL)

	sd.storeEntry = widget.NewEntry()
	sd.storeEntry.SetPlaceHolder(config.DefaultStoreName)

	sd.debounceEntry = widget.NewEntry()
	sd.debounceEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinSearchDebounce.Milliseconds(), config.MaxSearchDebounce.Milliseconds()))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", int(config.MinRequestTimeout.Seconds()), int(config.MaxRequestTimeout.Seconds())))

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageSelect = widget.NewSelect(slices.Sorted(maps.Keys(languageLabels)), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyServerURL)+":"),
		sd.serverEntry,

		widget.NewLabel(text(KeyStoreName)+":"),
		sd.storeEntry,

		widget.NewLabel(text(KeyDebounce)+":"),
		sd.debounceEntry,

		widget.NewLabel(text(KeyTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(text(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 460))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverEntry.SetText(sd.settings.GetServerURL())
	sd.storeEntry.SetText(sd.settings.GetStoreName())
	sd.debounceEntry.SetText(strconv.FormatInt(sd.settings.GetSearchDebounce().Milliseconds(), 10))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply validates the form and stores it; nothing is stored when the
// server URL is invalid
func (sd *SettingsDialog) apply() error {
	serverURL := strings.TrimSpace(sd.serverEntry.Text)
	if serverURL != "" {
		if _, err := labelapi.NewClient(serverURL); err != nil {
			return fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidServerURL), err)
		}
	}

	if serverURL != "" {
		sd.settings.SetServerURL(serverURL)
	}

	sd.settings.SetStoreName(sd.storeEntry.Text)

	if ms, err := strconv.Atoi(strings.TrimSpace(sd.debounceEntry.Text)); err == nil {
		sd.settings.SetSearchDebounce(time.Duration(ms) * time.Millisecond)
	}

	if sec, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetRequestTimeout(time.Duration(sec) * time.Second)
	}

	if dir := strings.TrimSpace(sd.saveDirEntry.Text); dir != "" {
		sd.settings.SetSaveDirectory(dir)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	return nil
}

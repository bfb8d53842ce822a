package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/config"
	"github.com/labelkit/label-console/internal/console"
	"github.com/labelkit/label-console/internal/labelapi"
	"github.com/labelkit/label-console/internal/model"
	"github.com/labelkit/label-console/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger
	ctrl         *console.Controller

	searchEntry    *widget.Entry
	suggestionList *widget.List
	suggestions    []model.Product
	errorLabel     *widget.Label

	form        *widget.Form
	storeEntry  *widget.Entry
	expiryEntry *widget.Entry
	countEntry  *widget.Entry
	printBtn    *widget.Button

	metaLabel          *widget.Label
	previewPlaceholder *widget.Label
	previewImage       *canvas.Image
	previewLink        *widget.Hyperlink
	saveBtn            *widget.Button

	// SetSearchText must not be mistaken for a user edit
	suppressSearch bool
}

// NewRootUI creates and initializes the main UI. Extra controller options are
// applied after the defaults.
func NewRootUI(window fyne.Window, backend labelapi.Backend, settings *config.Settings, logger *zap.Logger, opts ...console.Option) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	base := []console.Option{
		console.WithLogger(logger.Named("console")),
		console.WithMessages(localization.ConsoleMessages()),
		console.WithDispatcher(fyne.Do),
		console.WithSearchDebounce(settings.GetSearchDebounce()),
		console.WithRequestTimeout(settings.GetRequestTimeout()),
		console.WithStoreName(ui.storeEntry.Text),
	}
	ui.ctrl = console.NewController(backend, ui, append(base, opts...)...)
	ui.bindEvents()

	window.SetOnClosed(ui.ctrl.Close)

	ui.logger.Info("label console ready", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.suggestionList = widget.NewList(
		func() int {
			return len(ui.suggestions)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.suggestions) {
				return
			}
			obj.(*widget.Label).SetText(ui.suggestions[id].SuggestionText())
		},
	)
	ui.suggestionList.Hide()

	ui.storeEntry = widget.NewEntry()
	ui.storeEntry.SetText(ui.settings.GetStoreName())

	ui.expiryEntry = widget.NewEntry()
	ui.expiryEntry.SetPlaceHolder(ui.localization.GetText(KeyExpiryPlaceholder))

	ui.countEntry = widget.NewEntry()
	ui.countEntry.SetText(InitialCount)

	ui.printBtn = widget.NewButton(ui.localization.GetText(KeyPrint), nil)
	ui.printBtn.Importance = widget.HighImportance
	ui.printBtn.Disable()

	ui.form = widget.NewForm(
		widget.NewFormItem(ui.localization.GetText(KeyStoreName), ui.storeEntry),
		widget.NewFormItem(ui.localization.GetText(KeyExpiry), ui.expiryEntry),
		widget.NewFormItem(ui.localization.GetText(KeyCount), ui.countEntry),
	)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var searchRow *fyne.Container
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		searchRow = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), nil, ui.searchEntry)
	} else {
		searchRow = container.NewBorder(nil, nil, settingsBtn, nil, ui.searchEntry)
	}

	left := container.NewBorder(
		container.NewVBox(searchRow, ui.errorLabel),
		container.NewVBox(widget.NewSeparator(), ui.form, ui.printBtn),
		nil,
		nil,
		ui.suggestionList,
	)

	ui.metaLabel = widget.NewLabel("")
	ui.metaLabel.Wrapping = fyne.TextWrapWord

	ui.previewPlaceholder = widget.NewLabel(ui.localization.GetText(KeyNoSelection))
	ui.previewPlaceholder.Alignment = fyne.TextAlignCenter

	ui.previewImage = canvas.NewImageFromResource(nil)
	ui.previewImage.FillMode = canvas.ImageFillContain
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	ui.previewImage.Hide()

	ui.previewLink = widget.NewHyperlink(ui.localization.GetText(KeyOpenInBrowser), nil)
	ui.previewLink.Hide()

	ui.saveBtn = widget.NewButton(IconSave+" "+ui.localization.GetText(KeySavePreview), ui.onSavePreview)
	ui.saveBtn.Disable()

	right := container.NewBorder(
		ui.metaLabel,
		container.NewHBox(ui.previewLink, ui.saveBtn),
		nil,
		nil,
		container.NewStack(container.NewCenter(ui.previewPlaceholder), ui.previewImage),
	)

	split := container.NewHSplit(left, right)
	split.Offset = SplitOffset

	ui.window.SetContent(split)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// bindEvents forwards widget events to the controller; the initial field
// values are already set so nothing fires during construction
func (ui *RootUI) bindEvents() {
	ui.searchEntry.OnChanged = func(text string) {
		if ui.suppressSearch {
			return
		}
		ui.ctrl.SearchChanged(text)
	}
	ui.searchEntry.OnSubmitted = func(string) {
		if len(ui.suggestions) > 0 {
			ui.ctrl.SelectSuggestion(0)
		}
	}

	ui.suggestionList.OnSelected = func(id widget.ListItemID) {
		ui.suggestionList.UnselectAll()
		ui.ctrl.SelectSuggestion(id)
	}

	ui.storeEntry.OnChanged = ui.ctrl.StoreChanged
	ui.expiryEntry.OnChanged = ui.ctrl.ExpiryChanged
	ui.countEntry.OnChanged = ui.ctrl.CountChanged
	ui.printBtn.OnTapped = ui.ctrl.Print
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.expiryEntry.SetPlaceHolder(ui.localization.GetText(KeyExpiryPlaceholder))

	ui.form.Items[0].Text = ui.localization.GetText(KeyStoreName)
	ui.form.Items[1].Text = ui.localization.GetText(KeyExpiry)
	ui.form.Items[2].Text = ui.localization.GetText(KeyCount)
	ui.form.Refresh()

	ui.previewPlaceholder.SetText(ui.localization.GetText(KeyNoSelection))
	ui.previewLink.SetText(ui.localization.GetText(KeyOpenInBrowser))
	ui.saveBtn.SetText(IconSave + " " + ui.localization.GetText(KeySavePreview))

	// relabels the print button too
	ui.ctrl.SetMessages(ui.localization.ConsoleMessages())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.logger.Info("settings saved",
			zap.String("server", ui.settings.GetServerURL()),
			zap.Duration("debounce", ui.settings.GetSearchDebounce()),
			zap.Duration("timeout", ui.settings.GetRequestTimeout()))
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	}).Show()
}

// onSavePreview writes the current preview image to the save directory
func (ui *RootUI) onSavePreview() {
	product, ok := ui.ctrl.Selected()
	data := ui.ctrl.PreviewImage()
	if !ok || len(data) == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeySavePreview), ui.localization.GetText(KeyNothingToSave), ui.window)
		return
	}

	path, err := platform.SavePreview(ui.settings.GetSaveDirectory(), product.Barcode, data)
	if err != nil {
		ui.logger.Error("saving preview failed", zap.String("barcode", product.Barcode), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}

	ui.logger.Info("preview saved", zap.String("barcode", product.Barcode), zap.String("path", path))
	dialog.ShowInformation(ui.localization.GetText(KeySavePreview),
		fmt.Sprintf(ui.localization.GetText(KeyPreviewSaved), path), ui.window)
}

// RenderSuggestions shows the suggestion list
func (ui *RootUI) RenderSuggestions(products []model.Product) {
	ui.suggestions = products
	ui.suggestionList.UnselectAll()
	ui.suggestionList.Refresh()
	ui.suggestionList.ScrollToTop()
	ui.suggestionList.Show()
}

// HideSuggestions empties and hides the suggestion list
func (ui *RootUI) HideSuggestions() {
	ui.suggestions = nil
	ui.suggestionList.Refresh()
	ui.suggestionList.Hide()
}

// SetSearchText replaces the search box text without starting a search
func (ui *RootUI) SetSearchText(text string) {
	ui.suppressSearch = true
	defer func() { ui.suppressSearch = false }()
	ui.searchEntry.SetText(text)
}

// SetPreviewSource points the browser link at the preview address
func (ui *RootUI) SetPreviewSource(url string) {
	if err := ui.previewLink.SetURLFromString(url); err != nil {
		ui.logger.Warn("invalid preview url", zap.String("url", url), zap.Error(err))
		ui.previewLink.Hide()
		return
	}
	ui.previewLink.Show()
}

// SetPreviewImage displays a freshly fetched label image
func (ui *RootUI) SetPreviewImage(png []byte) {
	ui.previewImage.Resource = NewPreviewResource(png)
	ui.previewImage.Show()
	ui.previewImage.Refresh()
	ui.previewPlaceholder.Hide()
	ui.saveBtn.Enable()
}

// SetMeta sets the product details line
func (ui *RootUI) SetMeta(text string) {
	ui.metaLabel.SetText(text)
}

// SetPrintButtonState updates the print button
func (ui *RootUI) SetPrintButtonState(enabled bool, label string) {
	ui.printBtn.SetText(label)
	if enabled {
		ui.printBtn.Enable()
	} else {
		ui.printBtn.Disable()
	}
}

// ShowInlineError shows a non-blocking error under the search box
func (ui *RootUI) ShowInlineError(message string) {
	ui.errorLabel.SetText(IconError + " " + message)
	ui.errorLabel.Show()
}

// ClearInlineError hides the inline error
func (ui *RootUI) ClearInlineError() {
	ui.errorLabel.SetText("")
	ui.errorLabel.Hide()
}

// Notify reports a print outcome in a dialog
func (ui *RootUI) Notify(kind model.NotifyKind, message string) {
	switch kind {
	case model.NotifySuccess:
		dialog.ShowInformation(ui.localization.GetText(KeyPrintResult), message, ui.window)
	default:
		dialog.ShowError(errors.New(message), ui.window)
	}
}

var _ console.View = (*RootUI)(nil)

package ui

import "github.com/labelkit/label-console/internal/console"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyStoreName         = "store_name"
	KeyExpiry            = "expiry"
	KeyExpiryPlaceholder = "expiry_placeholder"
	KeyCount             = "count"
	KeyPrint             = "print"
	KeyPrinting          = "printing"
	KeySavePreview       = "save_preview"
	KeyOpenInBrowser     = "open_in_browser"
	KeyNoSelection       = "no_selection"
	KeyPrintResult       = "print_result"
	KeyPreviewSaved      = "preview_saved"
	KeyNothingToSave     = "nothing_to_save"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyServerURL         = "server_url"
	KeyDebounce          = "debounce"
	KeyTimeout           = "timeout"
	KeySaveDirectory     = "save_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidServerURL  = "invalid_server_url"
	KeyPrintSuccess      = "print_success"
	KeyPrintPartial      = "print_partial"
	KeyPrintFailed       = "print_failed"
	KeySearchFailed      = "search_failed"
	KeyPreviewFailed     = "preview_failed"
	KeyNoErrorDetails    = "no_error_details"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// ConsoleMessages returns the controller texts in the current language
func (l *Localization) ConsoleMessages() console.Messages {
	return console.Messages{
		PrintLabel:     l.GetText(KeyPrint),
		BusyLabel:      l.GetText(KeyPrinting),
		PrintSuccess:   l.GetText(KeyPrintSuccess),
		PrintPartial:   l.GetText(KeyPrintPartial),
		PrintFailed:    l.GetText(KeyPrintFailed),
		SearchFailed:   l.GetText(KeySearchFailed),
		PreviewFailed:  l.GetText(KeyPreviewFailed),
		NoErrorDetails: l.GetText(KeyNoErrorDetails),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	defaults := console.DefaultMessages()

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Label Console",
		KeySearchPlaceholder: "Search products by name",
		KeyStoreName:         "Store name",
		KeyExpiry:            "Expiry",
		KeyExpiryPlaceholder: "e.g. 12/2026",
		KeyCount:             "Labels",
		KeyPrint:             defaults.PrintLabel,
		KeyPrinting:          defaults.BusyLabel,
		KeySavePreview:       "Save preview",
		KeyOpenInBrowser:     "Open in browser",
		KeyNoSelection:       "Select a product to preview its label",
		KeyPrintResult:       "Print",
		KeyPreviewSaved:      "Preview saved to %s",
		KeyNothingToSave:     "No preview to save yet",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyServerURL:         "Label server URL",
		KeyDebounce:          "Search delay (ms)",
		KeyTimeout:           "Request timeout (s)",
		KeySaveDirectory:     "Preview save directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved. Server and language changes apply after restart.",
		KeyInvalidServerURL:  "Invalid server URL",
		KeyPrintSuccess:      defaults.PrintSuccess,
		KeyPrintPartial:      defaults.PrintPartial,
		KeyPrintFailed:       defaults.PrintFailed,
		KeySearchFailed:      defaults.SearchFailed,
		KeyPreviewFailed:     defaults.PreviewFailed,
		KeyNoErrorDetails:    defaults.NoErrorDetails,
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Печать этикеток",
		KeySearchPlaceholder: "Поиск товара по названию",
		KeyStoreName:         "Название магазина",
		KeyExpiry:            "Годен до",
		KeyExpiryPlaceholder: "напр. 12/2026",
		KeyCount:             "Этикеток",
		KeyPrint:             "Печать",
		KeyPrinting:          "Печать...",
		KeySavePreview:       "Сохранить превью",
		KeyOpenInBrowser:     "Открыть в браузере",
		KeyNoSelection:       "Выберите товар для просмотра этикетки",
		KeyPrintResult:       "Печать",
		KeyPreviewSaved:      "Превью сохранено в %s",
		KeyNothingToSave:     "Превью ещё не загружено",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyServerURL:         "URL сервера этикеток",
		KeyDebounce:          "Задержка поиска (мс)",
		KeyTimeout:           "Таймаут запроса (с)",
		KeySaveDirectory:     "Папка для превью",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки сохранены. Сервер и язык применятся после перезапуска.",
		KeyInvalidServerURL:  "Неверный URL сервера",
		KeyPrintSuccess:      "Напечатано этикеток: %d",
		KeyPrintPartial:      "Напечатано %d из %d. Ошибки: %s",
		KeyPrintFailed:       "Ошибка печати: %s",
		KeySearchFailed:      "Ошибка поиска: %s",
		KeyPreviewFailed:     "Ошибка превью: %s",
		KeyNoErrorDetails:    "сервер не сообщил подробностей",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Console de Etiquetas",
		KeySearchPlaceholder: "Buscar produtos pelo nome",
		KeyStoreName:         "Nome da loja",
		KeyExpiry:            "Validade",
		KeyExpiryPlaceholder: "ex. 12/2026",
		KeyCount:             "Etiquetas",
		KeyPrint:             "Imprimir",
		KeyPrinting:          "Imprimindo...",
		KeySavePreview:       "Salvar prévia",
		KeyOpenInBrowser:     "Abrir no navegador",
		KeyNoSelection:       "Selecione um produto para ver a etiqueta",
		KeyPrintResult:       "Impressão",
		KeyPreviewSaved:      "Prévia salva em %s",
		KeyNothingToSave:     "Nenhuma prévia para salvar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyServerURL:         "URL do servidor de etiquetas",
		KeyDebounce:          "Atraso da busca (ms)",
		KeyTimeout:           "Tempo limite (s)",
		KeySaveDirectory:     "Diretório das prévias",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas. Servidor e idioma valem após reiniciar.",
		KeyInvalidServerURL:  "URL do servidor inválida",
		KeyPrintSuccess:      "%d etiqueta(s) impressa(s)",
		KeyPrintPartial:      "%d de %d etiqueta(s) impressa(s). Erros: %s",
		KeyPrintFailed:       "Falha na impressão: %s",
		KeySearchFailed:      "Falha na busca: %s",
		KeyPreviewFailed:     "Falha na prévia: %s",
		KeyNoErrorDetails:    "sem detalhes do servidor",
	}
}

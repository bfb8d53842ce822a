package ui

import (
	"fmt"
	"strings"
	"testing"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("language %q has no texts", lang)
		}
		for key := range english {
			if _, ok := texts[key]; !ok {
				t.Errorf("language %q missing key %q", lang, key)
			}
		}
	}
}

func TestLocalization_FormatVerbsMatch(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for lang, texts := range l.texts {
		for key, text := range texts {
			if strings.Count(text, "%") != strings.Count(english[key], "%") {
				t.Errorf("%s/%s: verb count differs from English", lang, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyPrint); got != "Печать" {
		t.Errorf("GetText(KeyPrint) = %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("unknown language changed current language to %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system language = %q, want en", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("missing key fallback = %q", got)
	}
}

func TestLocalization_ConsoleMessages(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	msgs := l.ConsoleMessages()
	if msgs.PrintLabel != "Imprimir" || msgs.BusyLabel != "Imprimindo..." {
		t.Errorf("labels = %q/%q", msgs.PrintLabel, msgs.BusyLabel)
	}
	if got := fmt.Sprintf(msgs.PrintPartial, 2, 5, "jam"); got != "2 de 5 etiqueta(s) impressa(s). Erros: jam" {
		t.Errorf("PrintPartial = %q", got)
	}
}

package console

import (
	"context"
	"time"

	"github.com/labelkit/label-console/internal/model"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

// fakeScheduler records timers; tests fire them explicitly
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) fireAll() {
	timers := append([]*fakeTimer(nil), s.timers...)
	for _, t := range timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

// taskQueue defers async work so tests control completion order
type taskQueue struct {
	tasks []func()
}

func (q *taskQueue) run(f func()) {
	q.tasks = append(q.tasks, f)
}

func (q *taskQueue) runAt(i int) {
	f := q.tasks[i]
	q.tasks[i] = func() {}
	f()
}

func (q *taskQueue) drain() {
	for len(q.tasks) > 0 {
		f := q.tasks[0]
		q.tasks = q.tasks[1:]
		f()
	}
}

type previewCall struct {
	barcode, store, exp string
}

type fakeBackend struct {
	searchCalls  []string
	previewCalls []previewCall
	printCalls   []model.PrintRequest

	searchFn  func(query string) ([]model.Product, error)
	previewFn func(barcode string) ([]byte, error)
	printFn   func(req model.PrintRequest) (*model.PrintResult, error)
}

func (b *fakeBackend) SearchProducts(_ context.Context, query string) ([]model.Product, error) {
	b.searchCalls = append(b.searchCalls, query)
	if b.searchFn != nil {
		return b.searchFn(query)
	}
	return nil, nil
}

func (b *fakeBackend) PreviewURL(barcode, store, exp string) string {
	return "http://labels.test/preview?barcode=" + barcode + "&store=" + store + "&exp=" + exp
}

func (b *fakeBackend) FetchPreview(_ context.Context, barcode, store, exp string) ([]byte, error) {
	b.previewCalls = append(b.previewCalls, previewCall{barcode, store, exp})
	if b.previewFn != nil {
		return b.previewFn(barcode)
	}
	return []byte("png:" + barcode + ":" + store + ":" + exp), nil
}

func (b *fakeBackend) Print(_ context.Context, req model.PrintRequest) (*model.PrintResult, error) {
	b.printCalls = append(b.printCalls, req)
	if b.printFn != nil {
		return b.printFn(req)
	}
	return &model.PrintResult{OK: true, Printed: req.Count}, nil
}

type buttonState struct {
	enabled bool
	label   string
}

type notification struct {
	kind    model.NotifyKind
	message string
}

// fakeView records everything the controller asks it to render
type fakeView struct {
	suggestions        []model.Product
	suggestionsVisible bool
	renderCount        int
	searchText         string
	previewSources     []string
	previewImage       []byte
	meta               string
	button             buttonState
	buttonHistory      []buttonState
	inlineError        string
	notifications      []notification
}

func (v *fakeView) RenderSuggestions(products []model.Product) {
	v.suggestions = products
	v.suggestionsVisible = true
	v.renderCount++
}

func (v *fakeView) HideSuggestions() {
	v.suggestions = nil
	v.suggestionsVisible = false
}

func (v *fakeView) SetSearchText(text string) { v.searchText = text }

func (v *fakeView) SetPreviewSource(url string) {
	v.previewSources = append(v.previewSources, url)
}

func (v *fakeView) SetPreviewImage(png []byte) { v.previewImage = png }

func (v *fakeView) SetMeta(text string) { v.meta = text }

func (v *fakeView) SetPrintButtonState(enabled bool, label string) {
	v.button = buttonState{enabled, label}
	v.buttonHistory = append(v.buttonHistory, v.button)
}

func (v *fakeView) ShowInlineError(message string) { v.inlineError = message }

func (v *fakeView) ClearInlineError() { v.inlineError = "" }

func (v *fakeView) Notify(kind model.NotifyKind, message string) {
	v.notifications = append(v.notifications, notification{kind, message})
}

func (v *fakeView) lastNotification() notification {
	if len(v.notifications) == 0 {
		return notification{}
	}
	return v.notifications[len(v.notifications)-1]
}

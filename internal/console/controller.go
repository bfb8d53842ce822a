package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/labelapi"
	"github.com/labelkit/label-console/internal/model"
)

// Defaults for the controller timing
const (
	DefaultSearchDebounce = 180 * time.Millisecond
	DefaultRequestTimeout = labelapi.DefaultTimeout
)

// Controller is the label print console state machine
type Controller struct {
	backend labelapi.Backend
	view    View
	logger  *zap.Logger
	msgs    Messages

	debounce  time.Duration
	timeout   time.Duration
	scheduler Scheduler
	dispatch  func(func())
	async     func(func())

	selected    *model.Product
	suggestions []model.Product
	storeName   string
	expiry      string
	countText   string
	state       model.SubmitState
	preview     []byte

	searchTimer Timer
	searchSeq   uint64
	previewSeq  uint64
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMessages replaces the user-facing texts
func WithMessages(msgs Messages) Option {
	return func(c *Controller) {
		c.msgs = msgs
	}
}

// WithSearchDebounce sets the quiet period before a search is sent
func WithSearchDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.debounce = d
		}
	}
}

// WithRequestTimeout bounds every backend call
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithScheduler replaces the debounce timer source
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.scheduler = s
	}
}

// WithDispatcher sets how results are handed back to the UI goroutine
func WithDispatcher(dispatch func(func())) Option {
	return func(c *Controller) {
		c.dispatch = dispatch
	}
}

// WithAsync sets how backend calls are run off the UI goroutine
func WithAsync(async func(func())) Option {
	return func(c *Controller) {
		c.async = async
	}
}

// WithStoreName sets the initial store name field value
func WithStoreName(name string) Option {
	return func(c *Controller) {
		c.storeName = name
	}
}

// NewController creates a controller bound to backend and view
func NewController(backend labelapi.Backend, view View, opts ...Option) *Controller {
	c := &Controller{
		backend:   backend,
		view:      view,
		logger:    zap.NewNop(),
		msgs:      DefaultMessages(),
		debounce:  DefaultSearchDebounce,
		timeout:   DefaultRequestTimeout,
		scheduler: RealScheduler(),
		dispatch:  func(f func()) { f() },
		async:     func(f func()) { go f() },
		countText: "1",
		state:     model.SubmitStateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.view.SetPrintButtonState(false, c.msgs.PrintLabel)
	return c
}

// Selected returns the current selection
func (c *Controller) Selected() (model.Product, bool) {
	if c.selected == nil {
		return model.Product{}, false
	}
	return *c.selected, true
}

// State returns the submit state of the print control
func (c *Controller) State() model.SubmitState {
	return c.state
}

// PreviewImage returns the last preview image received for the selection
func (c *Controller) PreviewImage() []byte {
	return c.preview
}

// Suggestions returns the rows currently offered to the user
func (c *Controller) Suggestions() []model.Product {
	return c.suggestions
}

// SearchChanged handles an edit of the search box
func (c *Controller) SearchChanged(text string) {
	c.selected = nil
	c.view.SetPrintButtonState(false, c.buttonLabel())

	c.stopSearchTimer()
	c.searchSeq++
	seq := c.searchSeq

	query := strings.TrimSpace(text)
	if query == "" {
		c.suggestions = nil
		c.view.HideSuggestions()
		return
	}

	c.searchTimer = c.scheduler.AfterFunc(c.debounce, func() {
		c.dispatch(func() { c.runSearch(seq, query) })
	})
}

func (c *Controller) runSearch(seq uint64, query string) {
	if seq != c.searchSeq {
		return
	}
	c.searchTimer = nil

	c.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		products, err := c.backend.SearchProducts(ctx, query)
		c.dispatch(func() { c.applySearch(seq, query, products, err) })
	})
}

func (c *Controller) applySearch(seq uint64, query string, products []model.Product, err error) {
	if seq != c.searchSeq {
		c.logger.Debug("discarding stale search response", zap.String("query", query))
		return
	}

	if err != nil {
		c.logger.Warn("product search failed", zap.String("query", query), zap.Error(err))
		c.suggestions = nil
		c.view.HideSuggestions()
		c.view.ShowInlineError(fmt.Sprintf(c.msgs.SearchFailed, labelapi.Describe(err)))
		return
	}

	c.view.ClearInlineError()
	if len(products) == 0 {
		c.suggestions = nil
		c.view.HideSuggestions()
		return
	}

	c.suggestions = products
	c.view.RenderSuggestions(products)
}

// SelectSuggestion selects the suggestion row at index
func (c *Controller) SelectSuggestion(index int) {
	if index < 0 || index >= len(c.suggestions) {
		return
	}
	c.SelectProduct(c.suggestions[index])
}

// SelectProduct makes p the current selection
func (c *Controller) SelectProduct(p model.Product) {
	// a pending or in-flight search must not reopen the list
	c.stopSearchTimer()
	c.searchSeq++

	c.selected = &p
	c.suggestions = nil
	c.view.SetSearchText(p.Name)
	c.view.HideSuggestions()
	c.view.ClearInlineError()
	if !c.state.IsBusy() {
		c.view.SetPrintButtonState(true, c.msgs.PrintLabel)
	}

	c.logger.Info("product selected", zap.String("barcode", p.Barcode), zap.String("name", p.Name))
	c.refreshPreview()
}

// StoreChanged handles an edit of the store name field
func (c *Controller) StoreChanged(text string) {
	c.storeName = text
	c.refreshPreview()
}

// ExpiryChanged handles an edit of the expiry field
func (c *Controller) ExpiryChanged(text string) {
	c.expiry = text
	c.refreshPreview()
}

// CountChanged handles an edit of the label count field
func (c *Controller) CountChanged(text string) {
	c.countText = text
}

func (c *Controller) refreshPreview() {
	if c.selected == nil {
		return
	}

	p := *c.selected
	store := strings.TrimSpace(c.storeName)
	exp := strings.TrimSpace(c.expiry)

	c.previewSeq++
	seq := c.previewSeq

	c.view.SetPreviewSource(c.backend.PreviewURL(p.Barcode, store, exp))
	c.view.SetMeta(p.MetaText())

	c.async(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		data, err := c.backend.FetchPreview(ctx, p.Barcode, store, exp)
		c.dispatch(func() { c.applyPreview(seq, p.Barcode, data, err) })
	})
}

func (c *Controller) applyPreview(seq uint64, barcode string, data []byte, err error) {
	if seq != c.previewSeq {
		return
	}

	if err != nil {
		c.logger.Warn("preview fetch failed", zap.String("barcode", barcode), zap.Error(err))
		c.view.ShowInlineError(fmt.Sprintf(c.msgs.PreviewFailed, labelapi.Describe(err)))
		return
	}

	c.preview = data
	c.view.SetPreviewImage(data)
}

// Print submits a print request for the current selection
func (c *Controller) Print() {
	if c.selected == nil || c.state.IsBusy() {
		return
	}

	req := model.NewPrintRequest(*c.selected, c.countText, strings.TrimSpace(c.storeName), strings.TrimSpace(c.expiry))

	c.state = model.SubmitStateSubmitting
	c.view.SetPrintButtonState(false, c.msgs.BusyLabel)
	c.logger.Info("submitting print request",
		zap.String("barcode", req.Barcode),
		zap.Int("count", req.Count),
		zap.String("store", req.StoreName))

	c.async(func() {
		var result *model.PrintResult
		var err error

		defer func() {
			if r := recover(); r != nil {
				result, err = nil, fmt.Errorf("print aborted: %v", r)
			}
			c.dispatch(func() { c.finishPrint(req, result, err) })
		}()

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		result, err = c.backend.Print(ctx, req)
	})
}

func (c *Controller) finishPrint(req model.PrintRequest, result *model.PrintResult, err error) {
	defer func() {
		c.state = model.SubmitStateIdle
		c.view.SetPrintButtonState(c.selected != nil, c.msgs.PrintLabel)
	}()

	switch {
	case err != nil:
		c.logger.Error("print request failed", zap.String("barcode", req.Barcode), zap.Error(err))
		c.view.Notify(model.NotifyFailure, fmt.Sprintf(c.msgs.PrintFailed, labelapi.Describe(err)))

	case result == nil:
		c.view.Notify(model.NotifyFailure, fmt.Sprintf(c.msgs.PrintFailed, c.msgs.NoErrorDetails))

	case result.OK:
		c.logger.Info("labels printed", zap.String("barcode", req.Barcode), zap.Int("printed", result.Printed))
		c.view.Notify(model.NotifySuccess, fmt.Sprintf(c.msgs.PrintSuccess, result.Printed))

	default:
		details := result.JoinedErrors()
		if details == "" {
			details = c.msgs.NoErrorDetails
		}
		c.logger.Warn("print incomplete",
			zap.String("barcode", req.Barcode),
			zap.Int("printed", result.Printed),
			zap.Int("requested", req.Count),
			zap.Strings("errors", result.Messages()))
		c.view.Notify(model.NotifyFailure, fmt.Sprintf(c.msgs.PrintPartial, result.Printed, req.Count, details))
	}
}

// SetMessages switches the user-facing texts and relabels the print control
func (c *Controller) SetMessages(msgs Messages) {
	c.msgs = msgs
	c.view.SetPrintButtonState(c.selected != nil && !c.state.IsBusy(), c.buttonLabel())
}

// Close stops any pending search timer
func (c *Controller) Close() {
	c.stopSearchTimer()
}

func (c *Controller) stopSearchTimer() {
	if c.searchTimer != nil {
		c.searchTimer.Stop()
		c.searchTimer = nil
	}
}

func (c *Controller) buttonLabel() string {
	if c.state.IsBusy() {
		return c.msgs.BusyLabel
	}
	return c.msgs.PrintLabel
}

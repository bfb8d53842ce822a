package labelapi

import (
	"context"

	"github.com/labelkit/label-console/internal/model"
)

// Backend defines the operations the console needs from the label server.
type Backend interface {
	// SearchProducts returns products whose name matches query
	SearchProducts(ctx context.Context, query string) ([]model.Product, error)

	// PreviewURL returns the preview image URL for the given label fields
	PreviewURL(barcode, store, exp string) string

	// FetchPreview downloads the PNG preview for the given label fields
	FetchPreview(ctx context.Context, barcode, store, exp string) ([]byte, error)

	// Print submits a print request. A non-nil result with OK=false is an
	// application-level failure; an error means no usable response arrived.
	Print(ctx context.Context, req model.PrintRequest) (*model.PrintResult, error)
}

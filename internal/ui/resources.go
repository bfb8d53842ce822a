package ui

import (
	"fmt"
	"sync/atomic"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "label-console.png"
)

var previewResourceSeq atomic.Uint64

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// NewPreviewResource wraps PNG bytes in a uniquely named resource; Fyne
// caches decoded images by resource name.
func NewPreviewResource(png []byte) fyne.Resource {
	return fyne.NewStaticResource(fmt.Sprintf("label-preview-%d.png", previewResourceSeq.Add(1)), png)
}

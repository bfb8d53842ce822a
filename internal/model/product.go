package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Product is a catalog entry as returned by the label server
type Product struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Measure     string  `json:"measure"`
	Barcode     string  `json:"barcode"`
	MRP         float64 `json:"mrp"`
	RetailPrice float64 `json:"retail_price"`
}

// FormatNumber renders a number the way the label server prints prices:
// integers without a fractional part, everything else in shortest form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// QuantityMeasure returns quantity and measure joined, e.g. "500 G"
func (p Product) QuantityMeasure() string {
	return strings.TrimSpace(FormatNumber(p.Quantity) + " " + p.Measure)
}

// SuggestionText returns the one-line text shown for a search suggestion row
func (p Product) SuggestionText() string {
	return fmt.Sprintf("%s%s%s%s₹%s", p.Name, MiddleDotSeparator, p.QuantityMeasure(), MiddleDotSeparator, FormatNumber(p.RetailPrice))
}

// MetaText returns the metadata shown next to the preview image
func (p Product) MetaText() string {
	var b strings.Builder
	b.WriteString("Barcode: " + p.Barcode)
	b.WriteString(MiddleDotSeparator + "Qty: " + p.QuantityMeasure())
	b.WriteString(MiddleDotSeparator + "MRP: ₹" + FormatNumber(p.MRP))
	b.WriteString(MiddleDotSeparator + "RP: ₹" + FormatNumber(p.RetailPrice))
	return b.String()
}

// MiddleDotSeparator separates fields in one-line product summaries
const MiddleDotSeparator = " · "

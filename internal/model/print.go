package model

import (
	"strconv"
	"strings"
)

// DefaultLabelCount is used whenever the count field cannot be parsed
const DefaultLabelCount = 1

// PrintRequest is the body of POST /api/print
type PrintRequest struct {
	Barcode   string `json:"barcode" validate:"required"`
	Count     int    `json:"count" validate:"min=1"`
	StoreName string `json:"store_name"`
	Exp       string `json:"exp"`
}

// PrintResult is the response of POST /api/print.
// Error carries the single-message form the server uses for rejected requests.
type PrintResult struct {
	OK      bool     `json:"ok"`
	Printed int      `json:"printed"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Messages returns all server error messages, including the single Error field
func (r *PrintResult) Messages() []string {
	msgs := make([]string, 0, len(r.Errors)+1)
	for _, m := range r.Errors {
		if m = strings.TrimSpace(m); m != "" {
			msgs = append(msgs, m)
		}
	}
	if m := strings.TrimSpace(r.Error); m != "" {
		msgs = append(msgs, m)
	}
	return msgs
}

// JoinedErrors returns Messages joined with "; "
func (r *PrintResult) JoinedErrors() string {
	return strings.Join(r.Messages(), "; ")
}

// ParseLabelCount reads the count field like a browser parseInt: optional
// sign followed by leading digits, anything after them ignored. Unparsable or
// non-positive values yield DefaultLabelCount.
func ParseLabelCount(text string) int {
	s := strings.TrimSpace(text)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultLabelCount
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < DefaultLabelCount {
		return DefaultLabelCount
	}
	return n
}

// NewPrintRequest builds a request for the given product and form values
func NewPrintRequest(p Product, countText, storeName, exp string) PrintRequest {
	return PrintRequest{
		Barcode:   p.Barcode,
		Count:     ParseLabelCount(countText),
		StoreName: storeName,
		Exp:       exp,
	}
}

// Package pagination is the single place page/limit query parameters are
// normalized. Services use it to compute the query window and handlers use
// it to build response metadata, so the two can never disagree on the
// effective limit.
package pagination

import (
	"errors"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrInvalidPage is returned when a page parameter parses to zero or a
// negative number. A non-numeric page silently falls back to the default;
// an explicitly negative one is malformed input.
var ErrInvalidPage = errors.New("page must be a positive integer")

// Params is a normalized pagination window.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw page/limit query values.
//   - empty or non-numeric page  -> DefaultPage
//   - numeric page <= 0          -> ErrInvalidPage
//   - empty, non-numeric or non-positive limit -> DefaultLimit
//   - limit > MaxLimit           -> MaxLimit
func Parse(pageStr, limitStr string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			if page <= 0 {
				return Params{}, ErrInvalidPage
			}
			p.Page = page
		}
	}

	if limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			if limit > MaxLimit {
				limit = MaxLimit
			}
			p.Limit = limit
		}
	}

	return p, nil
}

// Offset is the number of rows to skip for the current window.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block of a list response.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewMeta builds response metadata from the normalized params and the full
// matching count. Params always carries a positive limit, so the ceiling
// division cannot fault.
func (p Params) NewMeta(total int64) Meta {
	return Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}
}

package models

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used when the caller does not choose one.
const DefaultPageSize = 10

// PageSizeOptions are the page sizes offered by the search view.
var PageSizeOptions = []int{6, 9, 12, 24}

// SearchFilter is the transient, client-only search state: optional bounds
// plus a zero-based pagination cursor. Bounds are kept as typed by the user
// and omitted from the query when blank.
type SearchFilter struct {
	Name        string `validate:"omitempty,max=100"`
	MinTemp     string `validate:"omitempty,numeric"`
	MaxTemp     string `validate:"omitempty,numeric"`
	MinDistance string `validate:"omitempty,numeric"`
	MaxDistance string `validate:"omitempty,numeric"`
	MinYear     string `validate:"omitempty,number"`
	MaxYear     string `validate:"omitempty,number"`

	Page int `validate:"gte=0"`
	Size int `validate:"omitempty,oneof=6 9 10 12 24"`
}

// SameBounds reports whether both filters select the same planets, ignoring
// the pagination cursor.
func (f SearchFilter) SameBounds(other SearchFilter) bool {
	a, b := f, other
	a.Page, a.Size, b.Page, b.Size = 0, 0, 0, 0
	return a.trimmed() == b.trimmed()
}

// EffectiveSize returns Size, or DefaultPageSize when unset.
func (f SearchFilter) EffectiveSize() int {
	if f.Size <= 0 {
		return DefaultPageSize
	}
	return f.Size
}

// QueryParams renders the filter as query parameters for
// GET /exoplanets/summary. Blank bounds are not sent.
func (f SearchFilter) QueryParams() url.Values {
	t := f.trimmed()
	q := url.Values{}

	add := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	add("name", t.Name)
	add("minTemp", t.MinTemp)
	add("maxTemp", t.MaxTemp)
	add("minDistance", t.MinDistance)
	add("maxDistance", t.MaxDistance)
	add("minYear", t.MinYear)
	add("maxYear", t.MaxYear)

	page := f.Page
	if page < 0 {
		page = 0
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(f.EffectiveSize()))

	return q
}

func (f SearchFilter) trimmed() SearchFilter {
	f.Name = strings.TrimSpace(f.Name)
	f.MinTemp = strings.TrimSpace(f.MinTemp)
	f.MaxTemp = strings.TrimSpace(f.MaxTemp)
	f.MinDistance = strings.TrimSpace(f.MinDistance)
	f.MaxDistance = strings.TrimSpace(f.MaxDistance)
	f.MinYear = strings.TrimSpace(f.MinYear)
	f.MaxYear = strings.TrimSpace(f.MaxYear)
	return f
}

// Package pagination turns optional page/totalItemsPage query values into a
// store window and a response envelope.
package pagination

import (
	"strconv"

	"github.com/junaidrashid-git/armory-api/store"
)

const (
	DefaultPage = 1
	DefaultSize = 10
)

// Request is a parsed page request. The zero value disables windowing.
type Request struct {
	Enabled bool
	Page    int
	Size    int
}

// Parse reads the raw query values. When both are empty no windowing is
// applied; otherwise bad or non-positive values fall back to the defaults.
func Parse(page, size string) Request {
	if page == "" && size == "" {
		return Request{}
	}
	return Request{
		Enabled: true,
		Page:    positiveOr(page, DefaultPage),
		Size:    positiveOr(size, DefaultSize),
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Bounds clamps the page against total and returns the resolved page, the
// page count and the store window. An empty result always resolves to page 1.
func (r Request) Bounds(total int64) (page, totalPages int, w store.Window) {
	if !r.Enabled {
		return 1, 1, store.Window{}
	}

	totalPages = int((total + int64(r.Size) - 1) / int64(r.Size))
	page = r.Page
	switch {
	case totalPages == 0:
		page = 1
	case page > totalPages:
		page = totalPages
	}
	return page, totalPages, store.Window{Offset: (page - 1) * r.Size, Limit: r.Size}
}

// Page is the list response envelope.
type Page[T any] struct {
	Items          []T   `json:"items"`
	TotalItems     int64 `json:"totalItems"`
	TotalPages     int   `json:"totalPages"`
	Page           int   `json:"page"`
	TotalItemsPage int   `json:"totalItemsPage"`
}

// Lister fetches one window of T and the total match count.
type Lister[T any] func(w store.Window) ([]T, int64, error)

// Fetch runs list with the window resolved from r. Without windowing the
// whole result is a single page. When the requested page lies past the end
// it is fetched again at the clamped position.
func Fetch[T any](r Request, list Lister[T]) (*Page[T], error) {
	if !r.Enabled {
		items, total, err := list(store.Window{})
		if err != nil {
			return nil, err
		}
		return envelope(items, total, 1, 1, len(items)), nil
	}

	w := store.Window{Offset: (r.Page - 1) * r.Size, Limit: r.Size}
	items, total, err := list(w)
	if err != nil {
		return nil, err
	}

	page, totalPages, clamped := r.Bounds(total)
	if clamped != w {
		if items, total, err = list(clamped); err != nil {
			return nil, err
		}
	}
	return envelope(items, total, page, totalPages, r.Size), nil
}

func envelope[T any](items []T, total int64, page, totalPages, size int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:          items,
		TotalItems:     total,
		TotalPages:     totalPages,
		Page:           page,
		TotalItemsPage: size,
	}
}

// Map converts the items of a page, keeping its counters.
func Map[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := make([]U, len(p.Items))
	for i, item := range p.Items {
		out[i] = fn(item)
	}
	return &Page[U]{
		Items:          out,
		TotalItems:     p.TotalItems,
		TotalPages:     p.TotalPages,
		Page:           p.Page,
		TotalItemsPage: p.TotalItemsPage,
	}
}

package listing

import (
	"strconv"
	"strings"
)

const DefaultPageSize = 10

// AllRows is the page size meaning "everything on one page".
const AllRows = 0

var pageSizes = map[int]bool{10: true, 20: true, 50: true, 100: true, 200: true}

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Paginate returns the requested page of items. The page number is clamped
// into [1, max(1, ceil(total/size))]; it never fails.
func Paginate[T any](items []T, size, page int) Page[T] {
	total := len(items)
	if size <= AllRows {
		size = total
		if size == 0 {
			size = DefaultPageSize
		}
	}

	totalPages := 1
	if total > 0 {
		totalPages = (total + size - 1) / size
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ParsePageSize accepts 10/20/50/100/200 or "all"; anything else is the default.
func ParsePageSize(s string) int {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "all" {
		return AllRows
	}
	n, err := strconv.Atoi(s)
	if err != nil || !pageSizes[n] {
		return DefaultPageSize
	}
	return n
}

// ParsePage is lenient; out of range values are clamped by Paginate.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return n
}

// Matches reports whether query is a case-insensitive substring of any field.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func Search[T any](items []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return items
	}
	return Filter(items, func(it T) bool {
		return Matches(query, fields(it)...)
	})
}

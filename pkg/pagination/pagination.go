package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// PageRequest selects one page of a result set.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
	if r.PageSize < 1 {
		r.PageSize = DefaultPageSize
	}
	if maxPage := math.MaxInt / r.PageSize; r.Page > maxPage {
		r.Page = maxPage
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery parses the page and page_size URL query parameters.
// Missing or malformed values fall back to the config defaults.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Slice pages items in memory. The request must be normalized. A page past
// the end yields an empty Data slice with the real totals.
func Slice[T any](items []T, req PageRequest) PageResult[T] {
	total := len(items)

	start := total
	if pages := (total + req.PageSize - 1) / req.PageSize; req.Page >= 1 && req.Page <= pages {
		start = req.Offset()
	}
	end := min(start+req.PageSize, total)

	return NewPageResult(items[start:end:end], total, req.Page, req.PageSize)
}

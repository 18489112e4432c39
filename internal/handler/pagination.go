package handler

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// PaginationMeta defines the structure for pagination metadata.
type PaginationMeta struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	PageSize     int   `json:"page_size"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     int   `json:"next_page,omitempty"`
	PreviousPage int   `json:"previous_page,omitempty"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginationMeta clamps page into [1, total_pages] and fills in the navigation fields.
// An empty result set still has one (empty) page.
func NewPaginationMeta(totalItems int64, page, size int) PaginationMeta {
	if size <= 0 {
		size = 1
	}
	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	meta := PaginationMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    size,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
	if meta.HasNext {
		meta.NextPage = page + 1
	}
	if meta.HasPrevious {
		meta.PreviousPage = page - 1
	}
	return meta
}

// ParsePage reads a raw "page" query value. Anything that is not a positive integer means the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate counts query, clamps rawPage and fetches one page of rows.
// scopes are applied to the fetch only, so preloads never reach the count.
func Paginate[T any](query *gorm.DB, rawPage string, size int, scopes ...func(*gorm.DB) *gorm.DB) (*PaginatedResponse[T], error) {
	var totalItems int64
	if err := query.Session(&gorm.Session{}).Count(&totalItems).Error; err != nil {
		return nil, fmt.Errorf("count page: %w", err)
	}

	meta := NewPaginationMeta(totalItems, ParsePage(rawPage), size)
	results := make([]T, 0, meta.PageSize)
	if totalItems > 0 {
		offset := (meta.CurrentPage - 1) * meta.PageSize
		if err := query.Session(&gorm.Session{}).Scopes(scopes...).Offset(offset).Limit(meta.PageSize).Find(&results).Error; err != nil {
			return nil, fmt.Errorf("fetch page: %w", err)
		}
	}

	return &PaginatedResponse[T]{Data: results, Meta: meta}, nil
}

// mapPage converts the rows of a page, keeping its metadata.
func mapPage[T, R any](page *PaginatedResponse[T], fn func(T) R) PaginatedResponse[R] {
	out := make([]R, 0, len(page.Data))
	for _, item := range page.Data {
		out = append(out, fn(item))
	}
	return PaginatedResponse[R]{Data: out, Meta: page.Meta}
}

package helpers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageFunc fetches one page of results at the given offset.
type PageFunc[T any] func(ctx context.Context, skip, limit int) ([]T, error)

// CollectPages drains an offset-paginated endpoint: it requests pages of
// pageSize until a short page (fewer items than requested) signals the end,
// and returns all items in request order.
func CollectPages[T any](ctx context.Context, pageSize int, fetch PageFunc[T]) ([]T, error) {
	if pageSize <= 0 || pageSize > MaxLimit {
		pageSize = DefaultLimit
	}

	var all []T
	skip := 0
	for {
		page, err := fetch(ctx, skip, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
		skip += pageSize
	}
}

// ParseSkipLimit extracts and validates skip/limit query parameters.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skipStr := c.DefaultQuery("skip", "0")
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		skip = 0
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return skip, limit
}

// SliceWindow clamps a skip/limit window to a slice of totalItems elements
// and returns the start and end indices.
func SliceWindow(skip, limit, totalItems int) (start, end int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	start = skip
	end = skip + limit

	if start >= totalItems {
		return totalItems, totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tunde/campusfound/internal/app/models/dto"
)

const (
	// PageSize is the fixed listing page size
	PageSize = 10

	// DefaultPage is 1-based
	DefaultPage = 1
)

// ParsePageParam extracts the 1-based page number from the request, defaulting
// to page 1 for missing or invalid values.
func ParsePageParam(c *gin.Context) int {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// TotalPages computes the page count for a result set.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return int(math.Ceil(float64(totalItems) / float64(size)))
}

// ClampPage clamps a requested 1-based page number into the valid range for the
// result set. A request beyond the last page returns the last page, never an
// empty page.
func ClampPage(page int, totalItems int64, size int) int {
	if page < 1 {
		page = DefaultPage
	}
	if last := TotalPages(totalItems, size); page > last {
		return last
	}
	return page
}

// OffsetFor converts a clamped 1-based page number to a SQL offset.
func OffsetFor(page, size int) uint64 {
	if page < 1 {
		page = DefaultPage
	}
	if size <= 0 {
		size = PageSize
	}
	return uint64((page - 1) * size)
}

// NewPaginationInfo creates a standard PaginationInfo DTO for a clamped page.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = PageSize
	}
	page = ClampPage(page, totalItems, size)

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  TotalPages(totalItems, size),
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

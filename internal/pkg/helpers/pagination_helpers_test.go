package helpers

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalItems int64
		size       int
		want       int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.totalItems, tt.size); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.totalItems, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalItems int64
		want       int
	}{
		{"first page", 1, 25, 1},
		{"middle page", 2, 25, 2},
		{"last page", 3, 25, 3},
		{"beyond last clamps", 99, 25, 3},
		{"beyond last on empty set", 5, 0, 1},
		{"zero page defaults", 0, 25, 1},
		{"negative page defaults", -3, 25, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.totalItems, PageSize); got != tt.want {
				t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", tt.page, tt.totalItems, PageSize, got, tt.want)
			}
		})
	}
}

func TestOffsetFor(t *testing.T) {
	if got := OffsetFor(1, PageSize); got != 0 {
		t.Errorf("OffsetFor(1) = %d, want 0", got)
	}
	if got := OffsetFor(3, PageSize); got != 20 {
		t.Errorf("OffsetFor(3) = %d, want 20", got)
	}
	if got := OffsetFor(0, PageSize); got != 0 {
		t.Errorf("OffsetFor(0) = %d, want 0", got)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 99, PageSize)
	if info.CurrentPage != 3 {
		t.Errorf("expected current page clamped to 3, got %d", info.CurrentPage)
	}
	if info.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", info.TotalPages)
	}
	if info.TotalItems != 25 {
		t.Errorf("expected 25 total items, got %d", info.TotalItems)
	}
	if info.PageSize != PageSize {
		t.Errorf("expected page size %d, got %d", PageSize, info.PageSize)
	}
}

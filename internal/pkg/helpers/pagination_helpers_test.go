package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page default size", 1, 0, 0, DefaultPageSize},
		{"second page", 2, 10, 10, 10},
		{"zero page clamps to first", 0, 10, 0, 10},
		{"oversized page size falls back", 1, MaxPageSize + 1, 0, DefaultPageSize},
		{"max page size accepted", 3, MaxPageSize, 200, MaxPageSize},
	}

	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, tt.size)
		if offset != tt.wantOffset || limit != tt.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tt.name, offset, limit, tt.wantOffset, tt.wantLimit)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(135, 1, 20)
	if p.Pages != 7 || p.Total != 135 || p.Page != 1 || p.Limit != 20 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	// Page beyond the last clamps
	p = NewPagination(10, 5, 20)
	if p.Page != 1 || p.Pages != 1 {
		t.Fatalf("expected clamp to last page, got %+v", p)
	}

	// An empty list still reports one page
	p = NewPagination(0, 1, 20)
	if p.Pages != 1 || p.Total != 0 {
		t.Fatalf("unexpected empty pagination: %+v", p)
	}
}

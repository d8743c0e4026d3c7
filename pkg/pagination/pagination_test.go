package pagination_test

import (
	"testing"

	"kejani_backend/pkg/pagination"
)

func TestWindow(t *testing.T) {
	cases := []struct {
		page, limit int
		from, to    int
	}{
		{1, 10, 0, 9},
		{2, 10, 10, 19},
		{3, 25, 50, 74},
		{1, 1, 0, 0},
	}
	for _, tc := range cases {
		from, to := pagination.Window(tc.page, tc.limit)
		if from != tc.from || to != tc.to {
			t.Errorf("Window(%d, %d) = [%d, %d], want [%d, %d]",
				tc.page, tc.limit, from, to, tc.from, tc.to)
		}
	}
}

func TestOffset(t *testing.T) {
	if got := pagination.Offset(1, 10); got != 0 {
		t.Fatalf("Offset(1, 10) = %d", got)
	}
	if got := pagination.Offset(4, 25); got != 75 {
		t.Fatalf("Offset(4, 25) = %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 25, 4},
	}
	for _, tc := range cases {
		if got := pagination.TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

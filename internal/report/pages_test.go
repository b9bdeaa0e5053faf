package report

import (
	"reflect"
	"strconv"
	"testing"
)

func TestBuildPageList(t *testing.T) {
	cases := []struct {
		page, pages int
		want        []string
	}{
		{1, 10, []string{"1", "2", "3", "…", "10"}},
		{3, 10, []string{"1", "2", "3", "…", "10"}},
		{10, 10, []string{"1", "…", "8", "9", "10"}},
		{8, 10, []string{"1", "…", "8", "9", "10"}},
		{5, 10, []string{"1", "…", "4", "5", "6", "…", "10"}},
		{3, 3, []string{"1", "2", "3"}},
		{1, 1, []string{"1"}},
		{1, 5, []string{"1", "2", "3", "4", "5"}},
		{4, 10, []string{"1", "…", "3", "4", "5", "…", "10"}},
	}
	for _, tc := range cases {
		got := BuildPageList(tc.page, tc.pages)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("BuildPageList(%d, %d) = %v, want %v", tc.page, tc.pages, got, tc.want)
		}
	}
}

func TestBuildPageListMonotoneNoDuplicates(t *testing.T) {
	for pages := 1; pages <= 30; pages++ {
		for page := 1; page <= pages; page++ {
			items := BuildPageList(page, pages)
			prev := 0
			prevGap := false
			for i, item := range items {
				if item == Ellipsis {
					if prevGap {
						t.Fatalf("page=%d pages=%d: consecutive ellipses in %v", page, pages, items)
					}
					prevGap = true
					continue
				}
				prevGap = false
				n, err := strconv.Atoi(item)
				if err != nil {
					t.Fatalf("page=%d pages=%d: bad item %q", page, pages, item)
				}
				if n <= prev {
					t.Fatalf("page=%d pages=%d: item %d at index %d not ascending in %v", page, pages, n, i, items)
				}
				if n < 1 || n > pages {
					t.Fatalf("page=%d pages=%d: item %d out of range", page, pages, n)
				}
				prev = n
			}
		}
	}
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		page  int
		want  Pagination
	}{
		{
			name:  "exact division",
			total: 18, limit: 9, page: 1,
			want: Pagination{CurrentPage: 1, TotalPages: 2, PrevPage: 1, NextPage: 2, Pages: []int{1, 2}},
		},
		{
			name:  "partial last page still counts",
			total: 19, limit: 9, page: 2,
			want: Pagination{CurrentPage: 2, TotalPages: 3, PrevPage: 1, NextPage: 3, Pages: []int{1, 2, 3}},
		},
		{
			name:  "empty listing yields no pages",
			total: 0, limit: 9, page: 1,
			want: Pagination{CurrentPage: 0, TotalPages: 0, PrevPage: 1, NextPage: 0, Pages: []int{}},
		},
		{
			name:  "page clamped to last",
			total: 10, limit: 9, page: 99,
			want: Pagination{CurrentPage: 2, TotalPages: 2, PrevPage: 1, NextPage: 2, Pages: []int{1, 2}},
		},
		{
			name:  "page clamped to first",
			total: 10, limit: 9, page: -3,
			want: Pagination{CurrentPage: 1, TotalPages: 2, PrevPage: 1, NextPage: 2, Pages: []int{1, 2}},
		},
		{
			name:  "prev clamps at first page",
			total: 27, limit: 9, page: 1,
			want: Pagination{CurrentPage: 1, TotalPages: 3, PrevPage: 1, NextPage: 2, Pages: []int{1, 2, 3}},
		},
		{
			name:  "next clamps at last page",
			total: 27, limit: 9, page: 3,
			want: Pagination{CurrentPage: 3, TotalPages: 3, PrevPage: 2, NextPage: 3, Pages: []int{1, 2, 3}},
		},
		{
			name:  "zero limit treated as one",
			total: 3, limit: 0, page: 1,
			want: Pagination{CurrentPage: 1, TotalPages: 3, PrevPage: 1, NextPage: 2, Pages: []int{1, 2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPagination(tt.total, tt.limit, tt.page))
		})
	}
}

package service

import (
	"testing"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestNormalizePaging(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name                string
		page, limit, def    int
		wantPage, wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, def: 20, wantPage: 1, wantLimit: 20},
		{name: "negative page", page: -3, limit: 5, def: 20, wantPage: 1, wantLimit: 5},
		{name: "limit capped", page: 2, limit: 100, def: 20, wantPage: 2, wantLimit: 20},
		{name: "passes through", page: 3, limit: 10, def: 20, wantPage: 3, wantLimit: 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page, limit := normalizePaging(tt.page, tt.limit, tt.def)
			require.Equal(t, tt.wantPage, page)
			require.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name               string
		page, limit, total int
		want               model.Pagination
	}{
		{
			name: "empty",
			page: 1, limit: 10, total: 0,
			want: model.Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0},
		},
		{
			name: "exact fit",
			page: 1, limit: 10, total: 20,
			want: model.Pagination{Page: 1, Limit: 10, Total: 20, Pages: 2},
		},
		{
			name: "partial last page",
			page: 2, limit: 10, total: 21,
			want: model.Pagination{Page: 2, Limit: 10, Total: 21, Pages: 3},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, paginate(tt.page, tt.limit, tt.total))
		})
	}
}

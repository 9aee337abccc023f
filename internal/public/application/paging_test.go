package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagingOffset(t *testing.T) {
	tests := []struct {
		name   string
		paging Paging
		offset int
	}{
		{name: "first page", paging: Paging{Page: 1, Limit: 9}, offset: 0},
		{name: "second page", paging: Paging{Page: 2, Limit: 9}, offset: 9},
		{name: "custom limit", paging: Paging{Page: 3, Limit: 5}, offset: 10},
		{name: "zero page coerced to first", paging: Paging{Page: 0, Limit: 9}, offset: 0},
		{name: "negative page coerced to first", paging: Paging{Page: -4, Limit: 9}, offset: 0},
		{name: "zero limit falls back to default", paging: Paging{Page: 2, Limit: 0}, offset: DefaultPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, tt.paging.Offset())
		})
	}
}

func TestPagingPerPage(t *testing.T) {
	assert.Equal(t, DefaultPageLimit, Paging{}.PerPage())
	assert.Equal(t, DefaultPageLimit, Paging{Limit: -1}.PerPage())
	assert.Equal(t, 20, Paging{Limit: 20}.PerPage())
}

package application

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sngm3741/gurume-club-services/api/internal/public/domain"
)

func restaurantsWithIDs(ids ...string) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(ids))
	for _, id := range ids {
		restaurants = append(restaurants, domain.Restaurant{ID: id})
	}
	return restaurants
}

func idsOf(restaurants []domain.Restaurant) []string {
	ids := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRankByCountOrdersDescending(t *testing.T) {
	items := restaurantsWithIDs("a", "b", "c")
	counts := map[string]int{"a": 1, "b": 5, "c": 3}

	ranked := rankByCount(items, counts, func(r domain.Restaurant) string { return r.ID }, 10)

	assert.Equal(t, []string{"b", "c", "a"}, idsOf(ranked))
}

func TestRankByCountKeepsInputOrderOnTies(t *testing.T) {
	items := restaurantsWithIDs("a", "b", "c", "d")
	counts := map[string]int{"a": 2, "b": 2, "c": 2, "d": 5}

	ranked := rankByCount(items, counts, func(r domain.Restaurant) string { return r.ID }, 10)

	assert.Equal(t, []string{"d", "a", "b", "c"}, idsOf(ranked))
}

func TestRankByCountMissingKeysRankZero(t *testing.T) {
	items := restaurantsWithIDs("a", "b", "c")
	counts := map[string]int{"b": 1}

	ranked := rankByCount(items, counts, func(r domain.Restaurant) string { return r.ID }, 10)

	assert.Equal(t, []string{"b", "a", "c"}, idsOf(ranked))
}

func TestRankByCountTruncatesToLimit(t *testing.T) {
	items := make([]domain.Restaurant, 0, 15)
	counts := make(map[string]int, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("r%02d", i)
		items = append(items, domain.Restaurant{ID: id})
		counts[id] = i
	}

	ranked := rankByCount(items, counts, func(r domain.Restaurant) string { return r.ID }, 10)

	assert.Len(t, ranked, 10)
	assert.Equal(t, "r14", ranked[0].ID)
	assert.Equal(t, "r05", ranked[9].ID)
}

func TestRankByCountDoesNotMutateInput(t *testing.T) {
	items := restaurantsWithIDs("a", "b")
	counts := map[string]int{"b": 9}

	_ = rankByCount(items, counts, func(r domain.Restaurant) string { return r.ID }, 10)

	assert.Equal(t, []string{"a", "b"}, idsOf(items))
}

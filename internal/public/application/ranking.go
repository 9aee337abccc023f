package application

import "sort"

// rankByCount orders items by descending count, keeping the input order
// among equal counts, and truncates to limit. Items absent from counts
// rank with zero.
func rankByCount[T any](items []T, counts map[string]int, keyOf func(T) string, limit int) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[keyOf(ranked[i])] > counts[keyOf(ranked[j])]
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Package listx holds the pure sort/filter/paginate helpers shared by the
// list-shaped features. Every function works on a copy; the input slice is
// never reordered or mutated.
package listx

import (
	"sort"
	"strings"
	"time"
)

// SortByName sorts by the extracted name, byte-wise (case-sensitive).
func SortByName[T any](items []T, name func(T) string) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return name(out[i]) < name(out[j])
	})
	return out
}

// SortByNameFold sorts by the extracted name, case-folded.
func SortByNameFold[T any](items []T, name func(T) string) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(name(out[i])) < strings.ToLower(name(out[j]))
	})
	return out
}

// SortByNewest sorts newest-first on the extracted timestamp.
func SortByNewest[T any](items []T, createdAt func(T) time.Time) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

// SortByOldest sorts oldest-first on the extracted timestamp.
func SortByOldest[T any](items []T, createdAt func(T) time.Time) []T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).Before(createdAt(out[j]))
	})
	return out
}

// FilterSubstring keeps the items whose name contains query,
// case-insensitively. An empty query keeps everything.
func FilterSubstring[T any](items []T, name func(T) string, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return clone(items)
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(name(it)), q) {
			out = append(out, it)
		}
	}
	return out
}

// PageCount is ceil(total/pageSize). Zero or negative inputs give zero pages.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

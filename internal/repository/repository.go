// Package repository implements the in-memory entity stores backing the
// simulated desk API. Each store owns a mutable collection seeded from
// package seed, applies filtering, sorting, pagination and role scoping
// synchronously, and hands out copies so callers never alias store state.
package repository

// paginate slices one page out of items. Pages are 1-based; a page beyond
// the end yields an empty slice rather than an error.
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[start:end]...)
}

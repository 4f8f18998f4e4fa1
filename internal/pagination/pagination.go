// Package pagination slices an in-memory list into fixed-size pages and
// keeps page numbers inside the valid range.
//
// Pages are numbered from 1. There is always at least one page, even for an
// empty list.
package pagination

// Page is one page of items along with the navigation state that produced it.
type Page[T any] struct {
	Items       []T
	TotalPages  int
	CurrentPage int
}

// TotalPages returns max(1, ceil(count/pageSize)).
func TotalPages(count, pageSize int) int {
	pageSize = normalizePageSize(pageSize)
	if count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	return min(max(1, page), totalPages)
}

// Paginate returns the clamped page of items. The returned Items share
// memory with items and are never nil.
func Paginate[T any](items []T, pageSize, currentPage int) Page[T] {
	pageSize = normalizePageSize(pageSize)
	totalPages := TotalPages(len(items), pageSize)
	page := Clamp(currentPage, totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	pageItems := []T{}
	if start < end {
		pageItems = items[start:end:end]
	}

	return Page[T]{
		Items:       pageItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// Prev returns the page before currentPage, stopping at 1.
func Prev(currentPage int) int {
	return max(1, currentPage-1)
}

// Next returns the page after currentPage, stopping at totalPages.
func Next(currentPage, totalPages int) int {
	return min(totalPages, currentPage+1)
}

// JumpTo returns target clamped to [1, totalPages].
func JumpTo(target, totalPages int) int {
	return Clamp(target, totalPages)
}

// A non-positive page size is a caller error; treat it as one item per page
// rather than dividing by zero.
func normalizePageSize(pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	return pageSize
}

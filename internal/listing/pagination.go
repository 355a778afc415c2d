package listing

// PageSize is the number of properties per page, fixed by the backend
const PageSize = 12

// LastPage is ceil(total / PageSize)
func LastPage(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// CanPrev reports whether "previous" is enabled
func CanPrev(page int) bool {
	return page > 1
}

// CanNext reports whether "next" is enabled. It is disabled when the
// displayed page is short or the cursor sits on the last page.
func CanNext(page, lastPage, displayed int) bool {
	return displayed >= PageSize && page != lastPage
}

// ClampPage keeps page inside [1, max(1, lastPage)]
func ClampPage(page, lastPage int) int {
	if page < 1 {
		return 1
	}
	if lastPage >= 1 && page > lastPage {
		return lastPage
	}
	if lastPage < 1 {
		return 1
	}
	return page
}

// Slice returns the items on page (1-based) of a locally paginated list
func Slice[T any](items []T, page int) []T {
	start := (page - 1) * PageSize
	if page < 1 || start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

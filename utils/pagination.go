package utils

import "strconv"

// Ellipsis marks a gap in the page list returned by GeneratePagination.
const Ellipsis = "..."

// GeneratePagination returns the page labels shown by a pagination control.
// Up to seven pages are listed in full; beyond that the list keeps the first
// and last pages and the neighbourhood of the current page.
func GeneratePagination(currentPage, totalPages int) []string {
	if totalPages <= 0 {
		return []string{}
	}
	if totalPages <= 7 {
		return pages(1, totalPages)
	}

	if currentPage <= 3 {
		return join(pages(1, 3), []string{Ellipsis}, pages(totalPages-1, totalPages))
	}
	if currentPage >= totalPages-2 {
		return join(pages(1, 2), []string{Ellipsis}, pages(totalPages-2, totalPages))
	}
	return join(
		pages(1, 1),
		[]string{Ellipsis},
		pages(currentPage-1, currentPage+1),
		[]string{Ellipsis},
		pages(totalPages, totalPages),
	)
}

func pages(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, strconv.Itoa(p))
	}
	return out
}

func join(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

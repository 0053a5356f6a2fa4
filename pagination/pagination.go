// Package pagination computes page windows and the condensed page-number
// sequence used by listing views.
package pagination

// Ellipsis marks a gap in the page-number sequence.
const Ellipsis = -1

// PageView describes one page window over a list of items plus the
// condensed page-number display sequence.
type PageView struct {
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int

	// StartItem and EndItem are 1-based item positions for "showing X-Y
	// of Z" displays. Both are 0 when there are no items.
	StartItem int
	EndItem   int

	// Pages is the display sequence: page numbers with Ellipsis markers
	// wherever consecutive entries differ by more than one. Empty when
	// there is at most one page.
	Pages []int
}

// HasPrev reports whether a previous page exists.
func (v PageView) HasPrev() bool { return v.CurrentPage > 1 && v.TotalPages > 0 }

// HasNext reports whether a next page exists.
func (v PageView) HasNext() bool { return v.CurrentPage < v.TotalPages }

// Paginate computes the page window for currentPage over totalItems items
// at pageSize per page. An out-of-range currentPage is not an error: the
// result is degenerate but well-defined (an empty window), and clamping is
// left to the caller.
func Paginate(currentPage, totalItems, pageSize int) PageView {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize

	v := PageView{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
	if totalItems > 0 {
		v.StartItem = (currentPage-1)*pageSize + 1
		v.EndItem = min(currentPage*pageSize, totalItems)
	}
	v.Pages = pageSequence(currentPage, totalPages)
	return v
}

// pageSequence builds the condensed display sequence: always page 1 and
// totalPages, with up to five interior entries centered on current. The
// interior window [current-2, current+2] is clamped to [2, totalPages-1]
// and widened back to five entries when clamping shrank it, so the
// displayed count stays visually stable near either end.
func pageSequence(current, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	start := max(2, current-2)
	end := min(totalPages-1, current+2)
	if end-start < 4 {
		if start == 2 {
			end = min(totalPages-1, start+4)
		} else {
			start = max(2, end-4)
		}
	}

	pages := make([]int, 0, end-start+4)
	pages = append(pages, 1)
	if start > 2 {
		pages = append(pages, Ellipsis)
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < totalPages-1 {
		pages = append(pages, Ellipsis)
	}
	pages = append(pages, totalPages)
	return pages
}

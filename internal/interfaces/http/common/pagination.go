package common

// Pagination describes the page navigation rendered alongside a listing.
// TotalPages is derived with a ceiling division so a final partial page
// still counts.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PrevPage    int   `json:"prevPage"`
	NextPage    int   `json:"nextPage"`
	Pages       []int `json:"pages"`
}

// BuildPagination computes the navigation descriptor for total items split
// into pages of limit. An empty listing yields zero pages. The current page
// is clamped into the valid range; prev/next clamp at the edges instead of
// walking past them.
func BuildPagination(total, limit, page int) Pagination {
	if limit < 1 {
		limit = 1
	}

	totalPages := (total + limit - 1) / limit

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	prev := page - 1
	if prev < 1 {
		prev = 1
	}
	next := page + 1
	if next > totalPages {
		next = totalPages
	}

	pages := make([]int, totalPages)
	for i := range pages {
		pages[i] = i + 1
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		PrevPage:    prev,
		NextPage:    next,
		Pages:       pages,
	}
}

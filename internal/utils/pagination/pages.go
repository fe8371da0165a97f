package pagination

import (
	"net/url"
	"strconv"
)

// PageLinks builds the next/previous links for a page-based list view. requestURL
// is the URL of the current request; the returned links differ from it only in
// their "page" query parameter. A nil link means there is no such page.
func PageLinks(requestURL *url.URL, page, pageSize, total int) (next, previous *string) {
	if pageSize <= 0 {
		return nil, nil
	}
	totalPages := (total + pageSize - 1) / pageSize
	if page < totalPages {
		next = pageLink(requestURL, page+1)
	}
	if page > 1 && page <= totalPages {
		previous = pageLink(requestURL, page-1)
	}
	return next, previous
}

func pageLink(requestURL *url.URL, page int) *string {
	u := *requestURL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}

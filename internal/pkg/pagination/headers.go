package pagination

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	HeaderTotalCount = "X-Total-Count"
	HeaderLink       = "Link"
)

// GenerateHeaders returns X-Total-Count and a Link header with next, prev, last and
// first relations. Links are built from requestURL with page and size replaced.
func GenerateHeaders[T any](requestURL *url.URL, page Page[T]) http.Header {
	headers := http.Header{}
	headers.Set(HeaderTotalCount, strconv.FormatInt(page.TotalElements, 10))

	links := make([]string, 0, 4)
	if page.Number < page.TotalPages()-1 {
		links = append(links, prepareLink(requestURL, page.Number+1, page.Size, "next"))
	}
	if page.Number > 0 {
		links = append(links, prepareLink(requestURL, page.Number-1, page.Size, "prev"))
	}

	lastPage := 0
	if page.TotalPages() > 0 {
		lastPage = page.TotalPages() - 1
	}
	links = append(links,
		prepareLink(requestURL, lastPage, page.Size, "last"),
		prepareLink(requestURL, 0, page.Size, "first"),
	)
	headers.Set(HeaderLink, strings.Join(links, ","))

	return headers
}

func prepareLink(requestURL *url.URL, pageNumber, pageSize int, rel string) string {
	return fmt.Sprintf("<%s>; rel=%q", preparePageURI(requestURL, pageNumber, pageSize), rel)
}

func preparePageURI(requestURL *url.URL, pageNumber, pageSize int) string {
	u := *requestURL
	query := u.Query()
	query.Set("page", strconv.Itoa(pageNumber))
	query.Set("size", strconv.Itoa(pageSize))
	u.RawQuery = query.Encode()

	return strings.NewReplacer(",", "%2C", ";", "%3B").Replace(u.String())
}

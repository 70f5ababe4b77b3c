// Package navigation builds the "Back to Topics" links so a reader returns
// to the catalog with the search and category they left with.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// CatalogPath is the landing page.
const CatalogPath = "/"

// CatalogURL returns the catalog URL with the given filter applied.
// Default values (empty query, "All") are omitted.
func CatalogURL(q, category string) string {
	v := url.Values{}
	if q = strings.TrimSpace(q); q != "" {
		v.Set("q", q)
	}
	if category != "" && category != models.CategoryAll {
		v.Set("category", category)
	}
	if len(v) == 0 {
		return CatalogPath
	}
	return CatalogPath + "?" + v.Encode()
}

// TopicURL returns the topic page URL, carrying ret as the return target when
// it is not the bare catalog.
func TopicURL(id, ret string) string {
	u := "/topic/" + url.PathEscape(id)
	if ret != "" && ret != CatalogPath {
		u += "?return=" + url.QueryEscape(ret)
	}
	return u
}

// CatalogBackURL extracts a safe return URL that points at the catalog.
//
// The "return" query parameter must be a local URL on the catalog page;
// anything else, including links back into a topic page, falls back to the
// bare catalog.
func CatalogBackURL(r *http.Request) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		return CatalogPath
	}
	if ret != CatalogPath && !strings.HasPrefix(ret, CatalogPath+"?") {
		return CatalogPath
	}
	return ret
}

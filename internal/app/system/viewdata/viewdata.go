// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	}
type BaseVM struct {
	// Site header
	SiteName string
	Tagline  string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

var siteName atomic.Pointer[string]

// Init sets the site name shown in the header. Call this once at startup
// from bootstrap; a blank name keeps the default.
func Init(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		siteName.Store(nil)
		return
	}
	siteName.Store(&name)
}

// SiteName returns the configured site name or models.DefaultSiteName.
func SiteName() string {
	if p := siteName.Load(); p != nil {
		return *p
	}
	return models.DefaultSiteName
}

// NewBaseVM creates a populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Tagline:     models.DefaultTagline,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}

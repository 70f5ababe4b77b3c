package viewdata

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/learnhub/internal/domain/models"
)

func TestSiteName_DefaultAndOverride(t *testing.T) {
	t.Cleanup(func() { Init("") })

	Init("")
	if got := SiteName(); got != models.DefaultSiteName {
		t.Errorf("default SiteName() = %q", got)
	}

	Init("  Go Learning Hub ")
	if got := SiteName(); got != "Go Learning Hub" {
		t.Errorf("SiteName() = %q", got)
	}
}

func TestNewBaseVM(t *testing.T) {
	t.Cleanup(func() { Init("") })

	r := httptest.NewRequest("GET", "/topic/loops", nil)
	vm := NewBaseVM(r, "Loops", "/")

	if vm.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName = %q", vm.SiteName)
	}
	if vm.Tagline != models.DefaultTagline {
		t.Errorf("Tagline = %q", vm.Tagline)
	}
	if vm.Title != "Loops" {
		t.Errorf("Title = %q", vm.Title)
	}
	if vm.BackURL == "" {
		t.Error("BackURL should fall back to the default")
	}
}

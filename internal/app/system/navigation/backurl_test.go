package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestCatalogURL(t *testing.T) {
	tests := []struct {
		q, category, want string
	}{
		{"", "", "/"},
		{"", "All", "/"},
		{"  ", "All", "/"},
		{"loop", "All", "/?q=loop"},
		{"", "Advanced", "/?category=Advanced"},
		{"a b", "Basic", "/?category=Basic&q=a+b"},
	}
	for _, tt := range tests {
		if got := CatalogURL(tt.q, tt.category); got != tt.want {
			t.Errorf("CatalogURL(%q, %q) = %q, want %q", tt.q, tt.category, got, tt.want)
		}
	}
}

func TestTopicURL(t *testing.T) {
	if got := TopicURL("loops", ""); got != "/topic/loops" {
		t.Errorf("got %q", got)
	}
	if got := TopicURL("loops", "/"); got != "/topic/loops" {
		t.Errorf("got %q", got)
	}
	if got := TopicURL("loops", "/?q=loop"); got != "/topic/loops?return=%2F%3Fq%3Dloop" {
		t.Errorf("got %q", got)
	}
}

func TestCatalogBackURL_Fallbacks(t *testing.T) {
	for _, target := range []string{
		"/topic/loops",
		"/topic/loops?return=https://evil.example.com/",
		"/topic/loops?return=//evil.example.com/",
		"/topic/loops?return=/topic/operators",
	} {
		r := httptest.NewRequest("GET", target, nil)
		if got := CatalogBackURL(r); got != "/" {
			t.Errorf("CatalogBackURL(%s) = %q, want /", target, got)
		}
	}
}

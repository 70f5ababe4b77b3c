package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/learnhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Preserved(t *testing.T) {
	tests := []struct {
		name, input string
	}{
		{"empty", ""},
		{"plain text", "Variables are containers for storing data values."},
		{"inline formatting", "<p><strong>Bold</strong> and <em>italic</em></p>"},
		{"code", "Use <code>int</code> for whole numbers."},
		{"code block", "<pre><code>int x = 5;</code></pre>"},
		{"lists", "<ul><li>int</li><li>double</li></ul>"},
		{"text marks", "<u>u</u> <s>s</s> <sub>1</sub> <sup>2</sup> <mark>m</mark>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.Sanitize(tt.input); got != tt.input {
				t.Errorf("Sanitize(%q) = %q, want unchanged", tt.input, got)
			}
		})
	}
}

func TestSanitize_Removed(t *testing.T) {
	tests := []struct {
		name, input, banned, kept string
	}{
		{"script", `<p>Hi</p><script>alert(1)</script>`, "<script", "Hi"},
		{"onclick", `<p onclick="alert(1)">Hi</p>`, "onclick", "Hi"},
		{"javascript href", `<a href="javascript:alert(1)">x</a>`, "javascript:", "x"},
		{"iframe", `<p>Hi</p><iframe src="https://evil.example"></iframe>`, "iframe", "Hi"},
		{"style tag", `<style>body{}</style><p>Hi</p>`, "<style", "Hi"},
		{"form", `<form><input name="q"></form>Hi`, "<input", "Hi"},
		{"onerror", `<img src="x" onerror="alert(1)">Hi`, "onerror", "Hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.input)
			if strings.Contains(got, tt.banned) {
				t.Errorf("Sanitize(%q) = %q, still contains %q", tt.input, got, tt.banned)
			}
			if !strings.Contains(got, tt.kept) {
				t.Errorf("Sanitize(%q) = %q, lost %q", tt.input, got, tt.kept)
			}
		})
	}
}

func TestSanitize_CodeClass(t *testing.T) {
	got := htmlsanitize.Sanitize(`<code class="language-csharp">var x = 1;</code>`)
	if !strings.Contains(got, `class="language-csharp"`) {
		t.Errorf("expected class preserved, got %q", got)
	}
}

func TestSanitize_EscapesGenericsText(t *testing.T) {
	// Bare angle brackets in prose are text, not tags.
	got := htmlsanitize.Sanitize("Use List&lt;T&gt; for dynamic collections.")
	if !strings.Contains(got, "List&lt;T&gt;") {
		t.Errorf("expected escaped generics preserved, got %q", got)
	}
}

func TestHTML_ReturnsTemplateHTML(t *testing.T) {
	got := htmlsanitize.HTML("<p>Hello</p><script>x</script>")
	if got != template.HTML("<p>Hello</p>") {
		t.Errorf("HTML() = %q", got)
	}
}

package shared

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDifficultyDots(t *testing.T) {
	tests := []struct {
		d    int
		want []Dot
	}{
		{1, []Dot{{"bg-green-500"}, {"bg-gray-200"}, {"bg-gray-200"}}},
		{2, []Dot{{"bg-yellow-500"}, {"bg-yellow-500"}, {"bg-gray-200"}}},
		{3, []Dot{{"bg-red-500"}, {"bg-red-500"}, {"bg-red-500"}}},
		{0, []Dot{{"bg-gray-200"}, {"bg-gray-200"}, {"bg-gray-200"}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, DifficultyDots(tt.d)); diff != "" {
			t.Errorf("DifficultyDots(%d) mismatch (-want +got):\n%s", tt.d, diff)
		}
	}
}

func TestCategoryClass(t *testing.T) {
	if got := CategoryClass("Basic"); got != "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-300" {
		t.Errorf("Basic: %q", got)
	}
	if got := CategoryClass("Unknown"); got != "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-300" {
		t.Errorf("fallback: %q", got)
	}
}

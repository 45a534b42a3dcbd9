package models

import (
	"reflect"
	"testing"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Programming", "Programming"},
		{"programming", "Programming"},
		{"  Web Development ", "Web Development"},
		{"frontend", "Web Development"},
		{"ai", "Machine Learning"},
		{"underwater basket weaving", "Other"},
		{"", "Other"},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.in); got != c.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeCategoriesDeduplicates(t *testing.T) {
	got := NormalizeCategories([]string{"coding", "Programming", "ux design"})
	want := []string{"Programming", "UI/UX Design"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeCategories = %v, want %v", got, want)
	}
}

func TestNormalizeCategoriesEmptyFallsBackToOther(t *testing.T) {
	got := NormalizeCategories(nil)
	if !reflect.DeepEqual(got, []string{"Other"}) {
		t.Fatalf("expected [Other], got %v", got)
	}
}

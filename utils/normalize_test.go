package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeSkillTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  react   development ", "React Development"},
		{"GUITAR", "Guitar"},
		{"spanish tutoring", "Spanish Tutoring"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeSkillTitle(c.in); got != c.want {
			t.Errorf("NormalizeSkillTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTag(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Machine Learning", "machine-learning"},
		{"  web   dev ", "web-dev"},
		{"GO", "go"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeTag(c.in); got != c.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTagsDropsEmptiesAndDuplicates(t *testing.T) {
	got := NormalizeTags([]string{"Guitar", "guitar", "  ", "Music Theory"})
	want := []string{"guitar", "music-theory"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeTags = %v, want %v", got, want)
	}
}

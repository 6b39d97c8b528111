package services

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Gold Heritage Ring":      "gold-heritage-ring",
		"  Emerald   Drop\tSet ":  "emerald-drop-set",
		"Solitaire":               "solitaire",
		"ALL CAPS NAME":           "all-caps-name",
		"line\nbreak":             "line-break",
		"":                        "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Mansion Market", "the-mansion-market"},
		{"  Penthouse & Villa Living  ", "penthouse-and-villa-living"},
		{"Dubai's Finest / 2026", "dubais-finest-2026"},
		{"---Already--Dashed---", "already-dashed"},
		{"Émeraude!", "meraude"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package namefold

import "testing"

func TestFold(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Amy Li", "amy li"},
		{"all caps", "AMY", "amy"},
		{"collapses whitespace", "  Amy \t Li  ", "amy li"},
		{"strips stray combining marks", "x́ray", "xray"},
		{"fullwidth to ascii", "Ｂｏｂ", "bob"},
		{"zero width removed", "a‍my", "amy"},
		{"invalid utf8 dropped", "am\xffy", "amy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fold(tc.in); got != tc.want {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

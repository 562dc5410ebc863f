package strings

import (
	"testing"

	kit "chatexport/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := IfEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	in := []string{"x", "y"}
	if got := IfEmpty(in, def); len(got) != 2 {
		t.Fatalf("IfEmpty(in) = %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "field"); got != "ok" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { MustString("   ", "field") })
}

func TestMustPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"contacts", "/contacts"},
		{"/contacts", "/contacts"},
		{" /contacts/ ", "/contacts"},
	}
	for _, c := range cases {
		kit.MustNotPanic(t, func() {
			if got := MustPrefix(c.in); got != c.want {
				t.Fatalf("MustPrefix(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
	kit.MustPanic(t, func() { MustPrefix("  / ") })
}

func TestEmptyToNilAndDeref(t *testing.T) {
	if EmptyToNil(" \t ") != "" {
		t.Fatalf("EmptyToNil should blank whitespace")
	}
	if EmptyToNil("x") != "x" {
		t.Fatalf("EmptyToNil should pass content through")
	}
	if Deref(nil) != "" {
		t.Fatalf("Deref(nil) should be empty")
	}
	s := "v"
	if Deref(&s) != "v" {
		t.Fatalf("Deref(&s) = %q", Deref(&s))
	}
}

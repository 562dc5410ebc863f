package config

import (
	"testing"
	"time"

	kit "chatexport/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  chatexport ")
	got := c.MustString("NAME")
	if got != "chatexport" {
		t.Fatalf("MustString = %q, want %q", got, "chatexport")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}

	t.Setenv("APP_BADPORT", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("BADPORT") })
	t.Setenv("APP_NANPORT", "web")
	kit.MustPanic(t, func() { _ = c.MustPort("NANPORT") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayString("ABSENT", "fallback"); got != "fallback" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("APP_PRESENT", " value ")
	if got := c.MayString("PRESENT", "fallback"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayInt("ABSENT", 7); got != 7 {
		t.Fatalf("MayInt default = %d", got)
	}
	t.Setenv("APP_N", "42")
	if got := c.MayInt("N", 7); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("APP_BADN", "nope")
	if got := c.MayInt("BADN", 7); got != 7 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
}

func TestMayFloat64(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayFloat64("ABSENT", 0.6); got != 0.6 {
		t.Fatalf("MayFloat64 default = %v", got)
	}
	t.Setenv("APP_CUTOFF", "0.75")
	if got := c.MayFloat64("CUTOFF", 0.6); got != 0.75 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	t.Setenv("APP_BADCUTOFF", "tight")
	if got := c.MayFloat64("BADCUTOFF", 0.6); got != 0.6 {
		t.Fatalf("MayFloat64 invalid should fall back, got %v", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayBool("ABSENT", true); got != true {
		t.Fatalf("MayBool default = %v", got)
	}
	t.Setenv("APP_FLAG", "false")
	if got := c.MayBool("FLAG", true); got != false {
		t.Fatalf("MayBool = %v", got)
	}
	t.Setenv("APP_BADFLAG", "maybe")
	if got := c.MayBool("BADFLAG", true); got != true {
		t.Fatalf("MayBool invalid should fall back, got %v", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("APP_")
	if got := c.MayDuration("ABSENT", 2*time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("APP_D", "250ms")
	if got := c.MayDuration("D", 2*time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("APP_BADD", "soon")
	if got := c.MayDuration("BADD", 2*time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration invalid should fall back, got %v", got)
	}
}

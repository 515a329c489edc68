package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("VF_TEST_STR", "hello")

	if got := GetEnv("VF_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if got := GetEnv("VF_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("VF_TEST_FLOAT", "2.5")
	if got := GetEnvFloat("VF_TEST_FLOAT", 1.0); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
	t.Setenv("VF_TEST_FLOAT", "bogus")
	if got := GetEnvFloat("VF_TEST_FLOAT", 1.0); got != 1.0 {
		t.Errorf("expected fallback 1.0, got %v", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("VF_TEST_DUR", "750ms")
	if got := GetEnvDuration("VF_TEST_DUR", time.Second); got != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", got)
	}
	t.Setenv("VF_TEST_DUR", "soon")
	if got := GetEnvDuration("VF_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("expected fallback 1s, got %v", got)
	}
}

//go:build linux || darwin

package unixpty

import (
	"strings"
	"testing"
)

func TestEnvironForChildIncludesOverrides(t *testing.T) {
	env := environForChild(map[string]string{"MY_TEST_VAR": "custom_value_12345"})

	var found bool
	for _, kv := range env {
		if kv == "MY_TEST_VAR=custom_value_12345" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected MY_TEST_VAR in child environment, got %v", env)
	}
}

func TestEnvironForChildDefaultsTerm(t *testing.T) {
	env := environForChild(nil)

	var found bool
	for _, kv := range env {
		if strings.HasPrefix(kv, "TERM=") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a TERM entry in child environment")
	}
}

func TestEnvironForChildUnsetsEmptyOverride(t *testing.T) {
	env := environForChild(map[string]string{"PATH": ""})

	for _, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			t.Fatalf("expected PATH to be unset, found %q", kv)
		}
	}
}

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestPreInitLoggerUsesConfiguredHandler(t *testing.T) {
	logger := L("unixpty")

	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger.Info("spawned", "pid", 4242)

	out := buf.String()
	if !strings.Contains(out, "msg=spawned") {
		t.Fatalf("expected plain spawned message, got: %s", out)
	}
	if !strings.Contains(out, "component=unixpty") {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "pid=4242") {
		t.Fatalf("expected pid field, got: %s", out)
	}
}

func TestPreInitLoggerRespectsConfiguredLevel(t *testing.T) {
	logger := L("winpty")

	var buf bytes.Buffer
	Init("text", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info log should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn log should be emitted: %s", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	logger := L("conpty")

	var buf bytes.Buffer
	Init("json", "debug", &buf)

	logger.Debug("attribute list built")

	out := buf.String()
	if !strings.Contains(out, `"msg":"attribute list built"`) {
		t.Fatalf("expected json-encoded message, got: %s", out)
	}
	if !strings.Contains(out, `"component":"conpty"`) {
		t.Fatalf("expected json component field, got: %s", out)
	}
}

func TestWithConnAddsCorrelationFields(t *testing.T) {
	var buf bytes.Buffer
	Init("text", "info", &buf)

	logger := WithConn(L("unixpty"), "sess-1", 777)
	logger.Info("resized")

	out := buf.String()
	if !strings.Contains(out, "connId=sess-1") {
		t.Fatalf("expected connId field, got: %s", out)
	}
	if !strings.Contains(out, "pid=777") {
		t.Fatalf("expected pid field, got: %s", out)
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	line := lastNonEmptyLine(out)
	if line == "" {
		t.Fatalf("no output captured")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	return payload
}

func TestLogger_IncludesStackAndServiceOnError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("test-service", &buf)
	log.Error().Stack().Err(errors.New("boom")).Msg("something failed")

	payload := decode(t, buf.String())
	if svc, ok := payload["service"].(string); !ok || svc != "test-service" {
		t.Fatalf("expected service=\"test-service\", got %v", payload["service"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Fatalf("expected level=\"error\", got %v", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", buf.String())
	}
}

func TestLogger_KeepsExistingStack(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("svc", &buf)
	log.Error().Stack().Err(pkgerrors.New("with stack")).Msg("failed")

	payload := decode(t, buf.String())
	frames, ok := payload["stack"].([]any)
	if !ok || len(frames) == 0 {
		t.Fatalf("expected stack frames, got %v", payload["stack"])
	}
	if payload["error"] != "with stack" {
		t.Fatalf("unexpected error field %v", payload["error"])
	}
}

func TestConsole_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Console(&buf, zerolog.WarnLevel)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected console output: %q", out)
	}
}

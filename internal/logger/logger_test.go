package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWriterLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	InitWriter(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Str("user", "alice01").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info must be filtered at warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "alice01") {
		t.Fatalf("expected warn line:\n%s", out)
	}
}

func TestInitWriterUnknownLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	InitWriter(&buf, "chatty")
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected fallback to warn, got %s", zerolog.GlobalLevel())
	}
}

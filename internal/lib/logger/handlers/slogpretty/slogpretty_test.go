package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}

	return slog.New(opts.NewPrettyHandler(buf))
}

func TestHandleWritesMessageAndAttrs(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.Info("event added", slog.Int64("id", 42))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "event added")
	assert.Contains(t, out, `"id": 42`)
}

func TestWithGroupPrefixesKeys(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.WithGroup("request").Info("handled", slog.String("method", "GET"))

	assert.Contains(t, buf.String(), `"request.method": "GET"`)
}

func TestWithAttrsAccumulates(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	log := newTestLogger(&buf)

	log.With(slog.String("op", "handlers.test")).
		With(slog.String("env", "local")).
		Info("ready")

	out := buf.String()
	assert.Contains(t, out, `"op": "handlers.test"`)
	assert.Contains(t, out, `"env": "local"`)
}

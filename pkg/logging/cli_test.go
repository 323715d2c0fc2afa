package logging

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewCLIHandler(w, level).WithoutColor())
}

func TestCLIHandler_Threshold(t *testing.T) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	for _, floor := range levels {
		for _, lvl := range levels {
			var buf bytes.Buffer
			plainLogger(&buf, floor).Log(t.Context(), lvl, "rated")

			if lvl >= floor {
				assert.Equal(t, "rated\n", buf.String(), "handler %s, record %s", floor, lvl)
			} else {
				assert.Empty(t, buf.String(), "handler %s, record %s", floor, lvl)
			}
		}
	}
}

func TestNewCLILogger_LevelName(t *testing.T) {
	var buf bytes.Buffer

	NewCLILogger(&buf, "warn").Info("hidden")
	assert.Empty(t, buf.String())

	NewCLILogger(&buf, "info").Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestCLIHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCLIHandler(&buf, slog.LevelDebug))

	logger.Debug("d")
	logger.Warn("w")
	logger.Error("e")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, colorGreen+"d"+colorReset, lines[0])
	assert.Equal(t, colorYellow+"w"+colorReset, lines[1])
	assert.Equal(t, colorRed+"e"+colorReset, lines[2])
}

func TestCLIHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo).WithoutColor()

	assert.Same(t, handler, handler.WithAttrs(nil))

	logger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("cmd", "calc")}))
	logger.Info("score", "income", 150, "rating", "Good")
	slog.New(handler).Info("score", "income", 1)

	assert.Equal(t, "score: cmd=calc income=150 rating=Good\nscore: income=1\n", buf.String())
}

func TestCLIHandler_GroupPrefix(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo).WithoutColor()

	slog.New(handler.WithGroup("batch")).Info("done", "count", 5)
	slog.New(handler.WithGroup("")).Info("done")

	assert.Equal(t, "[batch] done: count=5\ndone\n", buf.String())
}

func TestCLIHandler_ConcurrentWriters(t *testing.T) {
	var buf bytes.Buffer
	handler := NewCLIHandler(&buf, slog.LevelInfo).WithoutColor()
	loggers := []*slog.Logger{
		slog.New(handler),
		slog.New(handler.WithAttrs([]slog.Attr{slog.Int("worker", 1)})),
		slog.New(handler.WithGroup("batch")),
	}

	const perLogger = 100
	var wg sync.WaitGroup
	for _, l := range loggers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perLogger {
				l.Info("tick")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, perLogger*len(loggers))
	for _, line := range lines {
		assert.Contains(t, line, "tick")
	}
}

func TestSetDefaultCLILogger(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	var buf bytes.Buffer
	SetDefaultCLILogger(&buf, "debug")
	slog.Debug("score", "final", 2)
	assert.Contains(t, buf.String(), "score: final=2")

	SetDefaultCLILogger(io.Discard, "error")
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))
}

func TestParseLogLevel(t *testing.T) {
	want := map[slog.Level][]string{
		slog.LevelDebug: {"debug", "Debug", " debug\t"},
		slog.LevelInfo:  {"info", "", "verbose", "trace"},
		slog.LevelWarn:  {"warn", "WARNING"},
		slog.LevelError: {"error", "ERROR "},
	}

	for lvl, names := range want {
		for _, n := range names {
			assert.Equal(t, lvl, ParseLogLevel(n), "%q", n)
		}
	}
}

package alog

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NewTest returns a logger writing human-readable text into w at debug level.
// Use it, if a test only wants to inspect the raw output.
func NewTest(w io.Writer) *slog.Logger {
	return New(
		WithLevel(LevelDebug),
		WithHandler(slog.NewTextHandler(w, getDebugHandlerOptions())),
	)
}

// Test returns a logger tuned for unit testing.
// It exposes log-specific assertions, following stretchr/testify as close as possible:
// every assertion returns a bool indicating whether it was successful.
func Test(t *testing.T) *TestLogger {
	if t == nil {
		panic("t is nil")
	}

	buf := &testBuffer{}

	return &TestLogger{
		Logger: NewTest(buf),
		t:      t,
		buf:    buf,
	}
}

// TestLogger is a special logger for unit testing.
// It can be injected as a Logger dependency and asserts on all lines logged with it.
type TestLogger struct {
	*slog.Logger

	t   *testing.T
	buf *testBuffer
}

var (
	_ Logger  = (*TestLogger)(nil)
	_ Leveler = (*TestLogger)(nil)
)

func (l *TestLogger) SetLevel(level slog.Level) {
	Unwrap(l.Logger).SetLevel(level)
}

func (l *TestLogger) Level() slog.Level {
	return Unwrap(l.Logger).Level()
}

// String returns the complete log output.
func (l *TestLogger) String() string {
	return strings.Join(l.Lines(), "")
}

// Lines returns every logged line.
func (l *TestLogger) Lines() []string {
	l.buf.mu.Lock()
	defer l.buf.mu.Unlock()

	lines := make([]string, 0, len(l.buf.lines))
	for _, line := range l.buf.lines {
		lines = append(lines, line.String())
	}

	return lines
}

// Empty asserts that the logger has no lines logged.
func (l *TestLogger) Empty(msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.Lines()); n > 0 {
		return assert.Fail(l.t, fmt.Sprintf("logger is not empty, it has %d line(s)", n), msgAndArgs...)
	}

	return true
}

// NotEmpty asserts that the logger has at least one line.
func (l *TestLogger) NotEmpty(msgAndArgs ...any) bool {
	l.t.Helper()

	if len(l.Lines()) == 0 {
		return assert.Fail(l.t, "logger is empty, should not be", msgAndArgs...)
	}

	return true
}

// Contains asserts that at least one line contains the given substring.
func (l *TestLogger) Contains(contains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, contains) {
			return true
		}
	}

	return assert.Fail(l.t, "log output does not have a line which contains: "+contains, msgAndArgs...)
}

// NotContains asserts that no line contains the given substring.
func (l *TestLogger) NotContains(notContains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, notContains) {
			return assert.Fail(l.t, "log output contains: "+notContains+", should not", msgAndArgs...)
		}
	}

	return true
}

// Total asserts that the logger has exactly total number of lines logged.
func (l *TestLogger) Total(total int, msgAndArgs ...any) bool {
	l.t.Helper()

	if n := len(l.Lines()); n != total {
		return assert.Fail(l.t, fmt.Sprintf("logger does not have %d lines, it has: %d", total, n), msgAndArgs...)
	}

	return true
}

// testBuffer stores each call to Write as its own line.
// slog handlers call Write exactly once per record.
type testBuffer struct {
	mu    sync.Mutex
	lines []*bytes.Buffer
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	line := &bytes.Buffer{}
	n, _ := line.Write(p)

	b.lines = append(b.lines, line)

	return n, nil
}

package cmd

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// mu synchronisation is required, as the clipboard and
// a shared command can be used by concurrent tests.
var mu sync.Mutex //nolint:gochecknoglobals

// TestExecute is a helper that executes a cobra command and returns its output and error.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	return TestExecuteWithInput(t, command, "", args...)
}

// TestExecuteWithInput is like TestExecute, but passes stdin to the command.
func TestExecuteWithInput(t *testing.T, command *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	buf := new(syncBuffer)
	command.SetOut(buf)
	command.SetErr(buf)

	var in io.Reader = strings.NewReader(stdin)
	command.SetIn(in)

	command.SetArgs(args)
	_, err := command.ExecuteC()

	return buf.String(), err
}

// FakeClipboard replaces the system clipboard for the duration of the test and
// returns a func reporting the last copied text.
func FakeClipboard(t *testing.T) func() string {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	var (
		cmu    sync.Mutex
		copied string
	)

	orig := writeClipboard
	writeClipboard = func(text string) error {
		cmu.Lock()
		defer cmu.Unlock()

		copied = text

		return nil
	}

	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()

		writeClipboard = orig
	})

	return func() string {
		cmu.Lock()
		defer cmu.Unlock()

		return copied
	}
}

// syncBuffer is a helper implementing io.Writer, used for concurrency safe testing.
type syncBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}

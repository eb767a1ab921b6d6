package cmd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iseif/devbelt/cmd"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	// runtime/debug.ReadBuildInfo()'s info.Settings called from a Go test is always empty,
	// so the hash is always reported as @latest.

	t.Run("show version", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.Version("devbelt"))
		assert.NoError(t, err)
		assert.Contains(t, output, "devbelt version: @latest", "should start with program name and `version:`")
		assert.Contains(t, output, " from ", "should contain a date indicator")
	})

	t.Run("no program name", func(t *testing.T) {
		t.Parallel()

		t.Run("command output", func(t *testing.T) {
			t.Parallel()

			output, err := cmd.TestExecute(t, cmd.Version(""))
			assert.NoError(t, err)
			assert.Equal(t, "version:", output[:8], "should not start with leading space")
			assert.NotContains(t, output, "%!(EXTRA", "should not contain fmt placeholder count mismatch error")
		})

		t.Run("help output", func(t *testing.T) {
			t.Parallel()

			output, err := cmd.TestExecute(t, cmd.Version(""), "-h")
			assert.NoError(t, err)
			assert.NotContains(t, output, "Print  ", "should not leave space instead of name")
		})
	})

	t.Run("don't allow sub commands", func(t *testing.T) {
		t.Parallel()

		_, err := cmd.TestExecute(t, cmd.Version(""), "sub-command")
		assert.Error(t, err)
	})
}

func TestNewRoot(t *testing.T) {
	t.Parallel()

	t.Run("has version command", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.NewRoot("devbelt"), "version")
		assert.NoError(t, err)
		assert.Contains(t, output, "devbelt version:")
	})

	t.Run("shows help without args", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.NewRoot("devbelt"))
		assert.NoError(t, err)
		assert.Contains(t, output, "Usage:")
		assert.Contains(t, output, "version")
	})
}

func TestExecute(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		root := cmd.NewRoot("devbelt")
		root.SetArgs([]string{"version"})
		root.SetOut(&bytes.Buffer{})

		assert.Equal(t, 0, cmd.Execute(root))
	})

	t.Run("error is printed once", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}

		root := cmd.NewRoot("devbelt")
		root.SetArgs([]string{"unknown-command"})
		root.SetOut(&bytes.Buffer{})
		root.SetErr(stderr)

		assert.Equal(t, 1, cmd.Execute(root))
		assert.Equal(t, 1, bytes.Count(stderr.Bytes(), []byte("Error:")))
	})
}

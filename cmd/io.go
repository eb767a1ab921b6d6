package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	flagFile = "file"
	flagCopy = "copy"
)

var ErrNoInput = errors.New("no input given")

// writeClipboard is replaced in tests, as CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll //nolint:gochecknoglobals

// AddIOFlags adds the flags every tool command shares:
// --file to read the input from a file ("-" for stdin) and --copy to put the result into the clipboard.
func AddIOFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP(flagFile, "f", "", `read the input from a file, use "-" for stdin`)
	cmd.Flags().BoolP(flagCopy, "c", false, "copy the result to the clipboard")

	return cmd
}

// ReadInput returns the input of a tool command as text.
// Positional args win over --file, which wins over stdin.
// A single trailing newline of file or stdin input is removed.
func ReadInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := ReadInputBytes(cmd)
	if err != nil {
		return "", err
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")

	return text, nil
}

// ReadInputBytes returns the raw bytes of --file or stdin.
func ReadInputBytes(cmd *cobra.Command) ([]byte, error) {
	var reader io.Reader = cmd.InOrStdin()

	if path, _ := cmd.Flags().GetString(flagFile); path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open input: %w", err)
		}
		defer file.Close()

		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrNoInput
	}

	return data, nil
}

// WriteResult prints result and copies it to the clipboard, if --copy is set.
func WriteResult(cmd *cobra.Command, result string) error {
	fmt.Fprintln(cmd.OutOrStdout(), result)

	if shouldCopy, _ := cmd.Flags().GetBool(flagCopy); shouldCopy {
		if err := writeClipboard(result); err != nil {
			return fmt.Errorf("could not copy to clipboard: %w", err)
		}

		fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("copied to clipboard"))
	}

	return nil
}

// Heading prints a highlighted section title, used by commands with multiple results.
func Heading(cmd *cobra.Command, title string) {
	fmt.Fprintln(cmd.OutOrStdout(), color.New(color.Bold, color.FgCyan).Sprint(title))
}

// PrintError prints err as a single red line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, color.RedString("Error: %s", err.Error()))
}

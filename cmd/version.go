package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	short := "Print " + name + " version"
	if strings.TrimSpace(name) == "" {
		short = "Print version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			hash, ts := VersionHashAndTimestamp()

			if strings.TrimSpace(name) != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s from %s\n", name, hash, ts)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %s from %s\n", hash, ts)
			}
		},
	}
}

// VersionHashAndTimestamp returns the last git hash and commit timestamp.
// For binaries built from uncommitted code, the hash is "@latest".
func VersionHashAndTimestamp() (string, string) {
	hash, timestamp, modified := readBuildInfo()

	if modified || hash == "" {
		return "@latest", time.Now().UTC().Format(time.RFC3339)
	}

	return hash, timestamp
}

// readBuildInfo returns the last commit hash, commit timestamp, and if the binary contains uncommitted code.
// The information needs to be available to the `go build` command.
// `go run` and `go test` do not contain that info.
func readBuildInfo() (string, string, bool) {
	var (
		commitHash  string
		commitTS    string
		vcsModified bool
	)

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				commitHash = setting.Value
			case "vcs.time":
				commitTS = setting.Value
			case "vcs.modified":
				vcsModified = setting.Value == "true"
			}
		}
	}

	return commitHash, commitTS, vcsModified
}

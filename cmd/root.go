package cmd

import (
	"github.com/spf13/cobra"
)

// NewRoot returns the root command, tools and the server add their commands to it.
func NewRoot(name string) *cobra.Command {
	root := &cobra.Command{
		Use:   name,
		Short: name + " is a belt of small developer utilities, served as CLI and JSON API.",
		Long: `Encode, decode, hash, format, parse and inspect the little things
a developer deals with every day: base64, hashes, JWTs, UUIDs, cron expressions and more.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.AddCommand(Version(name))

	return root
}

// Execute runs root and returns the exit code of the process: 1 on any error.
func Execute(root *cobra.Command) int {
	if err := root.Execute(); err != nil {
		PrintError(root.ErrOrStderr(), err)

		return 1
	}

	return 0
}

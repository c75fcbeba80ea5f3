package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/version"
	"github.com/spf13/cobra"
)

var versionOutputWriter io.Writer = os.Stdout

// PrintVersion prints the version line.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "swipewaifu version %s\n", version.String())
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of swipewaifu.`,
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			versionOutputWriter = c.OutOrStdout()
			PrintVersion()
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd())
}

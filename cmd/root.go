package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/swipewaifu/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "swipewaifu",
	Short: "Swipe through anime images in your terminal.",
	Long:  `Swipe through anime images in your terminal.`,
	// Errors are printed by main through the colors package.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"fetch",
		"slideshow",
		"favorites",
		"prefs",
		"categories",
		"reset",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`swipewaifu v%s

Swipe through anime images in your terminal.
Run without a command to open the browser.

USAGE:
    swipewaifu [COMMAND] [OPTIONS]

COMMANDS:
%s

KEYS:
    →/↓ next    ←/↑ previous    space favorite    a auto-advance
    m mute      ? all shortcuts

OPTIONS:
    --mode <sfw|nsfw>     Content mode for the session
    --category <name>     Category to browse (standard mode)
    -h, --help            Show help message
    -v, --version         Show version
`, version.String(), strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}

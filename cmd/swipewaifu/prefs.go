package main

import (
	"fmt"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/format"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/spf13/cobra"
)

const prefsCommandLong = `Show or change stored preferences.

USAGE:
    swipewaifu prefs <subcommand>

SUBCOMMANDS:
    show    Display preferences
    set     Change one preference

KEYS:
    theme               dark or light
    waifu-view-count    images shown so far
    nsfw-age-verified   restricted mode acknowledgement
    sound-muted         silence the terminal bell

EXAMPLES:
    swipewaifu prefs show --format json
    swipewaifu prefs set theme light`

// NewPrefsCmd creates the prefs command with explicit dependencies.
func NewPrefsCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewPrefsCmd: backend dependency cannot be nil")
	}

	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change preferences",
		Long:  prefsCommandLong,
	}

	var outputFormat string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Display preferences",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ftype, err := format.ParseType(outputFormat)
			if err != nil {
				return err
			}
			prefs, err := b.Preferences()
			if err != nil {
				return err
			}
			return newFormatter(ftype).FormatPreferences(prefs.Get(), c.OutOrStdout())
		},
	}
	showCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format")

	setCmd := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one preference",
		Args:      cobra.ExactArgs(2),
		ValidArgs: preferences.Keys(),
		RunE: func(c *cobra.Command, args []string) error {
			prefs, err := b.Preferences()
			if err != nil {
				return err
			}
			if err := prefs.Set(args[0], args[1]); err != nil {
				return err
			}
			value, _ := prefs.Get().Value(args[0])
			colors.Success(fmt.Sprintf("%s = %s", args[0], value))
			return nil
		},
	}

	prefsCmd.AddCommand(showCmd, setCmd)
	return prefsCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewPrefsCmd(app))
}

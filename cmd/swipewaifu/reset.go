package main

import (
	"fmt"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/spf13/cobra"
)

const resetCommandLong = `Delete every favorite and preference, including the view counter
and the restricted-mode acknowledgement.

USAGE:
    swipewaifu reset [OPTIONS]

OPTIONS:
    -y, --yes   Reset without confirmation
    -h, --help  Show this help`

// NewResetCmd creates the reset command with explicit dependencies.
func NewResetCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewResetCmd: backend dependency cannot be nil")
	}

	var yes bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Long:  resetCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ok, err := confirm("Delete all favorites and preferences? (y/N): ", yes)
			if err != nil {
				return err
			}
			if !ok {
				colors.Info("Operation cancelled")
				return nil
			}
			return runReset(b)
		},
	}
	resetCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Reset without confirmation")
	return resetCmd
}

func runReset(b backend) error {
	favs, err := b.Favorites()
	if err != nil {
		return err
	}
	prefs, err := b.Preferences()
	if err != nil {
		return err
	}
	if err := favs.Clear(); err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	if err := prefs.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	colors.Success("reset complete")
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewResetCmd(app))
}

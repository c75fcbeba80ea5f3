package main

import (
	"fmt"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/spf13/cobra"
)

// NewCategoriesCmd lists the categories the image service offers.
func NewCategoriesCmd() *cobra.Command {
	var mode string
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List image categories",
		Long:  "List the categories available in a content mode. Restricted mode has a single fixed category.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}
			for _, name := range domain.Categories(m) {
				marker := " "
				if name == domain.DefaultCategory {
					marker = "*"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
	categoriesCmd.Flags().StringVar(&mode, "mode", string(domain.ModeStandard), "Content mode: sfw or nsfw")
	return categoriesCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewCategoriesCmd())
}

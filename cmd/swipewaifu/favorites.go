package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/format"
	"github.com/cristianoliveira/swipewaifu/internal/search"
	"github.com/spf13/cobra"
)

const favoritesCommandLong = `Manage saved images.

USAGE:
    swipewaifu favorites <subcommand>

SUBCOMMANDS:
    list      Show saved images
    add       Save an image URL
    remove    Forget an image URL
    clear     Remove every favorite
    import    Merge favorites from a JSON or YAML file

EXAMPLES:
    # Export favorites
    swipewaifu favorites list --format json > favorites.json

    # Import them on another machine
    swipewaifu favorites import favorites.json`

// NewFavoritesCmd creates the favorites command with explicit dependencies.
func NewFavoritesCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewFavoritesCmd: backend dependency cannot be nil")
	}

	favoritesCmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"favs"},
		Short:   "Manage saved images",
		Long:    favoritesCommandLong,
	}
	favoritesCmd.AddCommand(
		newFavoritesListCmd(b),
		newFavoritesAddCmd(b),
		newFavoritesRemoveCmd(b),
		newFavoritesClearCmd(b),
		newFavoritesImportCmd(b),
	)
	return favoritesCmd
}

func newFavoritesListCmd(b backend) *cobra.Command {
	var (
		outputFormat string
		query        string
		useRegex     bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved images",
		Long:  "Show saved images, newest first, as simple, table, json or yaml.\nUse --search to filter by URL, category or mode.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ftype, err := format.ParseType(outputFormat)
			if err != nil {
				return err
			}
			var provider search.Provider = search.NewSubstringProvider()
			if useRegex {
				re := search.NewRegexProvider()
				if err := re.Compile(query); err != nil {
					return fmt.Errorf("invalid search pattern: %w", err)
				}
				provider = re
			}
			favs, err := b.Favorites()
			if err != nil {
				return err
			}
			images := search.Filter(provider, favs.List(), query)
			return newFormatter(ftype).FormatImages(images, c.OutOrStdout())
		},
	}
	listCmd.Flags().StringVar(&outputFormat, "format", string(format.FormatterTypeTable), "Output format")
	listCmd.Flags().StringVarP(&query, "search", "s", "", "Only show favorites matching this text")
	listCmd.Flags().BoolVar(&useRegex, "regex", false, "Treat --search as a regular expression")
	return listCmd
}

func newFavoritesAddCmd(b backend) *cobra.Command {
	var (
		category   string
		restricted bool
	)
	addCmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Save an image URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			favs, err := b.Favorites()
			if err != nil {
				return err
			}
			mode := domain.ModeStandard
			if restricted {
				mode = domain.ModeRestricted
			}
			img, err := domain.NewImage(args[0], domain.ResolveCategory(mode, category), mode, time.Now())
			if err != nil {
				return err
			}
			if favs.Contains(img.URL) {
				colors.Info("already saved")
				return nil
			}
			if err := favs.Add(img); err != nil {
				return fmt.Errorf("add favorite: %w", err)
			}
			colors.Success("♥ saved")
			return nil
		},
	}
	addCmd.Flags().StringVar(&category, "category", domain.DefaultCategory, "Category the image belongs to")
	addCmd.Flags().BoolVar(&restricted, "restricted", false, "Mark the image as restricted content")
	return addCmd
}

func newFavoritesRemoveCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <url>",
		Aliases: []string{"rm"},
		Short:   "Forget an image URL",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			favs, err := b.Favorites()
			if err != nil {
				return err
			}
			url := strings.TrimSpace(args[0])
			if !favs.Contains(url) {
				return fmt.Errorf("not a favorite: %s", url)
			}
			if err := favs.Remove(url); err != nil {
				return fmt.Errorf("remove favorite: %w", err)
			}
			colors.Success("♥ removed")
			return nil
		},
	}
}

func newFavoritesClearCmd(b backend) *cobra.Command {
	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every favorite",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			favs, err := b.Favorites()
			if err != nil {
				return err
			}
			if favs.Len() == 0 {
				colors.Info("No favorites")
				return nil
			}
			ok, err := confirm(fmt.Sprintf("Remove all %d favorites? (y/N): ", favs.Len()), yes)
			if err != nil {
				return err
			}
			if !ok {
				colors.Info("Operation cancelled")
				return nil
			}
			if err := favs.Clear(); err != nil {
				return fmt.Errorf("clear favorites: %w", err)
			}
			colors.Success("Favorites cleared")
			return nil
		},
	}
	clearCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return clearCmd
}

func newFavoritesImportCmd(b backend) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge favorites from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			data, err := readInput(c, args[0])
			if err != nil {
				return err
			}
			images, err := format.ParseImages(data)
			if err != nil {
				return err
			}
			favs, err := b.Favorites()
			if err != nil {
				return err
			}
			added, err := favs.Import(images)
			if err != nil {
				return fmt.Errorf("import favorites: %w", err)
			}
			colors.Success(fmt.Sprintf("imported %d of %d favorites", added, len(images)))
			return nil
		},
	}
}

func readInput(c *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(c.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// confirmInput is read by confirm. Replaced in tests.
var confirmInput io.Reader = os.Stdin

// confirm asks a y/N question. Without a terminal on stdin it refuses
// unless skip is set.
func confirm(prompt string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, fmt.Errorf("refusing to continue without confirmation: stdin is not a terminal (use --yes)")
	}
	fmt.Print(prompt)
	answer, err := bufio.NewReader(confirmInput).ReadString('\n')
	if err != nil && answer == "" {
		// If we can't read, assume no
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

func init() {
	cmd.RootCmd.AddCommand(NewFavoritesCmd(app))
}

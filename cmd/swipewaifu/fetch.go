package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/format"
	"github.com/cristianoliveira/swipewaifu/internal/history"
	"github.com/cristianoliveira/swipewaifu/internal/preview"
	"github.com/spf13/cobra"
)

const fetchCommandLong = `Fetch random image URLs without opening the browser.

USAGE:
    swipewaifu fetch [OPTIONS]

OPTIONS:
    -n, --count <n>       Number of images (default 1)
    --mode <sfw|nsfw>     Content mode
    --category <name>     Category (standard mode)
    --save                Add the fetched images to favorites
    --preview             Draw each image below its URL (terminal only)
    --format <name>       simple, table, json or yaml (default simple)

EXAMPLES:
    # Print one waifu URL
    swipewaifu fetch

    # Fetch three neko images and keep them
    swipewaifu fetch -n 3 --category neko --save`

type fetchOptions struct {
	mode     string
	category string
	count    int
	save     bool
	preview  bool
	format   string
	width    int
	height   int
}

// NewFetchCmd creates the fetch command with explicit dependencies.
func NewFetchCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewFetchCmd: backend dependency cannot be nil")
	}

	var opts fetchOptions
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print random image URLs",
		Long:  fetchCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runFetch(c, b, opts)
		},
	}
	fetchCmd.Flags().StringVar(&opts.mode, "mode", "", "Content mode: sfw or nsfw")
	fetchCmd.Flags().StringVar(&opts.category, "category", "", "Category to fetch")
	fetchCmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of images")
	fetchCmd.Flags().BoolVar(&opts.save, "save", false, "Add fetched images to favorites")
	fetchCmd.Flags().BoolVar(&opts.preview, "preview", false, "Draw each image in the terminal")
	fetchCmd.Flags().StringVar(&opts.format, "format", string(format.FormatterTypeSimple), "Output format")
	fetchCmd.Flags().IntVar(&opts.width, "width", 60, "Preview width in cells")
	fetchCmd.Flags().IntVar(&opts.height, "height", 20, "Preview height in cells")
	return fetchCmd
}

func runFetch(c *cobra.Command, b backend, opts fetchOptions) error {
	if opts.count < 1 {
		return errors.New("count must be at least 1")
	}
	ftype, err := format.ParseType(opts.format)
	if err != nil {
		return err
	}

	client, err := b.Client()
	if err != nil {
		return err
	}
	prefs, err := b.Preferences()
	if err != nil {
		return err
	}
	mode, err := resolveMode(opts.mode, prefs)
	if err != nil {
		return err
	}
	category, err := resolveCategory(mode, opts.category)
	if err != nil {
		return err
	}

	// The navigator keeps every fetched image in order and refuses
	// overlapping requests.
	nav := history.New(opts.count)
	for i := 0; i < opts.count; i++ {
		if _, err := nav.RequestNext(c.Context(), client, mode, category); err != nil {
			return fmt.Errorf("fetch image %d of %d: %w", i+1, opts.count, err)
		}
	}
	images := nav.Snapshot().History
	slices.Reverse(images)

	if opts.save {
		favs, err := b.Favorites()
		if err != nil {
			return err
		}
		if _, err := favs.Import(images); err != nil {
			return fmt.Errorf("save favorites: %w", err)
		}
	}

	if opts.preview && stdoutIsTerminal() {
		return printPreviews(c, client, images, opts)
	}

	if err := newFormatter(ftype).FormatImages(images, c.OutOrStdout()); err != nil {
		return err
	}
	if opts.save {
		colors.Success(fmt.Sprintf("saved %d image(s) to favorites", len(images)))
	}
	return nil
}

func printPreviews(c *cobra.Command, fetcher preview.BytesFetcher, images []domain.Image, opts fetchOptions) error {
	proto := preview.ProtocolFromConfig()
	if proto == preview.ProtocolNone {
		proto = preview.ProtocolHalfblocks
	}
	loader := preview.NewLoader(fetcher, preview.NewRenderer(proto), nil)
	out := c.OutOrStdout()
	for _, img := range images {
		fmt.Fprintln(out, img.URL)
		frame, err := loader.Load(c.Context(), img.URL, opts.width, opts.height)
		if err != nil {
			colors.Warning(fmt.Sprintf("could not preview %s: %v", img.URL, err))
			continue
		}
		fmt.Fprintln(out, frame)
	}
	return nil
}

// newFormatter builds a formatter, dropping ANSI header colors when stdout
// is not a terminal.
func newFormatter(t format.FormatterType) format.Formatter {
	f := format.NewFormatter(t)
	if table, ok := f.(*format.TableFormatter); ok && !stdoutIsTerminal() {
		return table.WithoutColor()
	}
	return f
}

func init() {
	cmd.RootCmd.AddCommand(NewFetchCmd(app))
}

package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/autoadvance"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/history"
	"github.com/cristianoliveira/swipewaifu/internal/input"
	"github.com/cristianoliveira/swipewaifu/internal/preview"
	"github.com/cristianoliveira/swipewaifu/internal/tui/state"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("the browser needs an interactive terminal; try `swipewaifu fetch`")

const slideshowCommandLong = `Start the browser with auto-advance on.

USAGE:
    swipewaifu slideshow [OPTIONS]

OPTIONS:
    --interval <seconds>  Seconds per image (default auto_advance_interval)
    --mode <sfw|nsfw>     Content mode
    --category <name>     Category (standard mode)

EXAMPLES:
    # Cycle through neko images every five seconds
    swipewaifu slideshow --category neko --interval 5`

type browseOptions struct {
	mode      string
	category  string
	interval  int
	auto      bool
	autostart bool
}

// runProgram starts the full-screen program. Replaced in tests.
var runProgram = func(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func runBrowser(ctx context.Context, b backend, opts browseOptions) error {
	if !stdoutIsTerminal() {
		return errNotTerminal
	}
	model, err := newBrowserModel(ctx, b, opts)
	if err != nil {
		return err
	}
	// JSON lines on stderr would corrupt the alt screen.
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()
	return runProgram(ctx, model)
}

func newBrowserModel(ctx context.Context, b backend, opts browseOptions) (*state.Model, error) {
	favs, err := b.Favorites()
	if err != nil {
		return nil, err
	}
	prefs, err := b.Preferences()
	if err != nil {
		return nil, err
	}
	client, err := b.Client()
	if err != nil {
		return nil, err
	}

	mode, err := resolveMode(opts.mode, prefs)
	if err != nil {
		return nil, err
	}
	category, err := resolveCategory(mode, opts.category)
	if err != nil {
		return nil, err
	}

	timer := autoadvance.NewFromConfig(nil)
	if opts.interval > 0 {
		timer.SetInterval(opts.interval)
	}

	var loader *preview.Loader
	if proto := preview.ProtocolFromConfig(); proto != preview.ProtocolNone {
		loader = preview.NewLoader(client, preview.NewRenderer(proto), nil)
	}

	return state.NewModel(state.Deps{
		Client:      client,
		Loader:      loader,
		Navigator:   history.NewFromConfig(),
		Favorites:   favs,
		Prefs:       prefs,
		Timer:       timer,
		DoubleTap:   input.NewDoubleTapFromConfig(),
		Swipe:       input.NewSwipeFromConfig(),
		Context:     ctx,
		Mode:        mode,
		Category:    category,
		AutoAdvance: opts.auto,
		Autostart:   opts.autostart,
		NoticeTTL:   config.GetDuration("notice_duration", 0),
	})
}

func addBrowseFlags(c *cobra.Command, opts *browseOptions) {
	c.Flags().StringVar(&opts.mode, "mode", "", "Content mode: sfw or nsfw")
	c.Flags().StringVar(&opts.category, "category", "", "Category to browse")
}

// NewSlideshowCmd creates the slideshow command with explicit dependencies.
func NewSlideshowCmd(b backend) *cobra.Command {
	if b == nil {
		panic("NewSlideshowCmd: backend dependency cannot be nil")
	}

	opts := browseOptions{auto: true, autostart: true}
	slideshowCmd := &cobra.Command{
		Use:   "slideshow",
		Short: "Browse with auto-advance on",
		Long:  slideshowCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if opts.interval < 0 {
				return errors.New("interval must be positive")
			}
			return runBrowser(c.Context(), b, opts)
		},
	}
	addBrowseFlags(slideshowCmd, &opts)
	slideshowCmd.Flags().IntVar(&opts.interval, "interval", 0, "Seconds per image")
	return slideshowCmd
}

var rootOpts browseOptions

func init() {
	addBrowseFlags(cmd.RootCmd, &rootOpts)
	cmd.RootCmd.Args = cobra.NoArgs
	cmd.RootCmd.RunE = func(c *cobra.Command, args []string) error {
		return runBrowser(c.Context(), app, rootOpts)
	}
	cmd.RootCmd.AddCommand(NewSlideshowCmd(app))
}

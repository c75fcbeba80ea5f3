// Package state is the bubbletea model of the image browser.
package state

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/internal/autoadvance"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/errors"
	"github.com/cristianoliveira/swipewaifu/internal/favorites"
	"github.com/cristianoliveira/swipewaifu/internal/history"
	"github.com/cristianoliveira/swipewaifu/internal/input"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/cristianoliveira/swipewaifu/internal/preview"
)

const (
	headerFooterLines   = 2
	defaultWidth        = 80
	defaultHeight       = 24
	defaultNoticeTTL    = 1500 * time.Millisecond
	loadingTickInterval = 100 * time.Millisecond
	loadingStep         = 0.08
	maxLoadingPercent   = 0.9
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayAgeGate
	overlayReset
	overlayCategories
	overlayFavorites
)

// Deps are the collaborators of the browser model.
type Deps struct {
	// Client fetches image URLs. Required.
	Client history.Fetcher
	// Loader renders the current image. Nil disables image rendering.
	Loader    *preview.Loader
	Navigator *history.Navigator
	Favorites *favorites.Store
	Prefs     *preferences.Store
	Timer     *autoadvance.Timer
	DoubleTap *input.DoubleTap
	Swipe     *input.Swipe

	Context     context.Context
	Mode        domain.Mode
	Category    string
	AutoAdvance bool
	// Autostart fetches the first image from Init instead of waiting for input.
	Autostart bool
	NoticeTTL time.Duration
}

// Model is the browser screen.
type Model struct {
	ctx    context.Context
	client history.Fetcher
	loader *preview.Loader
	nav    *history.Navigator
	favs   *favorites.Store
	prefs  *preferences.Store
	timer  *autoadvance.Timer

	keys      input.KeyMap
	doubleTap *input.DoubleTap
	swipe     *input.Swipe

	mode        domain.Mode
	category    string
	autoAdvance bool
	autostart   bool

	// initial is true until the first fetch is requested.
	initial     bool
	imageLoaded bool
	frame       string
	frameURL    string
	frameErr    error

	tickGen        uint64
	loadingSeq     int
	loadingPercent float64

	overlay       overlay
	help          help.Model
	progress      progress.Model
	categories    list.Model
	favoritesList list.Model

	errorHandler      *errors.TUIHandler
	noticeTTL         time.Duration
	noticeSeq         int
	statusMessage     string
	statusMessageType errors.MessageType
	hasStatusMessage  bool

	width  int
	height int

	now  func() time.Time
	bell func()
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// NewModel creates the browser model.
func NewModel(d Deps) (*Model, error) {
	if d.Client == nil {
		return nil, fmt.Errorf("tui: image client is required")
	}
	if d.Favorites == nil || d.Prefs == nil {
		return nil, fmt.Errorf("tui: favorites and preferences are required")
	}
	if d.Navigator == nil {
		d.Navigator = history.New(history.DefaultCapacity)
	}
	if d.Timer == nil {
		d.Timer = autoadvance.New(autoadvance.DefaultInterval, nil)
	}
	if d.DoubleTap == nil {
		d.DoubleTap = input.NewDoubleTap(0)
	}
	if d.Swipe == nil {
		d.Swipe = input.NewSwipe(0)
	}
	if d.Context == nil {
		d.Context = context.Background()
	}
	if !d.Mode.IsValid() {
		d.Mode = domain.ModeStandard
	}
	if d.Mode == domain.ModeRestricted && !d.Prefs.Get().AgeVerified {
		d.Mode = domain.ModeStandard
	}
	if d.NoticeTTL <= 0 {
		d.NoticeTTL = defaultNoticeTTL
	}

	m := &Model{
		ctx:         d.Context,
		client:      d.Client,
		loader:      d.Loader,
		nav:         d.Navigator,
		favs:        d.Favorites,
		prefs:       d.Prefs,
		timer:       d.Timer,
		keys:        input.DefaultKeyMap(),
		doubleTap:   d.DoubleTap,
		swipe:       d.Swipe,
		mode:        d.Mode,
		category:    domain.ResolveCategory(d.Mode, d.Category),
		autoAdvance: d.AutoAdvance,
		autostart:   d.Autostart,
		initial:     true,
		help:        help.New(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		noticeTTL:   d.NoticeTTL,
		now:         time.Now,
		bell:        func() { _, _ = os.Stderr.WriteString("\a") },
		tick:        tea.Tick,
	}
	m.categories = newPicker("categories", categoryItems(m.mode), defaultWidth, defaultHeight-headerFooterLines)
	m.favoritesList = newPicker("favorites", favoriteItems(m.favs.List()), defaultWidth, defaultHeight-headerFooterLines)

	m.errorHandler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
		m.statusMessageType = msg.Type
		m.hasStatusMessage = msg.Text != ""
	})

	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.autostart {
		return m.next()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case imageFetchedMsg:
		return m, m.handleImageFetched(msg)
	case frameLoadedMsg:
		return m, m.handleFrameLoaded(msg)
	case autoTickMsg:
		return m, m.handleAutoTick(msg)
	case loadingTickMsg:
		return m, m.handleLoadingTick(msg)
	case noticeExpiredMsg:
		m.handleNoticeExpired(msg)
		return m, nil
	}
	return m, m.updateActiveList(msg)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.progress.Width = max(10, msg.Width/2)
	m.categories.SetSize(m.bodyWidth(), m.bodyHeight())
	m.favoritesList.SetSize(m.bodyWidth(), m.bodyHeight())

	cur, ok := m.nav.Current()
	if !ok || !m.imageLoaded || m.loader == nil {
		return nil
	}
	return m.loadFrame(cur)
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) bodyWidth() int {
	w, _ := m.size()
	return w
}

func (m *Model) bodyHeight() int {
	_, h := m.size()
	return max(1, h-headerFooterLines)
}

// Mode returns the active content mode.
func (m *Model) Mode() domain.Mode {
	return m.mode
}

// Category returns the category used for the next fetch.
func (m *Model) Category() string {
	return m.category
}

// AutoAdvance reports whether the slideshow is on.
func (m *Model) AutoAdvance() bool {
	return m.autoAdvance
}

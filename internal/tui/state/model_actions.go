package state

import (
	stderrors "errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/internal/autoadvance"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/errors"
	"github.com/cristianoliveira/swipewaifu/internal/history"
	"github.com/cristianoliveira/swipewaifu/internal/logging"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/cristianoliveira/swipewaifu/internal/waifu"
)

// next requests a new image. Before the first image it always proceeds;
// afterwards it waits until the current image is on screen.
func (m *Model) next() tea.Cmd {
	status := m.nav.Status()
	if status == history.StatusLoading {
		return nil
	}
	if !m.initial && !m.imageLoaded && status != history.StatusError {
		return nil
	}
	if err := m.nav.Begin(); err != nil {
		return nil
	}
	m.initial = false
	m.imageLoaded = false
	m.loadingPercent = 0
	m.loadingSeq++
	m.ring()
	return tea.Batch(m.fetchCmd(), m.loadingTick(), m.syncTimer())
}

// prev steps back in history. Before the first image it behaves like next.
func (m *Model) prev() tea.Cmd {
	if m.initial {
		return m.next()
	}
	if m.nav.Status() == history.StatusLoading || !m.nav.GoBack() {
		return nil
	}
	m.ring()
	return m.showCurrent()
}

func (m *Model) forward() tea.Cmd {
	if m.nav.Status() == history.StatusLoading || !m.nav.GoForward() {
		return nil
	}
	m.ring()
	return m.showCurrent()
}

func (m *Model) fetchCmd() tea.Cmd {
	ctx, client, mode, category := m.ctx, m.client, m.mode, m.category
	return func() tea.Msg {
		img, err := client.Fetch(ctx, mode, category)
		return imageFetchedMsg{img: img, err: err}
	}
}

func (m *Model) handleImageFetched(msg imageFetchedMsg) tea.Cmd {
	if msg.err != nil {
		m.nav.Fail(msg.err)
		_, hasCurrent := m.nav.Current()
		m.imageLoaded = hasCurrent
		logging.GetGlobal().Warn("image fetch failed", "mode", m.mode.String(), "category", m.category, "error", msg.err)
		return tea.Batch(m.notify(errors.MessageTypeError, fetchFailureText(msg.err)), m.syncTimer())
	}
	m.nav.Complete(msg.img)
	logging.GetGlobal().Debug("image fetched", "url", msg.img.URL, "category", msg.img.Category)
	return m.showCurrent()
}

func fetchFailureText(err error) string {
	switch {
	case stderrors.Is(err, waifu.ErrMalformedResponse):
		return "unexpected response from image service"
	case stderrors.Is(err, waifu.ErrNetwork):
		return "could not reach image service"
	default:
		return "something went wrong"
	}
}

// showCurrent starts displaying whatever the navigator points at.
func (m *Model) showCurrent() tea.Cmd {
	cur, ok := m.nav.Current()
	if !ok {
		return nil
	}
	m.imageLoaded = false
	m.frameErr = nil
	m.timer.Reset()
	return tea.Batch(m.loadFrame(cur), m.syncTimer())
}

func (m *Model) loadFrame(img domain.Image) tea.Cmd {
	url := img.URL
	if m.loader == nil {
		return func() tea.Msg { return frameLoadedMsg{url: url} }
	}
	ctx, loader, w, h := m.ctx, m.loader, m.bodyWidth(), m.bodyHeight()
	return func() tea.Msg {
		frame, err := loader.Load(ctx, url, w, h)
		return frameLoadedMsg{url: url, frame: frame, err: err}
	}
}

func (m *Model) handleFrameLoaded(msg frameLoadedMsg) tea.Cmd {
	cur, ok := m.nav.Current()
	if !ok || cur.URL != msg.url {
		return nil
	}
	m.frame, m.frameURL, m.frameErr = msg.frame, msg.url, msg.err
	if msg.err != nil {
		logging.GetGlobal().Warn("preview failed", "url", msg.url, "error", msg.err)
	}

	if !m.imageLoaded {
		m.imageLoaded = true
		if n, err := m.prefs.IncrementViewCount(); err != nil {
			logging.GetGlobal().Error("view count not saved", "error", err)
		} else {
			colors.StructuredInfo("tui", "view", "counted", nil, map[string]interface{}{"count": n})
		}
	}
	return m.syncTimer()
}

func (m *Model) loadingTick() tea.Cmd {
	seq := m.loadingSeq
	return m.tick(loadingTickInterval, func(time.Time) tea.Msg { return loadingTickMsg{seq: seq} })
}

func (m *Model) handleLoadingTick(msg loadingTickMsg) tea.Cmd {
	if msg.seq != m.loadingSeq || m.nav.Status() != history.StatusLoading {
		return nil
	}
	m.loadingPercent = min(maxLoadingPercent, m.loadingPercent+loadingStep)
	return m.loadingTick()
}

func (m *Model) toggleFavorite() tea.Cmd {
	cur, ok := m.nav.Current()
	if !ok {
		return nil
	}
	saved, err := m.favs.Toggle(cur)
	if err != nil {
		logging.GetGlobal().Error("favorite not saved", "url", cur.URL, "error", err)
		return m.notify(errors.MessageTypeError, "could not save favorite")
	}
	m.refreshFavoritesList()
	m.ring()
	if saved {
		return m.notify(errors.MessageTypeSuccess, "♥ saved!")
	}
	return m.notify(errors.MessageTypeInfo, "♥ removed")
}

func (m *Model) toggleAutoAdvance() tea.Cmd {
	m.autoAdvance = !m.autoAdvance
	text := "⏸ stopped"
	if m.autoAdvance {
		text = "▶ auto-advance on"
	}
	return tea.Batch(m.syncTimer(), m.notify(errors.MessageTypeInfo, text))
}

func (m *Model) changeInterval(faster bool) tea.Cmd {
	interval := autoadvance.NextPreset(m.timer.Interval())
	if faster {
		interval = autoadvance.PrevPreset(m.timer.Interval())
	}
	m.timer.SetInterval(interval)
	return tea.Batch(m.syncTimer(), m.notify(errors.MessageTypeInfo, fmt.Sprintf("⏱ %ds", interval)))
}

func (m *Model) toggleMute() tea.Cmd {
	muted, err := m.prefs.ToggleMuted()
	if err != nil {
		return m.notify(errors.MessageTypeError, "could not save preference")
	}
	if muted {
		return m.notify(errors.MessageTypeInfo, "sound off")
	}
	m.ring()
	return m.notify(errors.MessageTypeInfo, "sound on")
}

func (m *Model) toggleTheme() tea.Cmd {
	theme, err := m.prefs.ToggleTheme()
	if err != nil {
		return m.notify(errors.MessageTypeError, "could not save preference")
	}
	if theme == preferences.ThemeLight {
		return m.notify(errors.MessageTypeInfo, "☀ light mode")
	}
	return m.notify(errors.MessageTypeInfo, "☾ dark mode")
}

// toggleRestricted switches content mode. Entering restricted mode the first
// time asks for the age acknowledgement instead.
func (m *Model) toggleRestricted() tea.Cmd {
	if m.mode == domain.ModeStandard && !m.prefs.Get().AgeVerified {
		m.overlay = overlayAgeGate
		return nil
	}
	if m.mode == domain.ModeRestricted {
		return m.setMode(domain.ModeStandard)
	}
	return m.setMode(domain.ModeRestricted)
}

func (m *Model) confirmAge() tea.Cmd {
	m.overlay = overlayNone
	if err := m.prefs.SetAgeVerified(true); err != nil {
		logging.GetGlobal().Error("age acknowledgement not saved", "error", err)
	}
	return m.setMode(domain.ModeRestricted)
}

// setMode switches mode and resets the category, which is the one value
// valid in both modes.
func (m *Model) setMode(mode domain.Mode) tea.Cmd {
	m.mode = mode
	m.category = domain.DefaultCategory
	m.categories.SetItems(categoryItems(mode))
	if mode == domain.ModeRestricted {
		return m.notify(errors.MessageTypeWarning, "restricted mode on")
	}
	return m.notify(errors.MessageTypeSuccess, "standard mode on")
}

func (m *Model) openCategories() tea.Cmd {
	if m.mode == domain.ModeRestricted {
		return m.notify(errors.MessageTypeInfo, "restricted mode has a single category")
	}
	items := categoryItems(m.mode)
	cmd := m.categories.SetItems(items)
	for i, it := range items {
		if string(it.(categoryItem)) == m.category {
			m.categories.Select(i)
			break
		}
	}
	m.overlay = overlayCategories
	return cmd
}

func (m *Model) selectCategory(category string) tea.Cmd {
	m.overlay = overlayNone
	m.category = domain.ResolveCategory(m.mode, category)
	return m.notify(errors.MessageTypeInfo, "✨ "+m.category)
}

func (m *Model) openFavorites() tea.Cmd {
	m.overlay = overlayFavorites
	return m.refreshFavoritesList()
}

func (m *Model) refreshFavoritesList() tea.Cmd {
	return m.favoritesList.SetItems(favoriteItems(m.favs.List()))
}

// showFavorite displays a saved image without adding it to history.
func (m *Model) showFavorite(img domain.Image) tea.Cmd {
	m.overlay = overlayNone
	if m.nav.Status() == history.StatusLoading {
		return nil
	}
	m.initial = false
	m.nav.Display(img)
	m.ring()
	return m.showCurrent()
}

func (m *Model) removeFavorite(img domain.Image) tea.Cmd {
	if err := m.favs.Remove(img.URL); err != nil {
		return m.notify(errors.MessageTypeError, "could not remove favorite")
	}
	return tea.Batch(m.refreshFavoritesList(), m.notify(errors.MessageTypeInfo, "♥ removed"))
}

// resetAll wipes favorites, preferences and the view counter.
func (m *Model) resetAll() tea.Cmd {
	m.overlay = overlayNone
	if err := m.favs.Clear(); err != nil {
		logging.GetGlobal().Error("reset favorites failed", "error", err)
	}
	if err := m.prefs.ResetAll(); err != nil {
		logging.GetGlobal().Error("reset storage failed", "error", err)
		return m.notify(errors.MessageTypeError, "reset failed")
	}
	m.mode = domain.ModeStandard
	m.category = domain.DefaultCategory
	m.autoAdvance = false
	m.categories.SetItems(categoryItems(m.mode))
	return tea.Batch(m.refreshFavoritesList(), m.syncTimer(), m.notify(errors.MessageTypeSuccess, "reset complete"))
}

// notify shows a transient notice and schedules its removal.
func (m *Model) notify(typ errors.MessageType, text string) tea.Cmd {
	switch typ {
	case errors.MessageTypeError:
		m.errorHandler.Error(text)
	case errors.MessageTypeWarning:
		m.errorHandler.Warning(text)
	case errors.MessageTypeSuccess:
		m.errorHandler.Success(text)
	default:
		m.errorHandler.Info(text)
	}
	m.noticeSeq++
	seq := m.noticeSeq
	return m.tick(m.noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m *Model) handleNoticeExpired(msg noticeExpiredMsg) {
	if msg.seq != m.noticeSeq {
		return
	}
	m.statusMessage = ""
	m.hasStatusMessage = false
	m.nav.ClearError()
}

func (m *Model) ring() {
	if m.bell != nil && !m.prefs.Get().Muted {
		m.bell()
	}
}

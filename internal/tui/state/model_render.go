package state

import (
	"fmt"

	"github.com/cristianoliveira/swipewaifu/internal/history"
	"github.com/cristianoliveira/swipewaifu/internal/tui/render"
)

// View implements tea.Model.
func (m *Model) View() string {
	width, _ := m.size()
	prefs := m.prefs.Get()
	theme := render.ForName(prefs.Theme)
	snap := m.nav.Snapshot()

	header := render.Header(theme, render.HeaderState{
		Mode:        m.mode,
		Category:    m.category,
		Favorite:    snap.HasCurrent() && m.favs.Contains(snap.Current.URL),
		Favorites:   m.favs.Len(),
		Views:       prefs.ViewCount,
		AutoAdvance: m.autoAdvance,
		Interval:    m.timer.Interval(),
		Remaining:   m.timer.Remaining(),
		Muted:       prefs.Muted,
		Position:    position(snap),
		Width:       width,
	})
	footer := render.Footer(theme, render.FooterState{
		Notice:     m.statusMessage,
		NoticeType: m.statusMessageType,
		HasNotice:  m.hasStatusMessage,
		Help:       m.help.ShortHelpView(m.keys.ShortHelp()),
		Width:      width,
	})
	return header + "\n" + m.body(theme, snap) + "\n" + footer
}

func position(snap history.State) string {
	if snap.Pinned {
		return "favorite"
	}
	if n, ok := snap.Cursor.Offset(); ok {
		return fmt.Sprintf("-%d", n+1)
	}
	return ""
}

func (m *Model) body(theme render.Theme, snap history.State) string {
	w, h := m.bodyWidth(), m.bodyHeight()

	switch m.overlay {
	case overlayHelp:
		return render.Dialog(theme, "shortcuts", m.help.FullHelpView(m.keys.FullHelp()), w, h)
	case overlayAgeGate:
		return render.Dialog(theme, "are you 18 or older?",
			"restricted mode shows adult content.\n\n[y] yes, continue   [n] cancel", w, h)
	case overlayReset:
		return render.Dialog(theme, "reset everything?",
			"favorites, settings and the view counter will be cleared.\n\n[y] reset   [n] cancel", w, h)
	case overlayCategories:
		return m.categories.View()
	case overlayFavorites:
		if m.favs.Len() == 0 {
			return render.Message(theme, "no favorites yet", "double-click or press space to save one", w, h)
		}
		return m.favoritesList.View()
	}

	switch {
	case snap.Status == history.StatusLoading:
		return render.Loading(theme, m.progress.ViewAs(m.loadingPercent), w, h)
	case m.initial:
		return render.Welcome(theme, w, h)
	case !snap.HasCurrent():
		detail := ""
		if snap.Err != nil {
			detail = snap.Err.Error()
		}
		return render.Message(theme, "could not fetch image", detail, w, h)
	case m.frameErr != nil:
		return render.Message(theme, "could not show image", snap.Current.URL, w, h)
	case m.loader == nil:
		return render.Message(theme, snap.Current.URL, "image preview is off", w, h)
	case m.frameURL != snap.Current.URL:
		return render.Loading(theme, m.progress.ViewAs(maxLoadingPercent), w, h)
	}
	return render.Frame(m.frame, w, h)
}

package state

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes keys to the open dialog first, then to the main view.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch m.overlay {
	case overlayAgeGate:
		return m.handleConfirmation(msg, m.confirmAge)
	case overlayReset:
		return m.handleConfirmation(msg, m.resetAll)
	case overlayCategories:
		return m.handleCategoryKey(msg)
	case overlayFavorites:
		return m.handleFavoritesKey(msg)
	case overlayHelp:
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Quit) {
			m.overlay = overlayNone
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m.next()
	case key.Matches(msg, m.keys.Prev):
		return m.prev()
	case key.Matches(msg, m.keys.Forward):
		return m.forward()
	case key.Matches(msg, m.keys.Favorite):
		return m.toggleFavorite()
	case key.Matches(msg, m.keys.AutoAdvance):
		return m.toggleAutoAdvance()
	case key.Matches(msg, m.keys.Faster):
		return m.changeInterval(true)
	case key.Matches(msg, m.keys.Slower):
		return m.changeInterval(false)
	case key.Matches(msg, m.keys.Mute):
		return m.toggleMute()
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Restricted):
		return m.toggleRestricted()
	case key.Matches(msg, m.keys.Category):
		return m.openCategories()
	case key.Matches(msg, m.keys.Favorites):
		return m.openFavorites()
	case key.Matches(msg, m.keys.Reset):
		m.overlay = overlayReset
	}
	return nil
}

// handleConfirmation handles y/n dialogs.
func (m *Model) handleConfirmation(msg tea.KeyMsg, confirm func() tea.Cmd) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return confirm()
	case key.Matches(msg, m.keys.Cancel):
		m.overlay = overlayNone
	}
	return nil
}

func (m *Model) handleCategoryKey(msg tea.KeyMsg) tea.Cmd {
	if m.categories.FilterState() != list.Filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.overlay = overlayNone
			return nil
		case tea.KeyEnter:
			if it, ok := m.categories.SelectedItem().(categoryItem); ok {
				return m.selectCategory(string(it))
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.categories, cmd = m.categories.Update(msg)
	return cmd
}

func (m *Model) handleFavoritesKey(msg tea.KeyMsg) tea.Cmd {
	if m.favoritesList.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc", "f":
			m.overlay = overlayNone
			return nil
		case "enter":
			if it, ok := m.favoritesList.SelectedItem().(favoriteItem); ok {
				return m.showFavorite(it.img)
			}
			return nil
		case "x", "delete":
			if it, ok := m.favoritesList.SelectedItem().(favoriteItem); ok {
				return m.removeFavorite(it.img)
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.favoritesList, cmd = m.favoritesList.Update(msg)
	return cmd
}

// updateActiveList forwards other messages (list filtering, status
// timeouts) to the open list.
func (m *Model) updateActiveList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.overlay {
	case overlayCategories:
		m.categories, cmd = m.categories.Update(msg)
	case overlayFavorites:
		m.favoritesList, cmd = m.favoritesList.Update(msg)
	}
	return cmd
}

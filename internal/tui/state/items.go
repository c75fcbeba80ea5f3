package state

import (
	"path"

	"github.com/charmbracelet/bubbles/list"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
)

type categoryItem string

func (c categoryItem) FilterValue() string { return string(c) }
func (c categoryItem) Title() string       { return string(c) }
func (c categoryItem) Description() string { return "" }

type favoriteItem struct {
	img domain.Image
}

func (f favoriteItem) FilterValue() string { return f.img.URL }
func (f favoriteItem) Title() string       { return path.Base(f.img.URL) }

func (f favoriteItem) Description() string {
	desc := f.img.Category
	if f.img.Restricted {
		desc += " · restricted"
	}
	if !f.img.FetchedAt.IsZero() {
		desc += " · " + f.img.FetchedAt.Local().Format("2006-01-02 15:04")
	}
	return desc
}

func newPicker(title string, items []list.Item, width, height int) list.Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, width, height)
	l.Title = title
	l.DisableQuitKeybindings()
	return l
}

func categoryItems(mode domain.Mode) []list.Item {
	cats := domain.Categories(mode)
	items := make([]list.Item, len(cats))
	for i, c := range cats {
		items[i] = categoryItem(c)
	}
	return items
}

func favoriteItems(imgs []domain.Image) []list.Item {
	items := make([]list.Item, len(imgs))
	for i, img := range imgs {
		items[i] = favoriteItem{img: img}
	}
	return items
}

package main

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/favorites"
	"github.com/cristianoliveira/swipewaifu/internal/logging"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/cristianoliveira/swipewaifu/internal/storage"
	"github.com/cristianoliveira/swipewaifu/internal/waifu"
)

// backend is what commands need from the application. Tests supply one
// backed by in-memory storage and an httptest server.
type backend interface {
	Favorites() (*favorites.Store, error)
	Preferences() (*preferences.Store, error)
	Client() (*waifu.Client, error)
}

// appDeps opens configuration, logging and storage on first use, so
// `--help` and `version` never touch the database.
type appDeps struct {
	once   sync.Once
	err    error
	kv     storage.KV
	favs   *favorites.Store
	prefs  *preferences.Store
	client *waifu.Client
}

var app = &appDeps{}

func (d *appDeps) init() error {
	d.once.Do(func() {
		config.Load()
		if config.GetBool("debug", false) {
			colors.SetDebug(true)
		}
		if err := logging.InitGlobal(); err != nil {
			colors.Debug("file logging disabled:", err.Error())
		}

		kv, err := storage.NewFromConfig()
		if err != nil {
			d.err = fmt.Errorf("open storage: %w", err)
			return
		}
		d.kv = kv

		if d.favs, err = favorites.Load(kv); err != nil {
			d.err = err
			return
		}
		if d.prefs, err = preferences.Load(kv); err != nil {
			d.err = err
			return
		}
		d.client = waifu.NewFromConfig()
		logging.GetGlobal().Info("application initialized", "db_path", config.Get("db_path", ""), "api", d.client.BaseURL())
	})
	return d.err
}

func (d *appDeps) Favorites() (*favorites.Store, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	return d.favs, nil
}

func (d *appDeps) Preferences() (*preferences.Store, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	return d.prefs, nil
}

func (d *appDeps) Client() (*waifu.Client, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	return d.client, nil
}

// Close releases storage if it was opened.
func (d *appDeps) Close() error {
	if d.kv == nil {
		return nil
	}
	return d.kv.Close()
}

// Package preferences provides persistence for the small user preferences
// kept next to the favorites list.
package preferences

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/logging"
	"github.com/cristianoliveira/swipewaifu/internal/storage"
)

// Storage keys.
const (
	KeyTheme       = "theme"
	KeyViewCount   = "waifu-view-count"
	KeyAgeVerified = "nsfw-age-verified"
	KeyMuted       = "sound-muted"
)

// Theme constants.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preferences holds the persisted user preferences.
type Preferences struct {
	// Theme is "dark" or "light".
	Theme string `json:"theme" yaml:"theme"`

	// ViewCount is the number of images shown across all sessions.
	ViewCount int `json:"viewCount" yaml:"viewCount"`

	// AgeVerified records the restricted-mode age acknowledgement.
	AgeVerified bool `json:"ageVerified" yaml:"ageVerified"`

	// Muted silences the terminal bell.
	Muted bool `json:"muted" yaml:"muted"`
}

// Defaults returns preferences with all default values.
func Defaults() Preferences {
	return Preferences{Theme: ThemeDark}
}

// Store loads preferences once and writes each change straight back.
type Store struct {
	mu    sync.RWMutex
	kv    storage.KV
	prefs Preferences
}

// Load reads every preference from kv. Absent or unparsable values take
// their defaults.
func Load(kv storage.KV) (*Store, error) {
	p := Defaults()

	theme, ok, err := kv.Get(KeyTheme)
	if err != nil {
		return nil, fmt.Errorf("preferences: load %s: %w", KeyTheme, err)
	}
	if ok {
		if validateTheme(theme) == nil {
			p.Theme = theme
		} else {
			recovered(KeyTheme, theme)
		}
	}

	if raw, ok, err := kv.Get(KeyViewCount); err != nil {
		return nil, fmt.Errorf("preferences: load %s: %w", KeyViewCount, err)
	} else if ok {
		n, perr := strconv.Atoi(raw)
		if perr != nil || n < 0 {
			recovered(KeyViewCount, raw)
		} else {
			p.ViewCount = n
		}
	}

	if p.AgeVerified, err = loadBool(kv, KeyAgeVerified); err != nil {
		return nil, err
	}
	if p.Muted, err = loadBool(kv, KeyMuted); err != nil {
		return nil, err
	}

	return &Store{kv: kv, prefs: p}, nil
}

func loadBool(kv storage.KV, key string) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return false, fmt.Errorf("preferences: load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	b, perr := strconv.ParseBool(raw)
	if perr != nil {
		recovered(key, raw)
		return false, nil
	}
	return b, nil
}

func recovered(key, raw string) {
	logging.GetGlobal().Warn("unparsable preference, using default", "key", key, "value", raw)
	colors.StructuredLog(colors.LevelWarn, "preferences", "load", "recovered", nil, map[string]interface{}{"key": key})
}

// Get returns a copy of the current preferences.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// SetTheme stores theme.
func (s *Store) SetTheme(theme string) error {
	if err := validateTheme(theme); err != nil {
		return err
	}
	return s.update(KeyTheme, theme, func(p *Preferences) { p.Theme = theme })
}

// ToggleTheme flips between dark and light and returns the new theme.
func (s *Store) ToggleTheme() (string, error) {
	next := ThemeLight
	if s.Get().Theme == ThemeLight {
		next = ThemeDark
	}
	return next, s.SetTheme(next)
}

// IncrementViewCount adds one to the view counter and returns the new value.
func (s *Store) IncrementViewCount() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.prefs.ViewCount + 1
	if err := s.kv.Set(KeyViewCount, strconv.Itoa(n)); err != nil {
		return s.prefs.ViewCount, fmt.Errorf("preferences: save %s: %w", KeyViewCount, err)
	}
	s.prefs.ViewCount = n
	return n, nil
}

// SetAgeVerified stores the age acknowledgement.
func (s *Store) SetAgeVerified(v bool) error {
	return s.update(KeyAgeVerified, strconv.FormatBool(v), func(p *Preferences) { p.AgeVerified = v })
}

// SetMuted stores the mute flag.
func (s *Store) SetMuted(v bool) error {
	return s.update(KeyMuted, strconv.FormatBool(v), func(p *Preferences) { p.Muted = v })
}

// ToggleMuted flips the mute flag and returns the new value.
func (s *Store) ToggleMuted() (bool, error) {
	next := !s.Get().Muted
	return next, s.SetMuted(next)
}

// Set assigns a preference by its storage key, parsing value as needed.
func (s *Store) Set(key, value string) error {
	switch key {
	case KeyTheme:
		return s.SetTheme(value)
	case KeyViewCount:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s value: %s", key, value)
		}
		return s.update(KeyViewCount, strconv.Itoa(n), func(p *Preferences) { p.ViewCount = n })
	case KeyAgeVerified, KeyMuted:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s value: %s", key, value)
		}
		if key == KeyMuted {
			return s.SetMuted(b)
		}
		return s.SetAgeVerified(b)
	default:
		return fmt.Errorf("unknown preference: %s", key)
	}
}

// ResetAll clears the whole persisted key space, favorites included, and
// returns preferences to their defaults.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Clear(); err != nil {
		return fmt.Errorf("preferences: reset: %w", err)
	}
	s.prefs = Defaults()
	return nil
}

func (s *Store) update(key, raw string, apply func(*Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("preferences: save %s: %w", key, err)
	}
	apply(&s.prefs)
	return nil
}

// Keys lists the preference keys in display order.
func Keys() []string {
	return []string{KeyTheme, KeyViewCount, KeyAgeVerified, KeyMuted}
}

// Value returns the stored string form of the preference named key.
func (p Preferences) Value(key string) (string, bool) {
	switch key {
	case KeyTheme:
		return p.Theme, true
	case KeyViewCount:
		return strconv.Itoa(p.ViewCount), true
	case KeyAgeVerified:
		return strconv.FormatBool(p.AgeVerified), true
	case KeyMuted:
		return strconv.FormatBool(p.Muted), true
	default:
		return "", false
	}
}

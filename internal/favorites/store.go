// Package favorites keeps the user's saved images.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/logging"
	"github.com/cristianoliveira/swipewaifu/internal/storage"
)

// StorageKey is the key the favorites list is persisted under.
const StorageKey = "swipewaifu_favorites"

// ErrStorageParse indicates the persisted list could not be decoded.
var ErrStorageParse = errors.New("favorites: stored data is malformed")

// Store is an ordered, URL-deduplicated set of images, newest first.
// Every mutation writes the full list back to the KV before returning.
type Store struct {
	mu    sync.RWMutex
	kv    storage.KV
	items []domain.Image
}

// Load reads the persisted list once. Missing or malformed data yields an
// empty store; the parse failure is only logged.
func Load(kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}
	raw, ok, err := kv.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("favorites: load: %w", err)
	}
	if !ok || raw == "" {
		return s, nil
	}
	items, err := decode(raw)
	if err != nil {
		logging.GetGlobal().Warn("favorites unreadable, starting empty", "key", StorageKey, "error", err)
		colors.StructuredLog(colors.LevelWarn, "favorites", "load", "recovered", err, map[string]interface{}{"key": StorageKey})
		return s, nil
	}
	s.items = items
	return s, nil
}

func decode(raw string) ([]domain.Image, error) {
	var items []domain.Image
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageParse, err)
	}
	return dedupe(items), nil
}

func dedupe(items []domain.Image) []domain.Image {
	seen := make(map[string]bool, len(items))
	out := make([]domain.Image, 0, len(items))
	for _, it := range items {
		if seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		out = append(out, it)
	}
	return out
}

// Add prepends img. Adding a URL that is already saved is a no-op.
func (s *Store) Add(img domain.Image) error {
	if img.IsZero() {
		return domain.ErrEmptyURL
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(img.URL) >= 0 {
		return nil
	}
	next := make([]domain.Image, 0, len(s.items)+1)
	next = append(next, img)
	next = append(next, s.items...)
	return s.commitLocked(next)
}

// Remove drops the image with url. Unknown URLs are a no-op.
func (s *Store) Remove(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(url) < 0 {
		return nil
	}

	next := make([]domain.Image, 0, len(s.items))
	for _, it := range s.items {
		if it.URL != url {
			next = append(next, it)
		}
	}
	return s.commitLocked(next)
}

// Toggle adds img when absent and removes it when present. It reports
// whether the image is saved afterwards.
func (s *Store) Toggle(img domain.Image) (bool, error) {
	if s.Contains(img.URL) {
		return false, s.Remove(img.URL)
	}
	return true, s.Add(img)
}

// Contains reports whether url is saved.
func (s *Store) Contains(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(url) >= 0
}

// Clear removes every favorite.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(nil)
}

// Import merges imgs after the existing favorites, skipping known URLs.
// It returns how many were added.
func (s *Store) Import(imgs []domain.Image) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := dedupe(append(append([]domain.Image{}, s.items...), imgs...))
	added := len(merged) - len(s.items)
	if added == 0 {
		return 0, nil
	}
	return added, s.commitLocked(merged)
}

// List returns a copy of the favorites, newest first.
func (s *Store) List() []domain.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Image, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) indexLocked(url string) int {
	for i, it := range s.items {
		if it.URL == url {
			return i
		}
	}
	return -1
}

// commitLocked persists next and only then swaps it in, so a failed write
// leaves memory and storage in agreement.
func (s *Store) commitLocked(next []domain.Image) error {
	if next == nil {
		next = []domain.Image{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("favorites: encode: %w", err)
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("favorites: save: %w", err)
	}
	s.items = next
	return nil
}

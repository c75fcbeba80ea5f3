// Package domain provides the value types shared by every swipewaifu component.
package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrEmptyURL indicates an image without a usable URL.
var ErrEmptyURL = errors.New("image url is empty")

// Image is a single fetched image. It is a value type and is never mutated
// after creation; the URL is its identity.
type Image struct {
	URL        string
	Category   string
	FetchedAt  time.Time
	Restricted bool
}

// NewImage builds an Image stamped with the given fetch time.
func NewImage(url, category string, mode Mode, fetchedAt time.Time) (Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Image{}, ErrEmptyURL
	}
	return Image{
		URL:        url,
		Category:   category,
		FetchedAt:  fetchedAt,
		Restricted: mode == ModeRestricted,
	}, nil
}

// Equal reports whether two images refer to the same URL.
func (i Image) Equal(other Image) bool {
	return i.URL == other.URL
}

// IsZero reports whether the image is the zero value.
func (i Image) IsZero() bool {
	return i.URL == ""
}

// Mode returns the content mode that produced the image.
func (i Image) Mode() Mode {
	if i.Restricted {
		return ModeRestricted
	}
	return ModeStandard
}

// imageJSON is the persisted representation. Field names match the keys the
// browser build stored, so exported favorites stay interchangeable.
type imageJSON struct {
	URL       string `json:"url" yaml:"url"`
	Category  string `json:"category" yaml:"category"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	IsNsfw    bool   `json:"isNsfw" yaml:"isNsfw"`
}

// MarshalJSON implements json.Marshaler.
func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Image) UnmarshalJSON(data []byte) error {
	var rec imageJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if strings.TrimSpace(rec.URL) == "" {
		return ErrEmptyURL
	}
	*i = Image{
		URL:        rec.URL,
		Category:   rec.Category,
		Restricted: rec.IsNsfw,
	}
	if rec.Timestamp > 0 {
		i.FetchedAt = time.UnixMilli(rec.Timestamp).UTC()
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (i Image) MarshalYAML() (interface{}, error) {
	return i.record(), nil
}

func (i Image) record() imageJSON {
	var ts int64
	if !i.FetchedAt.IsZero() {
		ts = i.FetchedAt.UnixMilli()
	}
	return imageJSON{
		URL:       i.URL,
		Category:  i.Category,
		Timestamp: ts,
		IsNsfw:    i.Restricted,
	}
}

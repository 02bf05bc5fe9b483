package platzhalter

import (
	"errors"
	"fmt"
)

// ImageCache is a read-through cache of rendered images keyed by
// fingerprint, backed by the Store. Entries are never evicted, expired, or
// updated; growth is unbounded by design.
type ImageCache struct {
	store *Store
}

// NewImageCache creates an ImageCache backed by the given Store.
func NewImageCache(s *Store) *ImageCache {
	return &ImageCache{store: s}
}

// Get returns the cached image for fp, reporting whether it was present.
// Bytes are returned exactly as stored, with no freshness check.
func (c *ImageCache) Get(fp Fingerprint) ([]byte, bool, error) {
	data, err := c.store.GetImage(fp.String())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cached image: %w", err)
	}
	return data, true, nil
}

// Put stores freshly rendered bytes under fp.
func (c *ImageCache) Put(fp Fingerprint, data []byte) error {
	if err := c.store.PutImage(fp.String(), data); err != nil {
		return fmt.Errorf("store rendered image: %w", err)
	}
	return nil
}

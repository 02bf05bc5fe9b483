package platzhalter

import (
	"hash/fnv"
	"strconv"
)

// Fingerprint is a stable 64-bit cache key derived from a request's
// canonical fields. Identical requests hash identically across process
// restarts. Optional fields are presence-tagged before hashing, so "absent"
// and "present with a default-looking value" never collide.
type Fingerprint uint64

// String returns the decimal form used as the store key.
func (f Fingerprint) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

// Fingerprint hashes the raw dimension text and the presence and value of
// each optional styling field through FNV-1a.
func (s *RequestSpec) Fingerprint() Fingerprint {
	h := fnv.New64a()
	h.Write([]byte(s.RawDimensions))

	writeColor := func(c *Color) {
		if c == nil {
			h.Write([]byte{0})
			return
		}
		h.Write([]byte{1, c.R, c.G, c.B, c.A})
	}
	writeColor(s.Config.Background)
	writeColor(s.Config.Border)
	if s.Config.BorderSize == nil {
		h.Write([]byte{0})
	} else {
		h.Write([]byte{1, *s.Config.BorderSize})
	}
	return Fingerprint(h.Sum64())
}

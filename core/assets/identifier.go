package assets

import (
	"regexp"
	"strings"
)

var versionTag = regexp.MustCompile(`^v\d+$`)

// Identifier derives object keys from public asset URLs.
type Identifier struct {
	// Marker must occur somewhere in the URL, e.g. "cloudinary.com".
	Marker string
	// Delimiter is the path boundary before the object path, e.g. "/upload/".
	Delimiter string
}

// NewIdentifier builds an Identifier from config.
func NewIdentifier(cfg Config) Identifier {
	return Identifier{Marker: cfg.DomainMarker, Delimiter: cfg.Delimiter}
}

// DeriveKey maps
//
//	https://res.cloudinary.com/demo/image/upload/v1234567890/trk-inventory/barang/image123.jpg
//
// to "trk-inventory/barang/image123". Version segments (v followed by digits) are
// dropped and only the final segment loses its extension. ok is false when the
// marker or the delimiter is missing or nothing remains.
func (id Identifier) DeriveKey(rawURL string) (key string, ok bool) {
	if id.Marker == "" || id.Delimiter == "" || !strings.Contains(rawURL, id.Marker) {
		return "", false
	}
	_, path, found := strings.Cut(rawURL, id.Delimiter)
	if !found {
		return "", false
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	segments := strings.Split(path, "/")
	kept := segments[:0]
	for _, s := range segments {
		if !versionTag.MatchString(s) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return "", false
	}

	last := kept[len(kept)-1]
	if dot := strings.LastIndex(last, "."); dot >= 0 {
		kept[len(kept)-1] = last[:dot]
	}

	key = strings.Join(kept, "/")
	if key == "" {
		return "", false
	}
	return key, true
}

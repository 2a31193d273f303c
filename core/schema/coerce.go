package schema

import (
	"net/url"
	"strings"
	"time"

	"inventory-sync/core/snapshot"
	"inventory-sync/core/utils"
)

// Policy decides what happens to a missing or unparsable value.
type Policy int

const (
	// Required fails the record when the value is missing or invalid.
	Required Policy = iota
	// ZeroDefault substitutes the zero value for missing or invalid numbers.
	ZeroDefault
	// NullDefault leaves missing values null. Invalid numbers become null, invalid dates fail.
	NullDefault
)

// DateLayouts are tried in order when parsing date cells.
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// row reads canonical fields out of a record and keeps the first failure.
type row struct {
	rec     snapshot.Record
	profile Profile
	err     error
}

func (r *row) fail(field, value, reason string) {
	if r.err == nil {
		r.err = &FieldError{Field: field, Column: r.profile.Source(field), Value: value, Reason: reason}
	}
}

func (r *row) raw(field string) (string, bool) {
	v, ok := r.rec.Get(r.profile.Source(field))
	if !ok || v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	return s, s != ""
}

// secret reads a cell verbatim. Only an absent or empty cell is missing.
func (r *row) secret(field string) (string, bool) {
	v, ok := r.rec.Get(r.profile.Source(field))
	if !ok || v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

func (r *row) required(field string) string {
	s, ok := r.raw(field)
	if !ok {
		r.fail(field, "", "is required")
	}
	return s
}

func (r *row) optional(field string) *string {
	s, ok := r.raw(field)
	if !ok {
		return nil
	}
	return &s
}

func (r *row) intValue(field string, p Policy) *int {
	s, ok := r.raw(field)
	if !ok {
		return r.intFallback(field, "", "is required", p)
	}
	i, ok := utils.ToInt(s)
	if !ok {
		return r.intFallback(field, s, "is not a whole number", p)
	}
	return &i
}

func (r *row) intFallback(field, value, reason string, p Policy) *int {
	switch p {
	case ZeroDefault:
		zero := 0
		return &zero
	case NullDefault:
		return nil
	}
	r.fail(field, value, reason)
	return nil
}

func (r *row) floatValue(field string, p Policy) *float64 {
	s, ok := r.raw(field)
	reason := "is required"
	if ok {
		if f, ok := utils.ToFloat(s); ok {
			return &f
		}
		reason = "is not a number"
	}
	switch p {
	case ZeroDefault:
		zero := 0.0
		return &zero
	case NullDefault:
		return nil
	}
	r.fail(field, s, reason)
	return nil
}

func (r *row) dateValue(field string, p Policy) *time.Time {
	s, ok := r.raw(field)
	if !ok {
		if p == Required {
			r.fail(field, "", "is required")
		}
		return nil
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	r.fail(field, s, "is not a recognised date")
	return nil
}

// boolValue reads a yes/no cell. Missing cells take def.
func (r *row) boolValue(field string, def bool) bool {
	s, ok := r.raw(field)
	if !ok {
		return def
	}
	b, ok := utils.ToBool(s)
	if !ok {
		r.fail(field, s, "is not a yes/no value")
		return def
	}
	return b
}

// NotAssetURL is the rejection reason for malformed asset references.
const NotAssetURL = "is not an absolute http(s) URL"

// IsAssetURL reports whether s is an absolute http(s) URL with a host.
func IsAssetURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// assetURL accepts only absolute http(s) URLs.
func (r *row) assetURL(field string) *string {
	s, ok := r.raw(field)
	if !ok {
		return nil
	}
	if !IsAssetURL(s) {
		r.fail(field, s, NotAssetURL)
		return nil
	}
	return &s
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

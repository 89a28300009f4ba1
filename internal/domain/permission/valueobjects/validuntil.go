package valueobjects

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = time.DateOnly

// ValidUntil is the optional expiry of a permission, stored as the ISO
// string it was given. The zero value means no expiry.
type ValidUntil struct {
	raw string
	at  time.Time
}

// NewValidUntil accepts an ISO date (2006-01-02) or an RFC 3339 timestamp.
func NewValidUntil(s string) (ValidUntil, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ValidUntil{}, fmt.Errorf("valid_until cannot be empty")
	}

	if t, err := time.Parse(dateLayout, s); err == nil {
		// a bare date stays valid for the whole day
		return ValidUntil{raw: s, at: t.Add(24*time.Hour - time.Nanosecond)}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return ValidUntil{raw: s, at: t}, nil
	}

	return ValidUntil{}, fmt.Errorf("valid_until must be an ISO date (YYYY-MM-DD) or RFC 3339 timestamp")
}

// NoExpiry returns the zero ValidUntil.
func NoExpiry() ValidUntil {
	return ValidUntil{}
}

func (v ValidUntil) IsSet() bool {
	return v.raw != ""
}

func (v ValidUntil) String() string {
	return v.raw
}

// Ptr returns nil when no expiry is set.
func (v ValidUntil) Ptr() *string {
	if !v.IsSet() {
		return nil
	}
	s := v.raw
	return &s
}

// IsExpiredAt reports whether the permission has lapsed at t.
func (v ValidUntil) IsExpiredAt(t time.Time) bool {
	return v.IsSet() && t.After(v.at)
}

// Package inventory models the physical inventory: categories of items,
// items, lockers and the stock of each item held in a locker.
package inventory

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

type fieldErrors []errors.FieldError

func (f *fieldErrors) add(field, format string, args ...any) {
	*f = append(*f, errors.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, f...)
}

func (f *fieldErrors) checkLength(field, value string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(value)
	switch {
	case n < minLen:
		f.add(field, "must be at least %d characters long", minLen)
	case n > maxLen:
		f.add(field, "must be at most %d characters long", maxLen)
	default:
		return true
	}
	return false
}

func (f *fieldErrors) checkID(field string, id uint) bool {
	if id == 0 {
		f.add(field, "must be greater than 0")
		return false
	}
	return true
}

// patchString validates a non-nullable string patch field and writes it to target.
func (f *fieldErrors) patchString(field string, v optional.Value[string], minLen, maxLen int, target *string) {
	if !v.IsSet() {
		return
	}
	s, ok := v.Get()
	if !ok {
		f.add(field, "cannot be null")
		return
	}
	if f.checkLength(field, s, minLen, maxLen) {
		*target = s
	}
}

func (f *fieldErrors) patchID(field string, v optional.Value[uint], target *uint) {
	if !v.IsSet() {
		return
	}
	id, ok := v.Get()
	if !ok {
		f.add(field, "cannot be null")
		return
	}
	if f.checkID(field, id) {
		*target = id
	}
}

func (f *fieldErrors) patchBool(field string, v optional.Value[bool], target *bool) {
	if !v.IsSet() {
		return
	}
	b, ok := v.Get()
	if !ok {
		f.add(field, "cannot be null")
		return
	}
	*target = b
}

// DateOf truncates t to its UTC calendar day. Inventory rows carry dates,
// not timestamps.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

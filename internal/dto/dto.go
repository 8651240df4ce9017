// Package dto holds the request and response shapes of the HTTP API.
// Create requests build a new row; update requests carry pointer fields
// and only touch the fields that were sent.
package dto

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

// Builder turns a create request into a new row.
type Builder[T any] interface {
	Build() (*T, error)
}

// Patcher applies an update request onto a stored row.
type Patcher[T any] interface {
	Apply(row *T) error
}

// ParseDate parses a YYYY-MM-DD value as a UTC civil date.
func ParseDate(value string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q: expected %s", value, DateLayout)
	}
	return datatypes.Date(t), nil
}

// optionalDate parses value when it is set and not empty.
func optionalDate(value *string) (*datatypes.Date, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	d, err := ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// patchDate sets *dst when value was sent. An empty string clears it.
func patchDate(dst **datatypes.Date, value *string) error {
	if value == nil {
		return nil
	}
	d, err := optionalDate(value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

// patchRequiredDate sets *dst when value was sent.
func patchRequiredDate(dst *datatypes.Date, value *string) error {
	if value == nil {
		return nil
	}
	d, err := ParseDate(*value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func set[V any](dst *V, value *V) {
	if value != nil {
		*dst = *value
	}
}

// setRef sets a nullable reference when it was sent. Zero clears it.
func setRef(dst **uint64, value *uint64) {
	if value == nil {
		return
	}
	if *value == 0 {
		*dst = nil
		return
	}
	id := *value
	*dst = &id
}

func trimmed(value string) string {
	return strings.TrimSpace(value)
}

func setTrimmed(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// ref returns nil for a zero id.
func ref(id *uint64) *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

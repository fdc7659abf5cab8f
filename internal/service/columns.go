package service

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// columns collects the fields a patch actually carries. Nil pointers are
// left out so the stored value survives.
type columns map[string]any

func (c columns) text(name string, value *string) {
	if value != nil {
		c[name] = strings.TrimSpace(*value)
	}
}

// required rejects a value that is present but blank.
func (c columns) required(name, field string, value *string) error {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return invalidField(field, "is required")
	}
	c[name] = trimmed
	return nil
}

// optional stores NULL when the caller sends an empty string.
func (c columns) optional(name string, value *string) {
	if value == nil {
		return
	}
	if trimmed := strings.TrimSpace(*value); trimmed != "" {
		c[name] = trimmed
		return
	}
	c[name] = nil
}

// clearable keeps an empty string instead of NULL. Page columns that are
// backfilled with default copy use it so a cleared value stays cleared.
func (c columns) clearable(name string, value *string) {
	if value != nil {
		c[name] = strings.TrimSpace(*value)
	}
}

func (c columns) integer(name string, value *int) {
	if value != nil {
		c[name] = *value
	}
}

func (c columns) boolean(name string, value *bool) {
	if value != nil {
		c[name] = *value
	}
}

func (c columns) list(name string, value *[]string) {
	if value != nil {
		c[name] = datatypes.JSONSlice[string](cleanList(*value))
	}
}

func (c columns) date(name, field string, value *string) error {
	if value == nil {
		return nil
	}
	parsed, err := ParseDate(*value)
	if err != nil {
		return invalidField(field, "must be a date")
	}
	c[name] = parsed
	return nil
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate accepts the formats produced by HTML date and datetime-local inputs.
func ParseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, time.Local)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

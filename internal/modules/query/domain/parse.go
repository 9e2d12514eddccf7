package domain

import (
	"fmt"
	"strings"
	"time"

	sharedErrors "github.com/kentcanonigo/slack-search-generator/internal/shared/errors"
	"github.com/samber/oops"
)

const (
	Today     = "today"
	Yesterday = "yesterday"
)

var dateLayouts = map[DateFormat]string{
	DateFormatFullDate: "2006-01-02",
	DateFormatMonth:    "2006-01",
	DateFormatYear:     "2006",
	DateFormatDateTime: "2006-01-02 15:04",
}

// date_time input may also be typed ISO style or without a time
var extraInputLayouts = map[DateFormat][]string{
	DateFormatDateTime: {"2006-01-02T15:04", "2006-01-02"},
}

// Layout returns the time layout a date format is rendered with. The
// zero format renders as a full date; unknown formats report false.
func Layout(format DateFormat) (string, bool) {
	if format == "" {
		format = DateFormatFullDate
	}
	layout, ok := dateLayouts[format]
	return layout, ok
}

// Slack labels Google Docs as "gdoc" in its own filter menu
var fileTypeAliases = map[string]FileType{
	"gdoc":       FileTypeGoogleDocs,
	"gdocs":      FileTypeGoogleDocs,
	"googledocs": FileTypeGoogleDocs,
}

// ParseDate reads a date typed or picked by the user. Empty input yields
// the zero time. The quick-select words today and yesterday resolve
// against now.
func ParseDate(s string, format DateFormat, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	switch strings.ToLower(s) {
	case Today:
		return startOfDay(now), nil
	case Yesterday:
		return startOfDay(now).AddDate(0, 0, -1), nil
	}

	primary, ok := Layout(format)
	if !ok {
		return time.Time{}, oops.With("date_format", format).Wrap(ErrInvalidDateFormat)
	}

	var lastErr error
	for _, layout := range append([]string{primary}, extraInputLayouts[format]...) {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, oops.With("date", s, "date_format", format).Wrap(lastErr)
}

// ParseSelection turns form strings into a Selection. Blank fields stay
// unset; anything that cannot be interpreted is reported as
// ErrInvalidSelection so the caller can show it next to the form.
func ParseSelection(raw RawSelection, now time.Time) (Selection, error) {
	sel := Selection{
		Channel:     raw.Channel,
		User:        raw.User,
		Keywords:    raw.Keywords,
		ExactPhrase: raw.ExactPhrase,
	}

	if ft := strings.TrimSpace(raw.FileType); ft != "" {
		parsed, err := ParseFileType(ft)
		if err != nil {
			alias, ok := fileTypeAliases[strings.ToLower(ft)]
			if !ok {
				return Selection{}, invalid("file_type", ft, err)
			}
			parsed = alias
		}
		sel.FileType = parsed
	}

	sel.DateMode = DateModeNone
	if mode := strings.TrimSpace(raw.DateMode); mode != "" {
		parsed, err := ParseDateMode(mode)
		if err != nil {
			return Selection{}, invalid("date_mode", mode, err)
		}
		sel.DateMode = parsed
	}

	sel.DateFormat = DateFormatFullDate
	if format := strings.TrimSpace(raw.DateFormat); format != "" {
		parsed, err := ParseDateFormat(format)
		if err != nil {
			return Selection{}, invalid("date_format", format, err)
		}
		sel.DateFormat = parsed
	}

	var err error
	if sel.SingleDate, err = ParseDate(raw.Date, sel.DateFormat, now); err != nil {
		return Selection{}, invalid("date", raw.Date, err)
	}
	if sel.AfterDate, err = ParseDate(raw.After, sel.DateFormat, now); err != nil {
		return Selection{}, invalid("after", raw.After, err)
	}
	if sel.BeforeDate, err = ParseDate(raw.Before, sel.DateFormat, now); err != nil {
		return Selection{}, invalid("before", raw.Before, err)
	}

	return sel, nil
}

func invalid(field, value string, err error) error {
	return oops.
		In("query").
		With("field", field, "value", value).
		Wrap(fmt.Errorf("%w: %s %q: %w", sharedErrors.ErrInvalidSelection, field, value, err))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package model

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Date layouts used across the catalog. Every date is presented in two
// forms: a long human-readable one for detail pages and an ISO one that
// round-trips into an edit form's date input.
const (
	ISODateLayout   = "2006-01-02"
	shortDateLayout = "02-Jan-2006"
)

// formatLong renders a date like "January 2nd, 2006".
func formatLong(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Month(), humanize.Ordinal(t.Day()), t.Year())
}

func formatLongPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatLong(*t)
}

func formatShortPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(shortDateLayout)
}

func formatISOPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ISODateLayout)
}

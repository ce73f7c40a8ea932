package domain

import (
	"regexp"
	"time"
)

// Session is a static curriculum unit. Date is a display-formatted string
// like "3rd July 2025"; the stored Completed flag is superseded by
// date comparison at read time.
type Session struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Completed bool     `json:"completed"`
	Topics    []string `json:"topics"`
}

var ordinalSuffix = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)

// IsCompleted reports whether the session date has passed. Unparseable
// dates count as not completed.
func (s Session) IsCompleted(now time.Time) bool {
	plain := ordinalSuffix.ReplaceAllString(s.Date, "$1")

	date, err := time.ParseInLocation("2 January 2006", plain, now.Location())
	if err != nil {
		return false
	}

	return !date.After(now)
}

package order

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/civicdata/goldenrecord/pkg/constants"
)

// ParseSentDate parses the registry's sent-date text into a calendar date.
// The published format is MM/DD/YYYY; drifted exports occasionally carry
// other layouts, so a lenient pass runs second. Unparseable or empty text
// reports ok=false and never errors. Every consumer of sent dates goes
// through this one function so "no date" means the same thing everywhere.
func ParseSentDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(constants.TimeFormatSentDate, s); err == nil {
		return t, true
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package scraper

import "time"

// dateLayouts are the formats raw dates arrive in: RFC3339 from the API
// fetcher, RFC1123 variants from feed pubDates, bare dates from page text.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006",
}

// FreshnessFilter rejects candidates dated before the run's reference day.
// Past-dated items leak through both RSS archives and aggregators, and the
// model has no reliable clock to catch them.
type FreshnessFilter struct {
	today time.Time
}

// NewFreshnessFilter captures "today" once, normalized to local midnight.
func NewFreshnessFilter(now time.Time) *FreshnessFilter {
	return &FreshnessFilter{today: atMidnight(now)}
}

// Fresh reports whether the candidate may proceed to classification. A missing
// or unparseable rawDate passes; only a date strictly before today drops.
func (f *FreshnessFilter) Fresh(rawDate string) bool {
	if rawDate == "" {
		return true
	}
	parsed, ok := parseDate(rawDate)
	if !ok {
		return true
	}
	return !atMidnight(parsed).Before(f.today)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func atMidnight(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

package sire

import (
	"strings"
	"time"

	"github.com/sells-group/sire-cli/internal/dataset"
)

// OutputDateFormat is the dd/mm/yyyy form every resolved date is rendered in.
const OutputDateFormat = "02/01/2006"

// dateLayouts are tried in order; the first syntactic parse with a sane year
// wins. Day/month/year and ISO are the formats the source systems actually
// use, so they parse at HIGH; everything else is MEDIUM.
var dateLayouts = []struct {
	layout string
	high   bool
}{
	{"2/1/2006", true},  // 31/12/2024
	{"2006-1-2", true},  // 2024-12-31
	{"2-1-2006", false}, // 31-12-2024
	{"1/2/2006", false}, // 12/31/2024 (US)
	{"2.1.2006", false}, // 31.12.2024
	{"2006/1/2", false}, // 2024/12/31
	{"2 Jan 2006", false},
	{"2 January 2006", false},
}

var nullLikeDates = map[string]bool{"nan": true, "none": true, "nat": true}

// ParseDate resolves an arbitrary date-like cell to dd/mm/yyyy text. Cells
// carrying a native timestamp format directly at HIGH confidence; text goes
// through the ordered layout list with a 1900..currentYear+1 sanity range.
func ParseDate(cell dataset.Cell) (string, Confidence) {
	if cell.IsEmpty() {
		return "", ConfidenceNone
	}

	if t, ok := cell.Time(); ok {
		return t.Format(OutputDateFormat), ConfidenceHigh
	}

	raw := strings.TrimSpace(cell.String())
	if raw == "" || nullLikeDates[strings.ToLower(raw)] {
		return "", ConfidenceNone
	}

	// Drop a time-of-day suffix ("31/12/2024 00:00:00") without touching
	// named-month dates ("31 Dec 2024").
	if fields := strings.Fields(raw); len(fields) > 1 {
		last := fields[len(fields)-1]
		if strings.ContainsRune(last, ':') {
			raw = strings.Join(fields[:len(fields)-1], " ")
		}
	}

	maxYear := time.Now().Year() + 1
	for _, dl := range dateLayouts {
		parsed, err := time.Parse(dl.layout, raw)
		if err != nil {
			continue
		}
		if parsed.Year() < 1900 || parsed.Year() > maxYear {
			continue
		}
		conf := ConfidenceMedium
		if dl.high {
			conf = ConfidenceHigh
		}
		return parsed.Format(OutputDateFormat), conf
	}

	return "", ConfidenceLow
}

// InferBirthDateFromAge approximates a birth date from a numeric age by
// placing the birthday mid-year. Always LOW confidence; callers use it as a
// last resort only.
func InferBirthDateFromAge(age int) (string, Confidence) {
	if age < 0 || age > 120 {
		return "", ConfidenceNone
	}
	birth := time.Date(time.Now().Year()-age, time.June, 15, 0, 0, 0, 0, time.UTC)
	return birth.Format(OutputDateFormat), ConfidenceLow
}

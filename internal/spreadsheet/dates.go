package spreadsheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

var (
	isoDate     = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})(?:[ T].*)?$`)
	slashedDate = regexp.MustCompile(`^(\d{1,2})([/.\-])(\d{1,2})([/.\-])(\d{4})(?:[ T].*)?$`)
	clockTime   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?\s*([AaPp]\.?[Mm]\.?)?$`)
)

var namedDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	time.RFC3339,
}

// ParseDate turns free-form spreadsheet text into yyyy-mm-dd.
//
// Day/month order in d/m/y text is decided by whichever leading token is
// above 12. When both are 12 or less the first token is the day, so
// 05/03/2024 is the 5th of March.
func ParseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := isoDate.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3])
	}

	if m := slashedDate.FindStringSubmatch(s); m != nil && m[2] == m[4] {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[3])
		day, month := first, second
		if first <= 12 && second > 12 {
			day, month = second, first
		}
		return buildDate(m[5], strconv.Itoa(month), strconv.Itoa(day))
	}

	// Excel serial day numbers; small values are more likely a year or a count.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial > 3000 && serial < 2958466 {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format(dateLayout), true
			}
		}
		return "", false
	}

	for _, layout := range namedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}

func buildDate(year, month, day string) (string, bool) {
	y, err1 := strconv.Atoi(year)
	m, err2 := strconv.Atoi(month)
	d, err3 := strconv.Atoi(day)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// 31/02 rolls over into March; reject instead.
	if t.Day() != d {
		return "", false
	}
	return t.Format(dateLayout), true
}

// ParseTime turns free-form spreadsheet text into HH:MM (24h). It accepts
// H:MM, HH:MM:SS, 12-hour text with AM/PM and Excel day fractions.
func ParseTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if m := clockTime.FindStringSubmatch(s); m != nil {
		// a bare number is only a time with AM/PM ("9 am")
		if m[2] == "" && m[4] == "" {
			return excelFraction(s)
		}

		h, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}

		if m[4] != "" {
			if h < 1 || h > 12 {
				return "", false
			}
			pm := strings.HasPrefix(strings.ToLower(m[4]), "p")
			switch {
			case pm && h != 12:
				h += 12
			case !pm && h == 12:
				h = 0
			}
		}

		if h > 23 || minute > 59 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d", h, minute), true
	}

	return excelFraction(s)
}

func excelFraction(s string) (string, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f >= 1 {
		return "", false
	}
	mins := int(math.Round(f * 24 * 60))
	if mins >= 24*60 {
		mins = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60), true
}

package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/show"
)

var timeRe = regexp.MustCompile(`([0-9]{1,2}:[0-9]{2}\s*((AM|PM)|(am|pm))*|midnight|noon)`)

// ParseDay extracts the weekday from a day-and-time phrase such as
// "Mondays 8:00pm - 9:00pm". A trailing plural "s" on the day name is
// dropped. The second return value is false when no weekday is found.
func ParseDay(dayTime string) (show.Weekday, bool) {
	i := strings.Index(dayTime, " ")
	if i < 0 {
		return 0, false
	}
	name := strings.TrimSuffix(dayTime[:i], "s")
	return show.WeekdayNamed(name)
}

// ParseTimes extracts the start and end hours (24-hour clock) from a
// day-and-time phrase. The phrase must contain exactly two time
// expressions; anything else yields the (1, 1) sentinel.
//
// Conversion mirrors the station site's quirks: an "am" suffix keeps the
// written hour as-is (so "12:00am" stays hour 12), "12:00 pm" is forced
// to 12, and a suffix-less hour above 11 is taken as 24-hour notation.
func ParseTimes(dayTime string) (start, end int) {
	var hours []int
	for _, m := range timeRe.FindAllString(dayTime, -1) {
		switch {
		case strings.Contains(m, ":"):
			hour, err := strconv.Atoi(m[:strings.Index(m, ":")])
			if err != nil {
				continue
			}
			lower := strings.ToLower(m)
			switch {
			case strings.Contains(lower, "am"):
				hours = append(hours, hour)
			case strings.Contains(lower, "12:00 pm") || strings.Contains(lower, "12:00pm"):
				hours = append(hours, 12)
			case hour > 11:
				hours = append(hours, hour)
			default:
				hours = append(hours, hour+12)
			}
		case strings.Contains(m, "midnight"):
			hours = append(hours, 0)
		case strings.Contains(m, "noon"):
			hours = append(hours, 12)
		}
	}

	if len(hours) != 2 {
		utils.Log.Debugf("expected two time expressions in %q, found %d", dayTime, len(hours))
		return 1, 1
	}
	return hours[0], hours[1]
}

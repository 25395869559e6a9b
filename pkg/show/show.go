package show

import "fmt"

// Weekday is a day of the week, Sunday = 0 through Saturday = 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) String() string {
	if d < 0 || int(d) >= len(dayNames) {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// WeekdayNamed returns the Weekday matching the given name, case-sensitively.
func WeekdayNamed(name string) (Weekday, bool) {
	for i, n := range dayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}

// WeekdayNumbered returns the Weekday for an index in [0,7).
func WeekdayNumbered(n int) (Weekday, bool) {
	if n < 0 || n > 6 {
		return 0, false
	}
	return Weekday(n), true
}

// Show is a single radio show extracted from the station's website.
// StartHour and EndHour are on the 24-hour clock; EndHour may be
// numerically smaller than StartHour for shows that cross midnight.
type Show struct {
	Title       string  `json:"title"`
	Hosts       string  `json:"hosts"`
	Day         Weekday `json:"day"`
	StartHour   int     `json:"start_hour"`
	EndHour     int     `json:"end_hour"`
	Description string  `json:"description"`
	Genres      string  `json:"genres"`
	Board       bool    `json:"board"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Before reports whether s airs earlier in the week than o.
func (s Show) Before(o Show) bool {
	if s.Day == o.Day {
		return s.StartHour < o.StartHour
	}
	return s.Day < o.Day
}

// TimeSlot renders the show's hours in the station's display style,
// e.g. "8:00 - 9:00 PM" or "11:00 AM - 12:00 PM".
func (s Show) TimeSlot() string {
	switch {
	case s.StartHour < 12 && s.EndHour < 12:
		return fmt.Sprintf("%d:00 - %d:00 AM", zeroTo12(s.StartHour), zeroTo12(s.EndHour))
	case s.StartHour < 12 && s.EndHour >= 12:
		return fmt.Sprintf("%d:00 AM - %d:00 PM", zeroTo12(s.StartHour), pmHour(s.EndHour))
	case s.StartHour >= 12 && s.EndHour < 12:
		return fmt.Sprintf("%d:00 PM - %d:00 AM", pmHour(s.StartHour), zeroTo12(s.EndHour))
	default:
		return fmt.Sprintf("%d:00 - %d:00 PM", pmHour(s.StartHour), pmHour(s.EndHour))
	}
}

// DaySlot is TimeSlot prefixed with the weekday name.
func (s Show) DaySlot() string {
	return fmt.Sprintf("%s %s", s.Day, s.TimeSlot())
}

func zeroTo12(h int) int {
	if h == 0 {
		return 12
	}
	return h
}

func pmHour(h int) int {
	if h == 12 {
		return 12
	}
	return h % 12
}

package parser

import (
	"testing"

	"github.com/wcfm-radio/wcfm/pkg/show"
)

func TestParseTimes(t *testing.T) {
	cases := []struct {
		in         string
		start, end int
	}{
		{"Monday 1:00pm - 2:00pm", 13, 14},
		{"Sunday 1:00 pm - 2:00pm", 13, 14},
		{"Tuesday 5:00 AM - 6:00 AM", 5, 6},
		{"Tuesday 5:00AM - 6:00pm", 5, 18},
		{"Sundays 11:00am-noon", 11, 12},
		{"Mondays midnight-1:00am", 0, 1},
		{"Mondays 17:00-18:00", 17, 18},
		{"Thursdays noon - 2:00pm", 12, 14},
		{"Saturdays 12:00 pm - 2:00pm", 12, 14},
	}
	for _, c := range cases {
		start, end := ParseTimes(c.in)
		if start != c.start || end != c.end {
			t.Errorf("ParseTimes(%q) = (%d, %d), want (%d, %d)", c.in, start, end, c.start, c.end)
		}
	}
}

func TestParseTimesSentinel(t *testing.T) {
	// Fewer or more than two time expressions fall back to (1, 1).
	for _, in := range []string{
		"Mondays 1-2",
		"Mondays 1:00pm",
		"Mondays 1:00pm - 2:00pm - 3:00pm",
		"",
	} {
		start, end := ParseTimes(in)
		if start != 1 || end != 1 {
			t.Errorf("ParseTimes(%q) = (%d, %d), want sentinel (1, 1)", in, start, end)
		}
	}
}

func TestParseTimesHoursInRange(t *testing.T) {
	// Every parsed hour stays on the 24-hour clock.
	for _, in := range []string{
		"Monday 1:00pm - 2:00pm",
		"Tuesday 5:00AM - 6:00pm",
		"Sundays 11:00am-noon",
		"Mondays midnight-1:00am",
		"Mondays 17:00-18:00",
		"Fridays noon-midnight",
	} {
		start, end := ParseTimes(in)
		if start < 0 || start >= 24 || end < 0 || end >= 24 {
			t.Errorf("ParseTimes(%q) = (%d, %d), out of range", in, start, end)
		}
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		in   string
		want show.Weekday
	}{
		{"Monday 1:00pm - 2:00pm", show.Monday},
		{"Sundays 1:00pm - 2:00pm", show.Sunday},
		{"Wednesdays noon - 2:00pm", show.Wednesday},
	}
	for _, c := range cases {
		got, ok := ParseDay(c.in)
		if !ok || got != c.want {
			t.Errorf("ParseDay(%q) = %v (ok=%v), want %v", c.in, got, ok, c.want)
		}
	}
}

func TestParseDayNoMatch(t *testing.T) {
	for _, in := range []string{
		"1:00pm - 2:00pm",
		"Someday 1:00pm - 2:00pm",
		"Monday",
	} {
		if _, ok := ParseDay(in); ok {
			t.Errorf("ParseDay(%q) should not match", in)
		}
	}
}

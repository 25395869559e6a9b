package show

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestWeekdayNamed(t *testing.T) {
	d, ok := WeekdayNamed("Monday")
	if !ok || d != Monday {
		t.Fatalf("expected Monday, got %v (ok=%v)", d, ok)
	}

	if _, ok := WeekdayNamed("monday"); ok {
		t.Fatal("lookup should be case-sensitive")
	}

	if _, ok := WeekdayNamed("Funday"); ok {
		t.Fatal("expected no match for unknown day")
	}
}

func TestWeekdayNumbered(t *testing.T) {
	if d, ok := WeekdayNumbered(6); !ok || d != Saturday {
		t.Fatalf("expected Saturday, got %v", d)
	}
	if _, ok := WeekdayNumbered(7); ok {
		t.Fatal("index 7 should be out of range")
	}
	if _, ok := WeekdayNumbered(-1); ok {
		t.Fatal("negative index should be out of range")
	}
}

func TestBefore(t *testing.T) {
	a := Show{Title: "A", Day: Monday, StartHour: 10}
	b := Show{Title: "B", Day: Monday, StartHour: 12}
	c := Show{Title: "C", Day: Tuesday, StartHour: 5}

	if !a.Before(b) {
		t.Fatal("earlier start on the same day should come first")
	}
	if b.Before(a) {
		t.Fatal("ordering should not be symmetric")
	}
	if !b.Before(c) {
		t.Fatal("earlier day should come first regardless of hour")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := Show{
		Title:       "Day Old Bagels",
		Hosts:       "First Last, Other Host",
		Day:         Wednesday,
		StartHour:   23,
		EndHour:     1,
		Description: "Stale tunes.\n\nFresh takes.",
		Genres:      "Indie, Folk",
		Board:       true,
		ImageURL:    "https://sites.williams.edu/wcfm/files/2018/bagels.jpg",
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Show
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(orig, got) {
		t.Fatalf("round trip mismatch:\n  in:  %+v\n  out: %+v", orig, got)
	}
}

func TestTimeSlot(t *testing.T) {
	cases := []struct {
		start, end int
		want       string
	}{
		{5, 6, "5:00 - 6:00 AM"},
		{0, 1, "12:00 - 1:00 AM"},
		{11, 12, "11:00 AM - 12:00 PM"},
		{20, 21, "8:00 - 9:00 PM"},
		{23, 0, "11:00 PM - 12:00 AM"},
		{12, 13, "12:00 - 1:00 PM"},
	}
	for _, c := range cases {
		got := Show{StartHour: c.start, EndHour: c.end}.TimeSlot()
		if got != c.want {
			t.Errorf("TimeSlot(%d,%d) = %q, want %q", c.start, c.end, got, c.want)
		}
	}
}

func TestDaySlot(t *testing.T) {
	s := Show{Day: Tuesday, StartHour: 20, EndHour: 21}
	if got := s.DaySlot(); got != "Tuesday 8:00 - 9:00 PM" {
		t.Fatalf("unexpected DaySlot: %q", got)
	}
}

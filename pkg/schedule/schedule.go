// Package schedule holds the in-memory index of shows, keyed by weekday
// and sorted by start hour, plus a derived keyword-filtered view.
//
// The index carries no locking. It is written by the load/refresh path
// and by explicit Add calls; the embedding application must serialize
// writers against readers.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/wcfm-radio/wcfm/pkg/show"
)

// FilterCategory identifies which show field a filtered view entry
// matched on.
type FilterCategory int

const (
	ByTitle FilterCategory = iota
	ByHost
	ByGenre
)

func (c FilterCategory) String() string {
	switch c {
	case ByTitle:
		return "Title"
	case ByHost:
		return "Host"
	case ByGenre:
		return "Genre"
	}
	return "Unknown"
}

// Categories lists every filter category in display order.
var Categories = []FilterCategory{ByTitle, ByHost, ByGenre}

// Index maps each of the seven weekdays to its shows, sorted ascending
// by start hour. All seven keys are always present.
type Index struct {
	shows    map[show.Weekday][]show.Show
	filtered map[FilterCategory][]show.Show
}

// New returns an empty Index with all seven days present.
func New() *Index {
	x := &Index{}
	x.reset()
	return x
}

// NewFromShows builds an Index holding the given shows.
func NewFromShows(shows []show.Show) *Index {
	x := New()
	for _, s := range shows {
		x.Add(s)
	}
	return x
}

func (x *Index) reset() {
	x.shows = make(map[show.Weekday][]show.Show, 7)
	for d := show.Sunday; d <= show.Saturday; d++ {
		x.shows[d] = nil
	}
	x.filtered = make(map[FilterCategory][]show.Show)
}

// Add inserts a show under its day, keeping the day's slice sorted by
// start hour.
func (x *Index) Add(s show.Show) {
	day := x.shows[s.Day]
	day = append(day, s)
	sort.SliceStable(day, func(i, j int) bool { return day[i].StartHour < day[j].StartHour })
	x.shows[s.Day] = day
}

// Clear empties every day and drops the filtered view.
func (x *Index) Clear() {
	x.reset()
}

// Empty reports whether no day holds any show.
func (x *Index) Empty() bool {
	for _, day := range x.shows {
		if len(day) > 0 {
			return false
		}
	}
	return true
}

// ShowAt returns the i-th show on the given day, in start-hour order.
func (x *Index) ShowAt(day show.Weekday, i int) (show.Show, bool) {
	shows := x.shows[day]
	if i < 0 || i >= len(shows) {
		return show.Show{}, false
	}
	return shows[i], true
}

// ShowStartingAt returns the first show on the given day whose start
// hour equals hour.
func (x *Index) ShowStartingAt(day show.Weekday, hour int) (show.Show, bool) {
	for _, s := range x.shows[day] {
		if s.StartHour == hour {
			return s, true
		}
	}
	return show.Show{}, false
}

// ShowNamed returns the first show, scanning Sunday through Saturday,
// with the given title.
func (x *Index) ShowNamed(title string) (show.Show, bool) {
	for d := show.Sunday; d <= show.Saturday; d++ {
		for _, s := range x.shows[d] {
			if s.Title == title {
				return s, true
			}
		}
	}
	return show.Show{}, false
}

// NumShows returns how many shows air on the given day.
func (x *Index) NumShows(day show.Weekday) int {
	return len(x.shows[day])
}

// All returns every show in week order.
func (x *Index) All() []show.Show {
	var all []show.Show
	for d := show.Sunday; d <= show.Saturday; d++ {
		all = append(all, x.shows[d]...)
	}
	return all
}

// Filter recomputes the filtered view: a case-insensitive substring
// match of keyword against titles, hosts, and genres independently.
// Each category's result is sorted by start hour alone, ignoring the
// day. Any previous filtered view is replaced.
func (x *Index) Filter(keyword string) {
	kw := strings.ToLower(keyword)
	var title, host, genre []show.Show
	for d := show.Sunday; d <= show.Saturday; d++ {
		for _, s := range x.shows[d] {
			if strings.Contains(strings.ToLower(s.Title), kw) {
				title = append(title, s)
			}
			if strings.Contains(strings.ToLower(s.Hosts), kw) {
				host = append(host, s)
			}
			if strings.Contains(strings.ToLower(s.Genres), kw) {
				genre = append(genre, s)
			}
		}
	}
	byStart := func(list []show.Show) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].StartHour < list[j].StartHour })
	}
	byStart(title)
	byStart(host)
	byStart(genre)
	x.filtered = map[FilterCategory][]show.Show{
		ByTitle: title,
		ByHost:  host,
		ByGenre: genre,
	}
}

// FilteredAt returns the i-th show in the given category of the current
// filtered view.
func (x *Index) FilteredAt(c FilterCategory, i int) (show.Show, bool) {
	shows := x.filtered[c]
	if i < 0 || i >= len(shows) {
		return show.Show{}, false
	}
	return shows[i], true
}

// NumFiltered returns how many shows the current filtered view holds in
// the given category.
func (x *Index) NumFiltered(c FilterCategory) int {
	return len(x.filtered[c])
}

// NumCategories returns how many categories the filtered view currently
// holds (0 when no filter has been run).
func (x *Index) NumCategories() int {
	return len(x.filtered)
}

// ClearFilter drops the filtered view, leaving the full index intact.
func (x *Index) ClearFilter() {
	x.filtered = make(map[FilterCategory][]show.Show)
}

// Current returns the show starting exactly on now's weekday and hour.
// A show that started earlier and is still on air does not count.
func (x *Index) Current(now time.Time) (show.Show, bool) {
	return x.ShowStartingAt(show.Weekday(now.Weekday()), now.Hour())
}

// Next scans forward from the hour after now, wrapping hour 23 into the
// next day, until it finds a show. The boolean is false when the index
// is empty, since the scan could never terminate.
func (x *Index) Next(now time.Time) (show.Show, bool) {
	if x.Empty() {
		return show.Show{}, false
	}
	day := int(now.Weekday())
	hour := now.Hour() + 1
	for {
		if hour < 24 {
			if s, ok := x.ShowStartingAt(show.Weekday(day), hour); ok {
				return s, true
			}
			hour++
		} else {
			day = (day + 1) % 7
			hour = 0
		}
	}
}

package parser

import (
	"context"
	"fmt"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/show"
)

// Storage keys for the extracted schedule. These are owned by the parser
// because it is the only writer.
const (
	KeySchedule = "schedule"
	KeyTitles   = "show_titles"
)

// Store is the slice of the persistence layer the builder needs.
type Store interface {
	SetJSON(ctx context.Context, key string, v interface{}) error
}

// ParseShowDescriptions extracts a Show from each description page and
// persists the resulting record set and title list, overwriting any
// previous value. pages and board run in parallel: board[i] reports
// whether the show at pages[i] is hosted by a board member. Mismatched
// lengths are a caller bug and panic.
//
// Pages missing either boundary marker are skipped entirely.
func ParseShowDescriptions(ctx context.Context, pages []string, board []bool, st Store) ([]show.Show, error) {
	if len(pages) != len(board) {
		panic(fmt.Sprintf("parser: %d description pages but %d board flags", len(pages), len(board)))
	}

	var shows []show.Show
	var titles []string
	for i, page := range pages {
		fragment, ok := slice(page, contentStart, contentEnd)
		if !ok {
			utils.Log.Debugf("skipping description page %d: boundary markers missing", i)
			continue
		}

		title := Title(fragment)
		titles = append(titles, title)

		dayTime := DayTime(fragment)
		day, ok := ParseDay(dayTime)
		if !ok {
			day = show.Sunday
		}
		start, end := ParseTimes(dayTime)

		s := show.Show{
			Title:       title,
			Hosts:       Hosts(fragment),
			Day:         day,
			StartHour:   start,
			EndHour:     end,
			Description: Description(fragment),
			Genres:      Genre(fragment),
			Board:       board[i],
		}
		if img, ok := ImageURL(fragment); ok {
			s.ImageURL = img
		}
		shows = append(shows, s)
	}

	if err := st.SetJSON(ctx, KeyTitles, titles); err != nil {
		return nil, fmt.Errorf("saving show titles: %w", err)
	}
	if err := st.SetJSON(ctx, KeySchedule, shows); err != nil {
		return nil, fmt.Errorf("saving schedule: %w", err)
	}
	return shows, nil
}

// Package crawler fetches the station's schedule and show description
// pages, re-parsing them only when the set of discovered show URLs has
// changed since the previous successful crawl.
//
// A Crawler must not be invoked concurrently with itself; callers keep
// one refresh in flight at a time.
package crawler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/parser"
)

// DefaultScheduleURL is the station's public schedule page.
const DefaultScheduleURL = "https://sites.williams.edu/wcfm/schedule/"

// KeySeenURLs names the persisted URL set from the last successful crawl.
const KeySeenURLs = "seen_urls"

// failureDelay is slept after a failed schedule fetch before giving up.
const failureDelay = time.Second

// Fetcher retrieves a page body; satisfied by *whttp.Client.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Store is the slice of the persistence layer the crawler needs.
type Store interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}) error
}

type Crawler struct {
	scheduleURL string
	fetcher     Fetcher
	store       Store

	// Sorted URL set from the previous successful crawl.
	seen []string

	// delay after a failed schedule fetch; shortened in tests.
	delay time.Duration
}

// New builds a Crawler, loading the previously seen URL set from the
// store.
func New(ctx context.Context, scheduleURL string, fetcher Fetcher, store Store) (*Crawler, error) {
	c := &Crawler{
		scheduleURL: scheduleURL,
		fetcher:     fetcher,
		store:       store,
		delay:       failureDelay,
	}
	if _, err := store.GetJSON(ctx, KeySeenURLs, &c.seen); err != nil {
		return nil, fmt.Errorf("loading seen URLs: %w", err)
	}
	return c, nil
}

// Refresh crawls the schedule page and, when the discovered URL set
// differs from the previous crawl's, re-fetches every description page
// and rebuilds the persisted record set. It returns true when the
// stored schedule was updated.
//
// A failed schedule fetch aborts the whole refresh after a short fixed
// delay. A failed description fetch only omits that page.
func (c *Crawler) Refresh(ctx context.Context) (bool, error) {
	return c.refresh(ctx, true)
}

// RefreshForce is Refresh without the changed-URL-set short circuit: if
// the schedule page parses, every description page is re-fetched and
// re-parsed.
func (c *Crawler) RefreshForce(ctx context.Context) (bool, error) {
	return c.refresh(ctx, false)
}

func (c *Crawler) refresh(ctx context.Context, checkChanged bool) (bool, error) {
	page, err := c.fetcher.Fetch(c.scheduleURL)
	if err != nil {
		utils.Log.Warnf("schedule fetch failed: %v", err)
		time.Sleep(c.delay)
		return false, nil
	}

	urls := parser.ShowDescriptionURLs(page)
	if urls == nil {
		utils.Log.Warn("schedule page markers missing, nothing extracted")
		return false, nil
	}

	// Deterministic page order: map iteration order is not. The sorted
	// slice doubles as the canonical form for change detection.
	sorted := make([]string, 0, len(urls))
	for u := range urls {
		sorted = append(sorted, u)
	}
	sort.Strings(sorted)

	if checkChanged && utils.AreSlicesEqual(sorted, c.seen) {
		utils.Log.Debug("show URL set unchanged since last crawl")
		return false, nil
	}

	var pages []string
	var board []bool
	for _, u := range sorted {
		body, err := c.fetcher.Fetch(u)
		if err != nil {
			utils.Log.Warnf("skipping description page %s: %v", u, err)
			continue
		}
		pages = append(pages, body)
		board = append(board, urls[u])
	}

	if _, err := parser.ParseShowDescriptions(ctx, pages, board, c.store); err != nil {
		return false, err
	}

	if err := c.store.SetJSON(ctx, KeySeenURLs, sorted); err != nil {
		return false, fmt.Errorf("saving seen URLs: %w", err)
	}
	c.seen = sorted
	return true, nil
}

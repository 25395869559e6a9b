package crawler

import (
	"context"
	"fmt"

	"github.com/wcfm-radio/wcfm/pkg/parser"
	"github.com/wcfm-radio/wcfm/pkg/schedule"
	"github.com/wcfm-radio/wcfm/pkg/show"
	"github.com/wcfm-radio/wcfm/pkg/subscriptions"
)

// LoadSchedule runs the full crawl-and-load pipeline: refresh against
// the remote site, read the persisted record set back, replace the
// index contents, and prune subscriptions to shows that still exist.
// The pipeline performs blocking network I/O and is meant to run as one
// sequential unit of work off any interactive path.
func LoadSchedule(ctx context.Context, c *Crawler, idx *schedule.Index, subs *subscriptions.Subscriptions) error {
	if _, err := c.Refresh(ctx); err != nil {
		return err
	}
	if err := PopulateIndex(ctx, c.store, idx); err != nil {
		return err
	}
	return ReconcileSubscriptions(ctx, c.store, subs)
}

// PopulateIndex replaces the index contents with the persisted record
// set. An index loaded before any crawl succeeds simply stays empty.
func PopulateIndex(ctx context.Context, st Store, idx *schedule.Index) error {
	var shows []show.Show
	if _, err := st.GetJSON(ctx, parser.KeySchedule, &shows); err != nil {
		return fmt.Errorf("loading schedule: %w", err)
	}
	idx.Clear()
	for _, s := range shows {
		idx.Add(s)
	}
	return nil
}

// ReconcileSubscriptions prunes subscriptions against the persisted
// title list.
func ReconcileSubscriptions(ctx context.Context, st Store, subs *subscriptions.Subscriptions) error {
	var titles []string
	if _, err := st.GetJSON(ctx, parser.KeyTitles, &titles); err != nil {
		return fmt.Errorf("loading show titles: %w", err)
	}
	return subs.Reconcile(ctx, titles)
}

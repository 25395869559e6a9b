// Package subscriptions keeps the user's subscribed show titles: a
// persisted, deduplicated list ordered by each show's slot in the
// weekly schedule.
package subscriptions

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wcfm-radio/wcfm/pkg/show"
)

// Key names the persisted subscription list.
const Key = "subscriptions"

// Store is the slice of the persistence layer subscriptions need.
type Store interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}) error
}

// Resolver looks up a show by title; satisfied by *schedule.Index.
type Resolver interface {
	ShowNamed(title string) (show.Show, bool)
}

// Subscriptions reads and writes the persisted title list. Entries stay
// unique (case-insensitively) and sorted by the day and start hour of
// the show each title names in the schedule.
type Subscriptions struct {
	store    Store
	schedule Resolver
}

func New(store Store, schedule Resolver) *Subscriptions {
	return &Subscriptions{store: store, schedule: schedule}
}

// List returns the stored titles, empty if none were ever saved.
func (s *Subscriptions) List(ctx context.Context) ([]string, error) {
	var titles []string
	if _, err := s.store.GetJSON(ctx, Key, &titles); err != nil {
		return nil, fmt.Errorf("loading subscriptions: %w", err)
	}
	return titles, nil
}

// Count returns the number of stored titles.
func (s *Subscriptions) Count(ctx context.Context) (int, error) {
	titles, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(titles), nil
}

// At returns the title at the given index. An out-of-range index is a
// caller bug and panics.
func (s *Subscriptions) At(ctx context.Context, i int) (string, error) {
	titles, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(titles) {
		panic(fmt.Sprintf("subscriptions: index %d out of range [0,%d)", i, len(titles)))
	}
	return titles[i], nil
}

// Add appends a title and re-sorts the list by schedule order. The show
// must exist in the schedule; subscribing to an unknown title is a
// caller bug and panics. Adding a title already present (ignoring case)
// is a no-op.
func (s *Subscriptions) Add(ctx context.Context, title string) error {
	if _, ok := s.schedule.ShowNamed(title); !ok {
		panic(fmt.Sprintf("subscriptions: show %q not in schedule", title))
	}

	titles, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range titles {
		if strings.EqualFold(t, title) {
			return nil
		}
	}
	titles = append(titles, title)

	sort.SliceStable(titles, func(i, j int) bool {
		a, _ := s.schedule.ShowNamed(titles[i])
		b, _ := s.schedule.ShowNamed(titles[j])
		return a.Before(b)
	})
	return s.save(ctx, titles)
}

// Remove deletes the given title; removing an absent title is a no-op.
func (s *Subscriptions) Remove(ctx context.Context, title string) error {
	titles, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i, t := range titles {
		if t == title {
			return s.save(ctx, append(titles[:i], titles[i+1:]...))
		}
	}
	return nil
}

// RemoveAt deletes the entry at the given index. An out-of-range index
// is a caller bug and panics.
func (s *Subscriptions) RemoveAt(ctx context.Context, i int) error {
	titles, err := s.List(ctx)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(titles) {
		panic(fmt.Sprintf("subscriptions: index %d out of range [0,%d)", i, len(titles)))
	}
	return s.save(ctx, append(titles[:i], titles[i+1:]...))
}

// Contains reports whether title is stored, matching exactly.
func (s *Subscriptions) Contains(ctx context.Context, title string) (bool, error) {
	titles, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, t := range titles {
		if t == title {
			return true, nil
		}
	}
	return false, nil
}

// Clear removes every subscription.
func (s *Subscriptions) Clear(ctx context.Context) error {
	return s.save(ctx, nil)
}

// Reconcile drops every stored title not present in validTitles. It runs
// after each schedule load so subscriptions never name shows that
// disappeared from the remote schedule.
func (s *Subscriptions) Reconcile(ctx context.Context, validTitles []string) error {
	valid := make(map[string]struct{}, len(validTitles))
	for _, t := range validTitles {
		valid[t] = struct{}{}
	}

	titles, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := titles[:0]
	for _, t := range titles {
		if _, ok := valid[t]; ok {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(titles) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *Subscriptions) save(ctx context.Context, titles []string) error {
	if titles == nil {
		titles = []string{}
	}
	if err := s.store.SetJSON(ctx, Key, titles); err != nil {
		return fmt.Errorf("saving subscriptions: %w", err)
	}
	return nil
}

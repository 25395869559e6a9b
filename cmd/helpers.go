package cmd

import (
	"context"

	"github.com/spf13/viper"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/crawler"
	"github.com/wcfm-radio/wcfm/pkg/schedule"
	"github.com/wcfm-radio/wcfm/pkg/storage"
	"github.com/wcfm-radio/wcfm/pkg/subscriptions"
)

// dbPath resolves the database location from the flag, then the config
// file, then the default under $HOME/.config/wcfm.
func dbPath() (string, error) {
	path, _ := rootCmd.PersistentFlags().GetString("dbpath")
	if path == "" {
		path = viper.GetString("db.path")
	}
	return utils.GetAbsDBPath(path)
}

func openDB() (*storage.DB, error) {
	path, err := dbPath()
	if err != nil {
		return nil, err
	}
	return storage.Open(path)
}

// loadIndex reads the persisted schedule into a fresh index.
func loadIndex(ctx context.Context, db *storage.DB) (*schedule.Index, error) {
	ctx, cancel := context.WithTimeout(ctx, storage.DefaultDBTimeout)
	defer cancel()

	idx := schedule.New()
	if err := crawler.PopulateIndex(ctx, db, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

func loadSubscriptions(ctx context.Context, db *storage.DB) (*subscriptions.Subscriptions, *schedule.Index, error) {
	idx, err := loadIndex(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return subscriptions.New(db, idx), idx, nil
}

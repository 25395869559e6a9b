package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wcfm-radio/wcfm/internal/utils"
	"github.com/wcfm-radio/wcfm/pkg/crawler"
	"github.com/wcfm-radio/wcfm/pkg/whttp"
)

// refreshCmd re-crawls the station site and rebuilds the stored schedule.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Crawl the WCFM website and update the stored schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		ctx := context.Background()

		path, err := dbPath()
		if err != nil {
			return err
		}
		lock, err := utils.NewDBLock(path)
		if err != nil {
			return err
		}
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		c, err := crawler.New(ctx, viper.GetString("schedule.url"), whttp.NewClient(), db)
		if err != nil {
			return err
		}

		var updated bool
		if force {
			updated, err = c.RefreshForce(ctx)
		} else {
			updated, err = c.Refresh(ctx)
		}
		if err != nil {
			return err
		}
		if !updated {
			fmt.Println("no changes")
			return nil
		}

		// Keep subscriptions consistent with the fresh schedule.
		subs, _, err := loadSubscriptions(ctx, db)
		if err != nil {
			return err
		}
		if err := crawler.ReconcileSubscriptions(ctx, db, subs); err != nil {
			return err
		}

		fmt.Println("schedule updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().BoolP("force", "f", false, "Re-parse even when the show list is unchanged")
}

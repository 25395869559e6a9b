package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// nowCmd represents the now command
var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the show starting this hour, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		idx, err := loadIndex(ctx, db)
		if err != nil {
			return err
		}

		s, ok := idx.Current(time.Now())
		if !ok {
			fmt.Println("Nothing starting this hour.")
			return nil
		}
		fmt.Printf("%s (%s), %s\n", s.Title, s.Hosts, s.TimeSlot())
		return nil
	},
}

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next show coming up",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		idx, err := loadIndex(ctx, db)
		if err != nil {
			return err
		}

		s, ok := idx.Next(time.Now())
		if !ok {
			fmt.Println("No schedule stored yet. Run 'wcfm refresh' first.")
			return nil
		}
		fmt.Printf("%s (%s), %s\n", s.Title, s.Hosts, s.DaySlot())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(nextCmd)
}

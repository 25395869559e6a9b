package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wcfm-radio/wcfm/pkg/schedule"
	"github.com/wcfm-radio/wcfm/pkg/show"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the stored weekly schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		dayName, _ := cmd.Flags().GetString("day")
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
		if idx.Empty() {
			fmt.Println("No schedule stored yet. Run 'wcfm refresh' first.")
			return nil
		}

		if dayName != "" {
			day, ok := show.WeekdayNamed(dayName)
			if !ok {
				return fmt.Errorf("unknown weekday: %s", dayName)
			}
			printDay(idx, day)
			return nil
		}

		for d := show.Sunday; d <= show.Saturday; d++ {
			printDay(idx, d)
		}
		return nil
	},
}

func printDay(idx *schedule.Index, day show.Weekday) {
	if idx.NumShows(day) == 0 {
		return
	}
	fmt.Println(day)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for i := 0; ; i++ {
		s, ok := idx.ShowAt(day, i)
		if !ok {
			break
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t\n", s.TimeSlot(), s.Title, s.Hosts)
	}
	w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.Flags().StringP("day", "d", "", "Only print the given weekday, e.g. Monday")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wcfm-radio/wcfm/pkg/schedule"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the stored schedule by title, host, or genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := args[0]
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

		idx.Filter(keyword)

		found := false
		for _, c := range schedule.Categories {
			if idx.NumFiltered(c) == 0 {
				continue
			}
			found = true
			fmt.Printf("Matched by %s\n", c)
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			for i := 0; ; i++ {
				s, ok := idx.FilteredAt(c, i)
				if !ok {
					break
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\t\n", s.DaySlot(), s.Title, s.Hosts)
			}
			w.Flush()
			fmt.Println()
		}
		if !found {
			fmt.Printf("No shows matching %q\n", keyword)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

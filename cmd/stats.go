package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/wcfm-radio/wcfm/pkg/parser"
	"github.com/wcfm-radio/wcfm/pkg/show"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics about the stored schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		raw, found, err := db.Get(ctx, parser.KeySchedule)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("No schedule stored yet. Run 'wcfm refresh' first.")
			return nil
		}

		var perDay [7]int
		var board, withImage int
		perGenre := make(map[string]int)
		shows := gjson.Parse(raw).Array()
		for _, s := range shows {
			day := int(s.Get("day").Int())
			if day >= 0 && day < 7 {
				perDay[day]++
			}
			if s.Get("board").Bool() {
				board++
			}
			if s.Get("image_url").Exists() {
				withImage++
			}
			for _, g := range strings.Split(s.Get("genres").String(), ",") {
				g = strings.TrimSpace(g)
				if g != "" {
					perGenre[g]++
				}
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "DAY\tSHOWS\t")
		for d := show.Sunday; d <= show.Saturday; d++ {
			fmt.Fprintf(w, "%s\t%d\t\n", d, perDay[d])
		}
		fmt.Fprintln(w, " \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t\n", len(shows))
		fmt.Fprintf(w, "BOARD\t%d\t\n", board)
		fmt.Fprintf(w, "WITH IMAGE\t%d\t\n", withImage)
		w.Flush()

		if len(perGenre) > 0 {
			genres := make([]string, 0, len(perGenre))
			for g := range perGenre {
				genres = append(genres, g)
			}
			sort.Strings(genres)

			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "GENRE\tSHOWS\t")
			for _, g := range genres {
				fmt.Fprintf(w, "%s\t%d\t\n", g, perGenre[g])
			}
			w.Flush()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// subCmd represents the sub command
var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Manage show subscriptions",
}

var subLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List subscribed shows in schedule order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		subs, idx, err := loadSubscriptions(ctx, db)
		if err != nil {
			return err
		}
		titles, err := subs.List(ctx)
		if err != nil {
			return err
		}
		if len(titles) == 0 {
			fmt.Println("No subscriptions.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		for i, title := range titles {
			slot := ""
			if s, ok := idx.ShowNamed(title); ok {
				slot = s.DaySlot()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", i, title, slot)
		}
		w.Flush()
		return nil
	},
}

var subAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Subscribe to a show by its exact title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		subs, idx, err := loadSubscriptions(ctx, db)
		if err != nil {
			return err
		}
		if _, ok := idx.ShowNamed(title); !ok {
			return fmt.Errorf("no show titled %q in the stored schedule", title)
		}
		if err := subs.Add(ctx, title); err != nil {
			return err
		}
		fmt.Printf("Subscribed to %s\n", title)
		return nil
	},
}

var subRmCmd = &cobra.Command{
	Use:   "rm <title|index>",
	Short: "Unsubscribe from a show, by title or by its 'sub ls' index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		ctx := context.Background()

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		subs, _, err := loadSubscriptions(ctx, db)
		if err != nil {
			return err
		}
		ok, err := subs.Contains(ctx, title)
		if err != nil {
			return err
		}
		if !ok {
			// Not a stored title; maybe it's an index from 'sub ls'.
			if i, convErr := strconv.Atoi(title); convErr == nil {
				n, err := subs.Count(ctx)
				if err != nil {
					return err
				}
				if i < 0 || i >= n {
					return fmt.Errorf("subscription index %d out of range [0,%d)", i, n)
				}
				title, err = subs.At(ctx, i)
				if err != nil {
					return err
				}
				if err := subs.RemoveAt(ctx, i); err != nil {
					return err
				}
				fmt.Printf("Unsubscribed from %s\n", title)
				return nil
			}
			fmt.Printf("Not subscribed to %s\n", title)
			return nil
		}
		if err := subs.Remove(ctx, title); err != nil {
			return err
		}
		fmt.Printf("Unsubscribed from %s\n", title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subCmd)
	subCmd.AddCommand(subLsCmd)
	subCmd.AddCommand(subAddCmd)
	subCmd.AddCommand(subRmCmd)
}

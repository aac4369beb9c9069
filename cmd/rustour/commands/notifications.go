package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "Show notices posted during this run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if relay.Len() == 0 {
				fmt.Println("no notifications")
				return nil
			}
			printNotices()
			return nil
		},
	}
}

// printNotices dumps the relay feed, newest first.
func printNotices() {
	for _, n := range relay.Items() {
		fmt.Printf("[%s] %s: %s\n", n.Date.Format("15:04:05"), n.Title, n.Body)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zentryhq/zentry/internal/query"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show headline dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := newStore()

			stats := query.Dashboard(st.Deals(), st.Tasks(), st.TeamMembers(), st.Projects(), st.Campaigns(), st.Sites())

			fmt.Printf("Pipeline value: $%s across %d deals (%d open, %d won)\n",
				query.FormatThousands(stats.PipelineValue), stats.DealCount, stats.OpenDeals, stats.WonDeals)
			fmt.Printf("Tasks: %d pending, %d done\n", stats.PendingTasks, stats.DoneTasks)
			fmt.Printf("Tracked time: %dh\n", stats.TrackedHours)
			fmt.Printf("Team: %d members, %d projects\n", stats.TeamSize, stats.Projects)

			return nil
		},
	}
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show market insights and mode history",
	RunE: func(cmd *cobra.Command, args []string) error {
		riasecType, _ := cmd.Flags().GetString("type")
		limit, _ := cmd.Flags().GetInt("limit")
		learnerID, _ := cmd.Flags().GetString("learner")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := cmd.Context()

		segments, err := corpus.NewEntGateway(s.Client()).MarketInsights(ctx, riasecType)
		if err != nil {
			return err
		}

		if len(segments) == 0 {
			fmt.Println("No market data. Run: careerstu jobs import")
		} else {
			fmt.Println("Labor Market by Segment")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-20s  %8s  %12s  %10s\n",
				"Segment", "Titles", "Avg Salary", "Postings")
			fmt.Println(strings.Repeat("─", 64))
			for _, seg := range segments {
				fmt.Printf("%-20s  %8d  %12s  %10d\n",
					truncate(seg.MarketTag, 20), seg.JobCount,
					formatSalary(int(seg.AvgSalary)), seg.TotalPostings)
			}
		}

		transitions, err := s.EventRepo().RecentModeTransitions(ctx, learnerID, limit)
		if err != nil {
			return err
		}
		if len(transitions) > 0 {
			fmt.Println("\nRecent Mode Transitions")
			fmt.Println(strings.Repeat("─", 96))
			for _, tr := range transitions {
				from := tr.FromMode
				if from == "" {
					from = "(new)"
				}
				fmt.Printf("%-19s  %-36s  %-14s → %-14s  %s\n",
					tr.Timestamp.Local().Format("2006-01-02 15:04:05"),
					tr.LearnerID, from, tr.ToMode, tr.Reason)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().String("type", "", "Restrict market insights to one primary RIASEC type")
	statsCmd.Flags().IntP("limit", "n", 10, "Number of mode transitions to show")
}

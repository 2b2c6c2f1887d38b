package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx := cmd.Context()
		doc := env.progress.Load(ctx)
		today := env.progress.TodayStats(ctx)

		fmt.Printf("Streak:         %d day(s)\n", doc.StreakDays)
		fmt.Printf("Last studied:   %s\n", doc.LastStudyDate)
		fmt.Printf("Words learned:  %d\n", doc.TotalWordsLearned)
		fmt.Println()
		fmt.Println("Today")
		fmt.Printf("  Completed sets: %d\n", today.CompletedSets)
		if today.AverageScore > 0 {
			fmt.Printf("  Average score:  %d\n", today.AverageScore)
		} else {
			fmt.Println("  Average score:  -")
		}
		return nil
	},
}

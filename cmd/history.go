package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidu/english/internal/screens/result"
	"github.com/aidu/english/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		unitID, _ := cmd.Flags().GetString("unit")

		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		attempts, err := env.store.Attempts().Recent(cmd.Context(), store.QueryOpts{Limit: limit, UnitID: unitID})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No quiz attempts yet.")
			return nil
		}

		fmt.Printf("%-16s  %-20s  %-24s  %5s  %7s  %5s  %s\n",
			"Time", "Unit", "Set", "Score", "Correct", "Time", "Wrong")
		fmt.Println(strings.Repeat("─", 100))
		for _, a := range attempts {
			fmt.Printf("%-16s  %-20s  %-24s  %5d  %7s  %5s  %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				truncate(a.UnitID, 20),
				truncate(a.SetID, 24),
				a.Score,
				fmt.Sprintf("%d/%d", a.CorrectCount, a.Total),
				result.FormatDuration(a.ElapsedSeconds),
				strings.Join(a.WrongIDs, ","),
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().String("unit", "", "Only show attempts for this unit id")
}

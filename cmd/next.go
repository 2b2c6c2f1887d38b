package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidu/english/internal/recommend"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the recommended next set",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		rec := recommend.Next(env.progress.Load(cmd.Context()), env.catalog)
		if rec == nil {
			fmt.Println("Everything is complete. Nice work!")
			return nil
		}
		fmt.Println(rec.Message)
		fmt.Printf("  grade=%s unit=%s set=%s activity=%s\n", rec.GradeID, rec.UnitID, rec.SetID, rec.Activity)
		return nil
	},
}

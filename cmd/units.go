package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidu/english/internal/unlock"
)

var unitsCmd = &cobra.Command{
	Use:   "units [grade]",
	Short: "List grades, or the units and sets of one grade",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if len(args) == 0 {
			fmt.Printf("%-10s  %-16s  %5s  %s\n", "ID", "Name", "Units", "")
			fmt.Println(strings.Repeat("─", 44))
			for _, g := range env.catalog.Grades() {
				note := ""
				if g.Mock {
					note = "(preview)"
				}
				fmt.Printf("%-10s  %-16s  %5d  %s\n", g.ID, g.Name, len(env.catalog.Units(g.ID)), note)
			}
			return nil
		}

		g, err := env.catalog.Grade(args[0])
		if err != nil {
			return err
		}
		doc := env.progress.Load(cmd.Context())
		fmt.Println(g.Name)
		for _, u := range env.catalog.Units(g.ID) {
			fmt.Println()
			fmt.Printf("%s  (%s)\n", u.Title, u.ID)
			sets := u.Sets()
			if len(sets) == 0 {
				fmt.Println("  no content yet")
				continue
			}
			up := doc.Unit(g.ID, u.ID)
			for _, set := range sets {
				line := fmt.Sprintf("  %-10s  %-24s  %s", unlock.StatusOf(set, up), set.ID, set.Name)
				if score, ok := up.Score(set.ID); ok {
					line += fmt.Sprintf("  %d", score)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View record store statistics",
	Long:  "Display totals of students, professors and interests, and how many interests are active or contacted",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		stats, err := database.GetAnalytics()
		if err != nil {
			return err
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), stats)
		}

		cmd.Println(titleStyle.Render("Labyrinth Statistics"))
		if err := output.Analytics(cmd.OutOrStdout(), *stats); err != nil {
			return err
		}
		if stats.TotalInterests > 0 {
			rate := float64(stats.ContactedMatches) / float64(stats.TotalInterests) * 100
			cmd.Printf("\n%s %s\n", labelStyle.Render("Contact Rate:"), valueStyle.Render(fmt.Sprintf("%.1f%%", rate)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

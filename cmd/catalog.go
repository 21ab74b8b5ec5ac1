package cmd

import (
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:         "catalog",
	Short:       "List well-known research areas and skills",
	Annotations: map[string]string{skipStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return output.JSON(cmd.OutOrStdout(), map[string]interface{}{
				"researchAreas": models.ResearchAreas,
				"skills":        models.Skills,
			})
		}
		cmd.Println(titleStyle.Render("Research Areas and Skills"))
		return output.Catalog(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

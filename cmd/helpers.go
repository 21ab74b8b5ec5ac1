package cmd

import (
	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/importer"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/spf13/cobra"
)

func printField(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("%s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}

func printWarnings(cmd *cobra.Command, warnings []importer.Warning) {
	for _, w := range warnings {
		cmd.PrintErrln(warnStyle.Render("warning: " + w.String()))
	}
}

// professorNames resolves professor IDs lazily against the record store
func professorNames() output.NameFunc {
	cache := map[string]string{}
	return func(id string) string {
		if n, ok := cache[id]; ok {
			return n
		}
		n := ""
		if p, err := database.GetProfessor(id); err == nil {
			n = p.DisplayName()
		}
		cache[id] = n
		return n
	}
}

// profileNames resolves both student and professor IDs
func profileNames() output.NameFunc {
	professors := professorNames()
	cache := map[string]string{}
	return func(id string) string {
		if n, ok := cache[id]; ok {
			return n
		}
		n := ""
		if s, err := database.GetStudent(id); err == nil {
			n = s.DisplayName()
		} else {
			n = professors(id)
		}
		cache[id] = n
		return n
	}
}

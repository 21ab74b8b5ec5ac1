package cmd

import (
	"fmt"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/matcher"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank matches for a student or a professor",
}

var matchStudentCmd = &cobra.Command{
	Use:   "student <student-id>",
	Short: "Rank professors for a student",
	Long: `Rank professors who are looking for students by how well they fit the
student. Professors the student has marked interest in are lifted.`,
	Args: cobra.ExactArgs(1),
	Example: `  labyrinth match student s-123
  labyrinth match student s-123 --limit 5 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		s, err := database.GetStudent(args[0])
		if err != nil {
			return err
		}
		professors, err := database.GetAllProfessors()
		if err != nil {
			return fmt.Errorf("fetch professors: %w", err)
		}
		signals, err := database.GetStudentInterests(s.ID)
		if err != nil {
			return fmt.Errorf("fetch interests: %w", err)
		}

		results := limitResults(cmd, a.Matcher.FindProfessorsForStudent(s, professors, signals))
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), results)
		}
		if len(results) == 0 {
			cmd.Printf("No professors scored above %.0f for %s\n", a.Config.MatchThreshold, s.DisplayName())
			return nil
		}

		names := make(map[string]string, len(professors))
		for _, p := range professors {
			names[p.ID] = p.DisplayName()
		}
		cmd.Println(titleStyle.Render(fmt.Sprintf("Professors for %s", s.DisplayName())))
		return output.Matches(cmd.OutOrStdout(), results, matcher.StudentView, func(id string) string { return names[id] })
	},
}

var matchProfessorCmd = &cobra.Command{
	Use:   "professor <professor-id>",
	Short: "Rank students for a professor",
	Long: `Rank every student by how well they fit the professor. Students who
have marked interest in the professor are lifted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		p, err := database.GetProfessor(args[0])
		if err != nil {
			return err
		}
		students, err := database.GetAllStudents()
		if err != nil {
			return fmt.Errorf("fetch students: %w", err)
		}
		signals, err := database.GetProfessorInterests(p.ID)
		if err != nil {
			return fmt.Errorf("fetch interests: %w", err)
		}

		results := limitResults(cmd, a.Matcher.FindStudentsForProfessor(p, students, signals))
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), results)
		}
		if !p.LookingForStudents {
			cmd.PrintErrln(warnStyle.Render("note: " + p.DisplayName() + " is not currently looking for students"))
		}
		if len(results) == 0 {
			cmd.Printf("No students scored above %.0f for %s\n", a.Config.MatchThreshold, p.DisplayName())
			return nil
		}

		names := make(map[string]string, len(students))
		for _, s := range students {
			names[s.ID] = s.DisplayName()
		}
		cmd.Println(titleStyle.Render(fmt.Sprintf("Students for %s", p.DisplayName())))
		return output.Matches(cmd.OutOrStdout(), results, matcher.ProfessorView, func(id string) string { return names[id] })
	},
}

// limitResults applies --limit on top of the configured max_results
func limitResults(cmd *cobra.Command, results []models.MatchResult) []models.MatchResult {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.AddCommand(matchStudentCmd, matchProfessorCmd)

	matchCmd.PersistentFlags().Int("limit", 0, "Show at most this many matches (0 shows all)")
}

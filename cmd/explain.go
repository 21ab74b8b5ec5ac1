package cmd

import (
	"errors"
	"strings"

	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/matcher"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <student-id> <professor-id>",
	Short: "Break down the score of one student and professor pair",
	Long: `Show each component score, its weight and the final score for a pair.
The view is recorded as a profile_view interaction.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		s, err := database.GetStudent(args[0])
		if err != nil {
			return err
		}
		p, err := database.GetProfessor(args[1])
		if err != nil {
			return err
		}

		view := &models.Interaction{StudentID: s.ID, ProfessorID: p.ID, Type: models.InteractionProfileView}
		if err := database.RecordInteraction(view); err != nil {
			a.Logger.WithError(err).Warn("failed to record profile view", map[string]interface{}{"student": s.ID, "professor": p.ID})
		}

		e := a.Matcher.Explain(s, p)
		interested := false
		if sig, err := database.GetInterest(s.ID, p.ID); err == nil {
			interested = sig.Status == models.StatusInterested
		} else if !errors.Is(err, app.ErrNotFound) {
			return err
		}

		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), map[string]interface{}{
				"explanation":     e,
				"commonInterests": matcher.CommonInterests(s, p),
				"matchedSkills":   matcher.MatchedSkills(s, p),
				"interested":      interested,
			})
		}

		cmd.Println(titleStyle.Render(s.DisplayName() + " × " + p.DisplayName()))
		if err := output.Explanation(cmd.OutOrStdout(), e); err != nil {
			return err
		}
		cmd.Println()
		printField(cmd, "Common Interests:", strings.Join(matcher.CommonInterests(s, p), ", "))
		printField(cmd, "Matched Skills:", strings.Join(matcher.MatchedSkills(s, p), ", "))
		if interested {
			printField(cmd, "Student View:", models.FormatScore(matcher.Boost(e.FinalScore, matcher.StudentView))+" with interest boost")
			printField(cmd, "Professor View:", models.FormatScore(matcher.Boost(e.FinalScore, matcher.ProfessorView))+" with interest boost")
		}
		if !p.LookingForStudents {
			cmd.PrintErrln(warnStyle.Render("note: " + p.DisplayName() + " is not currently looking for students"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

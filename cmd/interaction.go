package cmd

import (
	"fmt"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var interactionCmd = &cobra.Command{
	Use:     "interaction",
	Aliases: []string{"interactions"},
	Short:   "Record and review the student/professor activity log",
	Long: `Marking interest and moving an interest to contacted are logged
automatically, and 'labyrinth explain' logs a profile view. Use 'log' to
record anything else, such as a reply from a professor.`,
}

var logInteractionCmd = &cobra.Command{
	Use:   "log <student-id> <professor-id>",
	Short: "Record an interaction between a student and a professor",
	Args:  cobra.ExactArgs(2),
	Example: `  labyrinth interaction log s-123 p-456 --type response_received
  labyrinth interaction log s-123 p-456 --type contact_sent --metadata '{"channel":"email"}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		typ, _ := cmd.Flags().GetString("type")
		metadata, _ := cmd.Flags().GetString("metadata")
		it, err := models.ParseInteractionType(typ)
		if err != nil {
			return fmt.Errorf("%w (valid: %v)", err, models.InteractionTypes)
		}
		i := &models.Interaction{StudentID: args[0], ProfessorID: args[1], Type: it, Metadata: metadata}
		if err := database.RecordInteraction(i); err != nil {
			return err
		}
		a.Logger.Info("interaction recorded", map[string]interface{}{"student": args[0], "professor": args[1], "type": it})
		cmd.Printf("✓ Recorded %s between %s and %s (ID: %s)\n", it, args[0], args[1], i.ID)
		return nil
	},
}

var listInteractionsCmd = &cobra.Command{
	Use:   "list <student-id>",
	Short: "Show a student's activity log, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		s, err := database.GetStudent(args[0])
		if err != nil {
			return err
		}
		interactions, err := database.GetInteractions(s.ID)
		if err != nil {
			return fmt.Errorf("fetch interactions: %w", err)
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), interactions)
		}
		if len(interactions) == 0 {
			cmd.Printf("No activity recorded for %s\n", s.DisplayName())
			return nil
		}
		cmd.Println(titleStyle.Render("Activity of " + s.DisplayName()))
		return output.Interactions(cmd.OutOrStdout(), interactions, professorNames())
	},
}

func init() {
	rootCmd.AddCommand(interactionCmd)
	interactionCmd.AddCommand(logInteractionCmd, listInteractionsCmd)

	logInteractionCmd.Flags().String("type", "", "Interaction type (profile_view, contact_sent, interest_marked, response_received)")
	logInteractionCmd.Flags().String("metadata", "", "Optional JSON details")
}

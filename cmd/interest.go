package cmd

import (
	"fmt"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var interestCmd = &cobra.Command{
	Use:   "interest",
	Short: "Track student interest in professors",
	Long: `Mark and unmark a student's interest in a professor, advance it through
contacted, matched or declined, and list who is interested in whom.
Pairs with an active interest are ranked higher by 'labyrinth match'.`,
}

var markInterestCmd = &cobra.Command{
	Use:   "mark <student-id> <professor-id>",
	Short: "Mark a student as interested in a professor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		sig, err := database.MarkInterest(args[0], args[1])
		if err != nil {
			return err
		}
		a.Logger.Info("interest marked", map[string]interface{}{"student": args[0], "professor": args[1]})
		cmd.Printf("✓ Student %s is interested in professor %s (ID: %s)\n", args[0], args[1], sig.ID)
		return nil
	},
}

var unmarkInterestCmd = &cobra.Command{
	Use:   "unmark <student-id> <professor-id>",
	Short: "Withdraw a student's interest in a professor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.UnmarkInterest(args[0], args[1]); err != nil {
			return err
		}
		cmd.Printf("✓ Interest of %s in %s removed\n", args[0], args[1])
		return nil
	},
}

var toggleInterestCmd = &cobra.Command{
	Use:   "toggle <student-id> <professor-id>",
	Short: "Mark the interest if absent, remove it if present",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		marked, err := database.ToggleInterest(args[0], args[1])
		if err != nil {
			return err
		}
		if marked {
			cmd.Printf("✓ Interest of %s in %s marked\n", args[0], args[1])
		} else {
			cmd.Printf("✓ Interest of %s in %s removed\n", args[0], args[1])
		}
		return nil
	},
}

var interestStatusCmd = &cobra.Command{
	Use:   "status <student-id> <professor-id>",
	Short: "Update the status of an interest",
	Args:  cobra.ExactArgs(2),
	Example: `  labyrinth interest status s-123 p-456 --set contacted
  labyrinth interest status s-123 p-456 --set declined`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set, _ := cmd.Flags().GetString("set")
		if set == "" {
			sig, err := database.GetInterest(args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("%s %s\n", labelStyle.Render("Status:"), sig.Status)
			return nil
		}
		status, err := models.ParseInterestStatus(set)
		if err != nil {
			return fmt.Errorf("%w (valid: %v)", err, models.InterestStatuses)
		}
		if err := database.UpdateInterestStatus(args[0], args[1], status); err != nil {
			return err
		}
		cmd.Printf("✓ Interest status updated to: %s\n", status)
		return nil
	},
}

var listInterestsCmd = &cobra.Command{
	Use:   "list",
	Short: "List interests, optionally for one student or professor",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		studentID, _ := cmd.Flags().GetString("student")
		professorID, _ := cmd.Flags().GetString("professor")

		var signals []models.InterestSignal
		switch {
		case studentID != "":
			signals, err = database.GetStudentInterests(studentID)
		case professorID != "":
			signals, err = database.GetProfessorInterests(professorID)
		default:
			signals, err = database.GetInterests()
		}
		if err != nil {
			return fmt.Errorf("fetch interests: %w", err)
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), signals)
		}
		if len(signals) == 0 {
			cmd.Println("No interests recorded. Mark one with 'labyrinth interest mark STUDENT PROFESSOR'")
			return nil
		}
		cmd.Println(titleStyle.Render("Interests"))
		return output.Interests(cmd.OutOrStdout(), signals, profileNames())
	},
}

var interestedStudentsCmd = &cobra.Command{
	Use:   "interested <professor-id>",
	Short: "List students currently interested in a professor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		p, err := database.GetProfessor(args[0])
		if err != nil {
			return err
		}
		students, err := database.GetInterestedStudents(p.ID)
		if err != nil {
			return fmt.Errorf("fetch interested students: %w", err)
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), students)
		}
		if len(students) == 0 {
			cmd.Printf("No students are currently interested in %s\n", p.DisplayName())
			return nil
		}
		cmd.Println(titleStyle.Render("Interested in " + p.DisplayName()))
		return output.Students(cmd.OutOrStdout(), students)
	},
}

func init() {
	rootCmd.AddCommand(interestCmd)
	interestCmd.AddCommand(markInterestCmd, unmarkInterestCmd, toggleInterestCmd,
		interestStatusCmd, listInterestsCmd, interestedStudentsCmd)

	interestStatusCmd.Flags().String("set", "", "New status (interested, contacted, matched, declined)")
	listInterestsCmd.Flags().String("student", "", "Only interests of this student")
	listInterestsCmd.Flags().String("professor", "", "Only interests in this professor")
}

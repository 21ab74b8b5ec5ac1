package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/importer"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:     "student",
	Aliases: []string{"students"},
	Short:   "Manage student profiles",
	Long:    "Add, list, view, import, export and remove student profiles",
}

var addStudentCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student profile",
	Example: `  labyrinth student add --first Ada --last Lovelace --year Senior --gpa 3.8 \
    --interests "Machine Learning,Robotics" --skills Python,SQL \
    --availability "Part-time (15-20 hours/week)"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		s := &models.Student{}
		s.FirstName, _ = f.GetString("first")
		s.LastName, _ = f.GetString("last")
		s.Email, _ = f.GetString("email")
		s.Phone, _ = f.GetString("phone")
		s.Pronouns, _ = f.GetString("pronouns")
		s.University, _ = f.GetString("university")
		s.Major, _ = f.GetString("major")
		year, _ := f.GetString("year")
		s.Year = models.YearLevel(year)
		s.GPA, _ = f.GetFloat64("gpa")
		s.ResearchInterests, _ = f.GetStringSlice("interests")
		s.Skills, _ = f.GetStringSlice("skills")
		s.Experience, _ = f.GetString("experience")
		s.PreviousResearch, _ = f.GetString("previous-research")
		s.CareerGoals, _ = f.GetString("career-goals")
		availability, _ := f.GetString("availability")
		s.Availability = models.Availability(availability)
		s.PreferredMentorshipStyle, _ = f.GetString("mentorship-style")

		printWarnings(cmd, importer.NormalizeStudent(0, s))
		if err := database.CreateStudent(s); err != nil {
			return fmt.Errorf("save student: %w", err)
		}
		a.Logger.Info("student added", map[string]interface{}{"id": s.ID})
		cmd.Printf("✓ Student added: %s (ID: %s)\n", s.DisplayName(), s.ID)
		return nil
	},
}

var listStudentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all students",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		students, err := database.GetAllStudents()
		if err != nil {
			return fmt.Errorf("fetch students: %w", err)
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), students)
		}
		if len(students) == 0 {
			cmd.Println("No students found. Add one with 'labyrinth student add' or 'labyrinth student import FILE'")
			return nil
		}
		cmd.Println(titleStyle.Render(fmt.Sprintf("Students (%d)", len(students))))
		return output.Students(cmd.OutOrStdout(), students)
	},
}

var showStudentCmd = &cobra.Command{
	Use:   "show <student-id>",
	Short: "Show a student profile",
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
		signals, err := database.GetStudentInterests(s.ID)
		if err != nil {
			return fmt.Errorf("fetch interests: %w", err)
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), map[string]interface{}{
				"student":   s,
				"interests": signals,
			})
		}

		cmd.Println(titleStyle.Render(s.DisplayName()))
		printField(cmd, "ID:", s.ID)
		printField(cmd, "Email:", s.Email)
		printField(cmd, "Phone:", s.Phone)
		printField(cmd, "Pronouns:", s.Pronouns)
		printField(cmd, "University:", s.University)
		printField(cmd, "Major:", s.Major)
		printField(cmd, "Year:", string(s.Year))
		printField(cmd, "GPA:", fmt.Sprintf("%.2f", s.GPA))
		printField(cmd, "Availability:", string(s.Availability))
		printField(cmd, "Mentorship:", s.PreferredMentorshipStyle)
		printField(cmd, "Interests:", strings.Join(s.ResearchInterests, ", "))
		printField(cmd, "Skills:", strings.Join(s.Skills, ", "))
		printField(cmd, "Experience:", s.Experience)
		printField(cmd, "Research:", s.PreviousResearch)
		printField(cmd, "Career Goals:", s.CareerGoals)
		if len(signals) > 0 {
			cmd.Printf("\n%s\n", labelStyle.Render("Interested In"))
			return output.Interests(cmd.OutOrStdout(), signals, professorNames())
		}
		return nil
	},
}

var importStudentsCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import students from a YAML, JSON or TOML file",
	Long: `Import students from a YAML, JSON or TOML document with a top-level "students" list.
Existing students with the same ID are replaced. Validation problems are
reported as warnings and do not stop the import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		b, err := importer.Load(args[0])
		if err != nil {
			return err
		}
		printWarnings(cmd, importer.Normalize(b))
		for _, s := range b.Students {
			if err := database.SaveStudent(s); err != nil {
				return fmt.Errorf("save student: %w", err)
			}
		}
		if n := len(b.Professors); n > 0 {
			cmd.Printf("Skipped %d professor(s); use 'labyrinth professor import' for those\n", n)
		}
		a.Logger.Info("students imported", map[string]interface{}{"file": args[0], "count": len(b.Students)})
		cmd.Printf("✓ Imported %d student(s) from %s\n", len(b.Students), args[0])
		return nil
	},
}

var exportStudentsCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all students to a YAML, JSON or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		students, err := database.GetAllStudents()
		if err != nil {
			return fmt.Errorf("fetch students: %w", err)
		}
		if err := importer.WriteFile(args[0], &importer.Bundle{Students: students}); err != nil {
			return err
		}
		cmd.Printf("✓ Exported %d student(s) to %s\n", len(students), args[0])
		return nil
	},
}

var deleteStudentCmd = &cobra.Command{
	Use:   "delete <student-id>",
	Short: "Delete a student and their interests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.DeleteStudent(args[0]); err != nil {
			return err
		}
		cmd.Printf("✓ Student %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(studentCmd)
	studentCmd.AddCommand(addStudentCmd, listStudentsCmd, showStudentCmd,
		importStudentsCmd, exportStudentsCmd, deleteStudentCmd)

	f := addStudentCmd.Flags()
	f.String("first", "", "First name")
	f.String("last", "", "Last name")
	f.String("email", "", "Email address")
	f.String("phone", "", "Phone number")
	f.String("pronouns", "", "Pronouns")
	f.String("university", "", "University")
	f.String("major", "", "Major")
	f.String("year", "", "Year (Freshman, Sophomore, Junior, Senior, Graduate Student, PhD Student)")
	f.Float64("gpa", 0, "GPA on a 4.0 scale")
	f.StringSlice("interests", nil, "Research interests, comma separated")
	f.StringSlice("skills", nil, "Skills, comma separated")
	f.String("experience", "", "Work or project experience")
	f.String("previous-research", "", "Previous research experience")
	f.String("career-goals", "", "Career goals")
	f.String("availability", "", "Weekly availability, e.g. \"Part-time (10-15 hours/week)\"")
	f.String("mentorship-style", "", "Preferred mentorship style")
}

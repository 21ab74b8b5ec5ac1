package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/khrees2412/labyrinth/internal/importer"
	"github.com/khrees2412/labyrinth/internal/output"
	"github.com/khrees2412/labyrinth/pkg/models"
	"github.com/spf13/cobra"
)

var professorCmd = &cobra.Command{
	Use:     "professor",
	Aliases: []string{"professors", "prof"},
	Short:   "Manage professor profiles",
	Long:    "Add, list, view, import, export and remove professor profiles",
}

var addProfessorCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a professor profile",
	Example: `  labyrinth professor add --first Grace --last Hopper --title "Research Professor" \
    --department "Computer Science" --areas "Artificial Intelligence,Robotics" \
    --skills Python --levels "Senior,Graduate Student" --lab-size 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		f := cmd.Flags()
		p := &models.Professor{}
		p.FirstName, _ = f.GetString("first")
		p.LastName, _ = f.GetString("last")
		p.Email, _ = f.GetString("email")
		p.Phone, _ = f.GetString("phone")
		p.Pronouns, _ = f.GetString("pronouns")
		p.University, _ = f.GetString("university")
		p.Department, _ = f.GetString("department")
		p.Title, _ = f.GetString("title")
		p.ResearchAreas, _ = f.GetStringSlice("areas")
		p.RequiredSkills, _ = f.GetStringSlice("skills")
		levels, _ := f.GetStringSlice("levels")
		for _, l := range levels {
			p.PreferredStudentLevel = append(p.PreferredStudentLevel, models.YearLevel(strings.TrimSpace(l)))
		}
		p.LabSize, _ = f.GetInt("lab-size")
		p.MentorshipStyle, _ = f.GetString("mentorship-style")
		p.LookingForStudents, _ = f.GetBool("looking")
		p.Publications, _ = f.GetStringSlice("publications")
		p.FundingHistory, _ = f.GetString("funding")
		p.Bio, _ = f.GetString("bio")
		p.WebsiteURL, _ = f.GetString("website")

		printWarnings(cmd, importer.NormalizeProfessor(0, p))
		if err := database.CreateProfessor(p); err != nil {
			return fmt.Errorf("save professor: %w", err)
		}
		a.Logger.Info("professor added", map[string]interface{}{"id": p.ID})
		cmd.Printf("✓ Professor added: %s (ID: %s)\n", p.DisplayName(), p.ID)
		return nil
	},
}

var listProfessorsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all professors",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFrom(cmd)
		if err != nil {
			return err
		}
		professors, err := database.GetAllProfessors()
		if err != nil {
			return fmt.Errorf("fetch professors: %w", err)
		}
		if looking, _ := cmd.Flags().GetBool("looking"); looking {
			open := professors[:0]
			for _, p := range professors {
				if p.LookingForStudents {
					open = append(open, p)
				}
			}
			professors = open
		}
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), professors)
		}
		if len(professors) == 0 {
			cmd.Println("No professors found. Add one with 'labyrinth professor add' or 'labyrinth professor import FILE'")
			return nil
		}
		cmd.Println(titleStyle.Render(fmt.Sprintf("Professors (%d)", len(professors))))
		return output.Professors(cmd.OutOrStdout(), professors)
	},
}

var showProfessorCmd = &cobra.Command{
	Use:   "show <professor-id>",
	Short: "Show a professor profile",
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
		if wantJSON(a) {
			return output.JSON(cmd.OutOrStdout(), p)
		}

		levels := make([]string, 0, len(p.PreferredStudentLevel))
		for _, l := range p.PreferredStudentLevel {
			levels = append(levels, string(l))
		}
		cmd.Println(titleStyle.Render(p.DisplayName()))
		printField(cmd, "ID:", p.ID)
		printField(cmd, "Email:", p.Email)
		printField(cmd, "Phone:", p.Phone)
		printField(cmd, "University:", p.University)
		printField(cmd, "Department:", p.Department)
		printField(cmd, "Looking:", strconv.FormatBool(p.LookingForStudents))
		printField(cmd, "Lab Size:", strconv.Itoa(p.LabSize))
		printField(cmd, "Mentorship:", p.MentorshipStyle)
		printField(cmd, "Areas:", strings.Join(p.ResearchAreas, ", "))
		printField(cmd, "Skills:", strings.Join(p.RequiredSkills, ", "))
		printField(cmd, "Levels:", strings.Join(levels, ", "))
		printField(cmd, "Funding:", p.FundingHistory)
		printField(cmd, "Website:", p.WebsiteURL)
		printField(cmd, "Bio:", p.Bio)
		for _, pub := range p.Publications {
			printField(cmd, "Publication:", pub)
		}
		return nil
	},
}

var importProfessorsCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import professors from a YAML, JSON or TOML file",
	Long: `Import professors from a YAML, JSON or TOML document with a top-level "professors" list.
Existing professors with the same ID are replaced. Validation problems are
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
		for _, p := range b.Professors {
			if err := database.SaveProfessor(p); err != nil {
				return fmt.Errorf("save professor: %w", err)
			}
		}
		if n := len(b.Students); n > 0 {
			cmd.Printf("Skipped %d student(s); use 'labyrinth student import' for those\n", n)
		}
		a.Logger.Info("professors imported", map[string]interface{}{"file": args[0], "count": len(b.Professors)})
		cmd.Printf("✓ Imported %d professor(s) from %s\n", len(b.Professors), args[0])
		return nil
	},
}

var exportProfessorsCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export all professors to a YAML, JSON or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		professors, err := database.GetAllProfessors()
		if err != nil {
			return fmt.Errorf("fetch professors: %w", err)
		}
		if err := importer.WriteFile(args[0], &importer.Bundle{Professors: professors}); err != nil {
			return err
		}
		cmd.Printf("✓ Exported %d professor(s) to %s\n", len(professors), args[0])
		return nil
	},
}

var deleteProfessorCmd = &cobra.Command{
	Use:   "delete <professor-id>",
	Short: "Delete a professor and the interests in them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.DeleteProfessor(args[0]); err != nil {
			return err
		}
		cmd.Printf("✓ Professor %s deleted\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(professorCmd)
	professorCmd.AddCommand(addProfessorCmd, listProfessorsCmd, showProfessorCmd,
		importProfessorsCmd, exportProfessorsCmd, deleteProfessorCmd)

	listProfessorsCmd.Flags().Bool("looking", false, "Only professors looking for students")

	f := addProfessorCmd.Flags()
	f.String("first", "", "First name")
	f.String("last", "", "Last name")
	f.String("email", "", "Email address")
	f.String("phone", "", "Phone number")
	f.String("pronouns", "", "Pronouns")
	f.String("university", "", "University")
	f.String("department", "", "Department")
	f.String("title", "", "Title, e.g. Associate Professor")
	f.StringSlice("areas", nil, "Research areas, comma separated")
	f.StringSlice("skills", nil, "Required skills, comma separated")
	f.StringSlice("levels", nil, "Preferred student levels, comma separated")
	f.Int("lab-size", 0, "Current lab size")
	f.String("mentorship-style", "", "Mentorship style, e.g. Hands-on")
	f.Bool("looking", true, "Currently looking for students")
	f.StringSlice("publications", nil, "Selected publications")
	f.String("funding", "", "Funding history")
	f.String("bio", "", "Short biography")
	f.String("website", "", "Website URL")
}

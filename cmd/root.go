package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/khrees2412/labyrinth/internal/app"
	"github.com/khrees2412/labyrinth/internal/config"
	"github.com/khrees2412/labyrinth/internal/database"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// skipStore marks commands that run without opening the record store
const skipStore = "labyrinth/skip-store"

var (
	configDir   string
	jsonOutput  bool
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Match students with research professors",
	Long: `Labyrinth ranks research professors for students and students for professors.
It scores research interests, skills, academic level, GPA, availability,
experience and career goals, and lifts pairs where a student has
expressed interest.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configDir != "" {
			err = config.InitializeAt(configDir)
		} else {
			err = config.Initialize()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if skipsStore(cmd) {
			return nil
		}

		if err := database.Initialize(config.AppConfig.DatabasePath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		application, err = app.NewApp(config.AppConfig, database.DB)
		if err != nil {
			database.Close()
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		application.Logger.Debug("record store opened", map[string]interface{}{
			"path":    config.AppConfig.DatabasePath,
			"command": cmd.CommandPath(),
		})

		cmd.SetContext(app.NewContext(cmd.Context(), application))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding config.yaml (default ~/.labyrinth)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of tables")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run executes the command tree with args and releases the application
// afterwards
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if application != nil {
		if cerr := application.Close(); cerr != nil && err == nil {
			err = cerr
		}
		application = nil
		database.DB = nil
	}
	return err
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipStore]; ok {
			return true
		}
	}
	return false
}

// appFrom returns the application stored on the command context
func appFrom(cmd *cobra.Command) (*app.App, error) {
	a := app.FromContext(cmd.Context())
	if a == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return a, nil
}

// wantJSON reports whether output should be JSON for this invocation
func wantJSON(a *app.App) bool {
	if jsonOutput {
		return true
	}
	return a != nil && a.Config != nil && a.Config.OutputFormat == "json"
}

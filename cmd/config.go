package cmd

import (
	"fmt"

	"github.com/khrees2412/labyrinth/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Long:        "View and update configuration settings",
	Annotations: map[string]string{skipStore: "true"},
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(titleStyle.Render("Configuration"))
		printField(cmd, "Config File:", config.GetConfigPath())
		for _, key := range config.ValidKeys() {
			value := config.Get(key)
			if key == "database_path" {
				value = config.AppConfig.DatabasePath
			}
			if value == "" {
				value = "(not set)"
			}
			printField(cmd, key+":", value)
		}
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  labyrinth config set --key match_threshold --value 30
  labyrinth config set --key output_format --value json
  labyrinth config set --key metrics_file --value /var/lib/node_exporter/labyrinth.prom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")
		if key == "" {
			return fmt.Errorf("--key is required (one of %v)", config.ValidKeys())
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("update config: %w", err)
		}
		cmd.Printf("✓ Configuration updated: %s = %s\n", key, config.Get(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}

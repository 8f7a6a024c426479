package cli

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change the configuration",
	Long: `Every build parameter has a built-in default. The config file only holds
overrides, written as TOML tables:

  [directory]
  delay_min = "500ms"

  [paths]
  output = "lexicon.db"`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Override one configuration key",
	Long: `Checks VALUE against the rest of the configuration and saves it to the
config file. Keys use dotted form, e.g. search.pause or paths.output.
Durations use Go syntax such as 1500ms or 2s.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset KEY",
	Short: "Remove an override so the default applies",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	tables, err := settings.Tables()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	data, err := toml.Marshal(tables)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	cmd.Printf("# %s\n", settings.Path())
	if overrides := settings.Overrides(); len(overrides) > 0 {
		cmd.Printf("# overrides: %s\n", strings.Join(overrides, ", "))
	}
	cmd.Println()
	cmd.Print(string(data))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := settings.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}

	if err := settings.Unset(args[0]); err != nil {
		return fmt.Errorf("unsetting %s: %w", args[0], err)
	}

	cmd.Printf("%s reset to default\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	settings, err := requireSettings()
	if err != nil {
		return err
	}
	cmd.Println(settings.Path())
	return nil
}

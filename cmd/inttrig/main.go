package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/inttrig/internal/toolconfig"
)

var (
	tableN     int
	configFile string
	preset     string
)

// main is the entry point for the inttrig CLI; it registers commands and
// flags and executes the root command, exiting the process with status 1
// if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "inttrig",
		Short: "integer-only fixed-point trigonometry kernel toolkit",
	}
	rootCmd.PersistentFlags().IntVar(&tableN, "n", toolconfig.DefaultN, "quarter-wave table size (32, 64, 128, 256, 512)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a named preset")

	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newWaveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig returns the configuration for the named subcommand:
// toolconfig.DefaultConfig, replaced by the named preset if one is given,
// replaced in turn by the config file if one is given. A config file is
// applied on top of DefaultConfig, not on top of the preset, so a preset
// and a file are not combined. Callers apply CLI flags last.
func resolveConfig(subcommand string) (*toolconfig.Config, error) {
	cfg := toolconfig.DefaultConfig()

	if preset != "" {
		p := toolconfig.GetPreset(subcommand, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (available: %v)", preset, subcommand, toolconfig.ListPresets(subcommand))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := toolconfig.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	return cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/inodb/vcf-concordance/internal/render"
)

const configFileName = ".vcf-concordance.yaml"

// initConfig sets rendering defaults and loads ~/.vcf-concordance.yaml
// when present.
func initConfig(logger *zap.Logger) {
	viper.SetDefault("render.dpi", render.DefaultDPI)
	viper.SetDefault("render.width", 0)  // inches; 0 = per-diagram default
	viper.SetDefault("render.height", 0) // inches; 0 = per-diagram default

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	viper.AddConfigPath(home)
	viper.SetConfigName(".vcf-concordance")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Warn("could not read config file", zap.Error(err))
		}
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vcf-concordance configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/" + configFileName + ".",
		Example: `  vcf-concordance config                  # show all config
  vcf-concordance config set render.dpi 150   # render lower-resolution images
  vcf-concordance config get render.dpi       # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/" + configFileName)
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func runConfigSet(key, value string) error {
	// Store numbers as numbers so render settings round-trip.
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		viper.Set(key, n)
	} else {
		viper.Set(key, value)
	}

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, configFileName)
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}

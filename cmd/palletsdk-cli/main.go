// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/palletsdk/consts"
	"github.com/ava-labs/palletsdk/runtime"
)

const (
	envPrefix = "PALLETSDK"

	configKey           = "config"
	logLevelKey         = "log-level"
	logDirKey           = "log-dir"
	metricsNamespaceKey = "metrics-namespace"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   consts.Name + "-cli",
		Short: "Execute blocks against a pallet runtime",
		Long:  `A CLI application for running plans of blocks against a runtime composed of the system, balances and proof of existence pallets.`,
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true

	flags := cmd.PersistentFlags()
	flags.String(configKey, "", "Path to a JSON runtime config")
	flags.String(logLevelKey, "", "Log level (overrides the runtime config)")
	flags.String(logDirKey, "", "Directory to write rotated log files to")
	flags.String(metricsNamespaceKey, "", "Prefix for exposed metrics (overrides the runtime config)")

	// Flags take precedence over PALLETSDK_* environment variables
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, "Error binding flags:", err)
		os.Exit(1)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newRunCmd(v),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads the runtime config file, if any, and applies the flag and
// environment overrides on top of it.
func loadConfig(v *viper.Viper) (runtime.Config, error) {
	var b []byte
	if path := v.GetString(configKey); path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return runtime.Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}
	config, err := runtime.ParseConfig(b)
	if err != nil {
		return runtime.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if level := v.GetString(logLevelKey); level != "" {
		config.LogLevel, err = logging.ToLevel(level)
		if err != nil {
			return runtime.Config{}, err
		}
	}
	if namespace := v.GetString(metricsNamespaceKey); namespace != "" {
		config.MetricsNamespace = namespace
	}
	return config, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s@%s\n", consts.Name, consts.Version)
			return err
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

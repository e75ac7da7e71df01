package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aquasecurity/sbomconv/internal/flag"
	"github.com/aquasecurity/sbomconv/internal/slogx"
)

func newRootCommand() *cobra.Command {
	globalFlags := flag.NewGlobalFlagGroup()

	cmd := &cobra.Command{
		Use:           "sbomconv",
		Short:         "Convert SBOMs between CycloneDX and SPDX 3.x",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := globalFlags.Bind(cmd); err != nil {
				return err
			}
			configureLogging(globalFlags.ToOptions().LogLevel)
			return nil
		},
	}

	globalFlags.AddFlags(cmd)
	viper.SetEnvPrefix("SBOMCONV")
	viper.AutomaticEnv()

	cmd.AddCommand(newCDX2SPDXCommand(), newSPDX2CDXCommand())
	return cmd
}

func configureLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slogx.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

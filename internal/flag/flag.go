// Package flag implements the cobra/pflag/viper-backed flag machinery the
// CLI layer binds onto pkg/convert's plain Options structs, modeled on the
// teacher's pkg/flag: a Flag describes one pflag/viper-bound value, a
// FlagGroup composes several into one cohesive Options builder.
package flag

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// Flag describes a single CLI flag bound through viper, so it can also be
// set via config file or environment variable. Value holds the flag's
// default and, implicitly, its type (bool/string/int/time.Duration).
type Flag struct {
	Name       string
	ConfigName string
	Shorthand  string
	Value      any
	Usage      string
	Persistent bool
}

func addFlag(cmd *cobra.Command, f *Flag) {
	flags := cmd.Flags()
	if f.Persistent {
		flags = cmd.PersistentFlags()
	}

	switch v := f.Value.(type) {
	case int:
		flags.IntP(f.Name, f.Shorthand, v, f.Usage)
	case string:
		flags.StringP(f.Name, f.Shorthand, v, f.Usage)
	case []string:
		flags.StringSliceP(f.Name, f.Shorthand, v, f.Usage)
	case bool:
		flags.BoolP(f.Name, f.Shorthand, v, f.Usage)
	case time.Duration:
		flags.DurationP(f.Name, f.Shorthand, v, f.Usage)
	}
}

func bind(cmd *cobra.Command, f *Flag) error {
	if f == nil {
		return nil
	}
	if err := viper.BindPFlag(f.ConfigName, cmd.Flags().Lookup(f.Name)); err != nil {
		return xerrors.Errorf("bind flag %q: %w", f.Name, err)
	}
	return nil
}

func getString(f *Flag) string {
	if f == nil {
		return ""
	}
	return viper.GetString(f.ConfigName)
}

func getBool(f *Flag) bool {
	if f == nil {
		return false
	}
	return viper.GetBool(f.ConfigName)
}

func getInt(f *Flag) int {
	if f == nil {
		return 0
	}
	return viper.GetInt(f.ConfigName)
}

func getDuration(f *Flag) time.Duration {
	if f == nil {
		return 0
	}
	return viper.GetDuration(f.ConfigName)
}

// FlagGroup is the shared interface the CLI layer drives generically:
// register flags on a command, bind them through viper, and nothing else -
// each group defines its own typed ToOptions.
type FlagGroup interface {
	AddFlags(cmd *cobra.Command)
	Bind(cmd *cobra.Command) error
}

package flag

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var LogLevelFlag = Flag{
	Name:       "log-level",
	ConfigName: "log.level",
	Value:      "info",
	Usage:      "log level (debug, info, warn, error)",
	Persistent: true,
}

// GlobalFlagGroup composes the flags every subcommand inherits.
type GlobalFlagGroup struct {
	LogLevel *Flag
}

type GlobalOptions struct {
	LogLevel string
}

func NewGlobalFlagGroup() *GlobalFlagGroup {
	return &GlobalFlagGroup{LogLevel: lo.ToPtr(LogLevelFlag)}
}

func (f *GlobalFlagGroup) flags() []*Flag {
	return []*Flag{f.LogLevel}
}

func (f *GlobalFlagGroup) AddFlags(cmd *cobra.Command) {
	for _, fl := range f.flags() {
		addFlag(cmd, fl)
	}
}

func (f *GlobalFlagGroup) Bind(cmd *cobra.Command) error {
	for _, fl := range f.flags() {
		if err := bind(cmd, fl); err != nil {
			return err
		}
	}
	return nil
}

func (f *GlobalFlagGroup) ToOptions() GlobalOptions {
	return GlobalOptions{LogLevel: getString(f.LogLevel)}
}

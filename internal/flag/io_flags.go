package flag

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	InputFlag = Flag{
		Name:       "input",
		ConfigName: "io.input",
		Shorthand:  "i",
		Value:      "",
		Usage:      "input SBOM file path (\"-\" or omitted reads stdin)",
	}
	OutputFlag = Flag{
		Name:       "output",
		ConfigName: "io.output",
		Shorthand:  "o",
		Value:      "",
		Usage:      "output file path (\"-\" or omitted writes stdout)",
	}
)

// IOFlagGroup composes the input/output path flags shared by both
// conversion subcommands.
type IOFlagGroup struct {
	Input  *Flag
	Output *Flag
}

type IOOptions struct {
	Input  string
	Output string
}

func NewIOFlagGroup() *IOFlagGroup {
	return &IOFlagGroup{
		Input:  lo.ToPtr(InputFlag),
		Output: lo.ToPtr(OutputFlag),
	}
}

func (f *IOFlagGroup) flags() []*Flag {
	return []*Flag{f.Input, f.Output}
}

func (f *IOFlagGroup) AddFlags(cmd *cobra.Command) {
	for _, fl := range f.flags() {
		addFlag(cmd, fl)
	}
}

func (f *IOFlagGroup) Bind(cmd *cobra.Command) error {
	for _, fl := range f.flags() {
		if err := bind(cmd, fl); err != nil {
			return err
		}
	}
	return nil
}

func (f *IOFlagGroup) ToOptions() IOOptions {
	return IOOptions{
		Input:  getString(f.Input),
		Output: getString(f.Output),
	}
}

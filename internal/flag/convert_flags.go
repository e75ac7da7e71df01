package flag

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/aquasecurity/sbomconv/pkg/convert/cdxversion"
)

var (
	PackagesOnlyFlag = Flag{
		Name:       "packages-only",
		ConfigName: "convert.packages-only",
		Value:      false,
		Usage:      "skip SPDX File elements, emitting only Package-derived components",
	}
	SplitVEXFlag = Flag{
		Name:       "split-vex",
		ConfigName: "convert.split-vex",
		Value:      false,
		Usage:      "write vulnerabilities to a sibling CycloneDX VEX document instead of the main one",
	}
	CDXVersionFlag = Flag{
		Name:       "cdx-version",
		ConfigName: "convert.cdx-version",
		Value:      cdxversion.Default,
		Usage:      "CycloneDX specVersion to emit (" + joinSupported() + ")",
	}
	SideFileDirFlag = Flag{
		Name:       "side-file-dir",
		ConfigName: "convert.side-file-dir",
		Value:      "",
		Usage:      "scratch directory for relationship/vulnerability side files (default: OS temp dir)",
	}
	ToolNameFlag = Flag{
		Name:       "tool-name",
		ConfigName: "convert.tool-name",
		Value:      "sbomconv",
		Usage:      "tool name recorded in the output document's creators/tools metadata",
	}
	ProgressFlag = Flag{
		Name:       "progress",
		ConfigName: "convert.progress",
		Value:      false,
		Usage:      "log a progress line every 1000 processed elements or relationships",
	}
)

func joinSupported() string {
	out := ""
	for i, v := range cdxversion.Supported {
		if i > 0 {
			out += ", "
		}
		out += v
	}
	return out
}

// ConvertFlagGroup composes the flags common to both conversion directions.
// PackagesOnly, SplitVEX and CDXVersion only take effect in spdx2cdx, and
// SideFileDir only in cdx2spdx, but both subcommands accept the whole group
// for a uniform CLI surface; the unused fields are simply ignored by the
// direction that doesn't need them.
type ConvertFlagGroup struct {
	PackagesOnly *Flag
	SplitVEX     *Flag
	CDXVersion   *Flag
	SideFileDir  *Flag
	ToolName     *Flag
	Progress     *Flag
}

type ConvertOptions struct {
	PackagesOnly bool
	SplitVEX     bool
	CDXVersion   string
	SideFileDir  string
	ToolName     string
	Progress     bool
}

func NewConvertFlagGroup() *ConvertFlagGroup {
	return &ConvertFlagGroup{
		PackagesOnly: lo.ToPtr(PackagesOnlyFlag),
		SplitVEX:     lo.ToPtr(SplitVEXFlag),
		CDXVersion:   lo.ToPtr(CDXVersionFlag),
		SideFileDir:  lo.ToPtr(SideFileDirFlag),
		ToolName:     lo.ToPtr(ToolNameFlag),
		Progress:     lo.ToPtr(ProgressFlag),
	}
}

func (f *ConvertFlagGroup) flags() []*Flag {
	return []*Flag{f.PackagesOnly, f.SplitVEX, f.CDXVersion, f.SideFileDir, f.ToolName, f.Progress}
}

func (f *ConvertFlagGroup) AddFlags(cmd *cobra.Command) {
	for _, fl := range f.flags() {
		addFlag(cmd, fl)
	}
}

func (f *ConvertFlagGroup) Bind(cmd *cobra.Command) error {
	for _, fl := range f.flags() {
		if err := bind(cmd, fl); err != nil {
			return err
		}
	}
	return nil
}

func (f *ConvertFlagGroup) ToOptions() ConvertOptions {
	return ConvertOptions{
		PackagesOnly: getBool(f.PackagesOnly),
		SplitVEX:     getBool(f.SplitVEX),
		CDXVersion:   getString(f.CDXVersion),
		SideFileDir:  getString(f.SideFileDir),
		ToolName:     getString(f.ToolName),
		Progress:     getBool(f.Progress),
	}
}

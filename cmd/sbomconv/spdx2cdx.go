package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/sbomconv/internal/flag"
	"github.com/aquasecurity/sbomconv/pkg/convert/spdx2cdx"
)

func newSPDX2CDXCommand() *cobra.Command {
	ioFlags := flag.NewIOFlagGroup()
	conv := flag.NewConvertFlagGroup()

	cmd := &cobra.Command{
		Use:   "spdx2cdx",
		Short: "Convert an SPDX 3 document (simple JSON or JSON-LD) to CycloneDX",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ioFlags.Bind(cmd); err != nil {
				return err
			}
			if err := conv.Bind(cmd); err != nil {
				return err
			}

			ioOpts := ioFlags.ToOptions()
			convOpts := conv.ToOptions()

			opener, cleanup, err := newOpener(ioOpts.Input)
			if err != nil {
				return err
			}
			defer cleanup()

			out, closeOut, err := createOutput(ioOpts.Output)
			if err != nil {
				return err
			}
			defer closeOut()

			var vexOut io.Writer
			if convOpts.SplitVEX {
				if ioOpts.Output == "" || ioOpts.Output == "-" {
					return xerrors.Errorf("--split-vex requires --output (a sibling .vex.json path is derived from it)")
				}
				vexFile, err := os.Create(ioOpts.Output + ".vex.json")
				if err != nil {
					return xerrors.Errorf("create VEX output: %w", err)
				}
				defer vexFile.Close()
				vexOut = vexFile
			}

			sink := newProgressSink(convOpts.Progress)
			_, err = spdx2cdx.Convert(context.Background(), opener, out, vexOut, spdx2cdx.Options{
				PackagesOnly: convOpts.PackagesOnly,
				SplitVEX:     convOpts.SplitVEX,
				CDXVersion:   convOpts.CDXVersion,
				ToolName:     convOpts.ToolName,
				Progress:     sink,
			})
			return err
		},
	}

	ioFlags.AddFlags(cmd)
	conv.AddFlags(cmd)
	return cmd
}

// newOpener returns a spdx2cdx.Opener that re-opens path from the start on
// every call. Stdin can't be reopened, so it is first materialized to a
// scratch file; regular paths are reopened directly via os.Open.
func newOpener(path string) (spdx2cdx.Opener, func(), error) {
	if path == "" || path == "-" {
		tmp, err := os.CreateTemp("", "sbomconv-stdin-*.json")
		if err != nil {
			return nil, nil, xerrors.Errorf("materialize stdin: %w", err)
		}
		if _, err := io.Copy(tmp, os.Stdin); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return nil, nil, xerrors.Errorf("materialize stdin: %w", err)
		}
		tmp.Close()

		name := tmp.Name()
		opener := func() (io.ReadCloser, error) { return os.Open(name) }
		cleanup := func() { _ = os.Remove(name) }
		return opener, cleanup, nil
	}

	opener := func() (io.ReadCloser, error) { return os.Open(path) }
	return opener, func() {}, nil
}

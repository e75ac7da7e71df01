package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/aquasecurity/sbomconv/internal/flag"
	"github.com/aquasecurity/sbomconv/pkg/convert/cdx2spdx"
	"github.com/aquasecurity/sbomconv/pkg/progress"
)

func newCDX2SPDXCommand() *cobra.Command {
	ioFlags := flag.NewIOFlagGroup()
	conv := flag.NewConvertFlagGroup()

	cmd := &cobra.Command{
		Use:   "cdx2spdx",
		Short: "Convert a CycloneDX document to SPDX 3 simple-JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ioFlags.Bind(cmd); err != nil {
				return err
			}
			if err := conv.Bind(cmd); err != nil {
				return err
			}

			ioOpts := ioFlags.ToOptions()
			convOpts := conv.ToOptions()

			in, closeIn, err := openInput(ioOpts.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := createOutput(ioOpts.Output)
			if err != nil {
				return err
			}
			defer closeOut()

			sink := newProgressSink(convOpts.Progress)
			_, err = cdx2spdx.Convert(context.Background(), in, out, cdx2spdx.Options{
				SideFileDir: convOpts.SideFileDir,
				ToolName:    convOpts.ToolName,
				Progress:    sink,
			})
			return err
		},
	}

	ioFlags.AddFlags(cmd)
	conv.AddFlags(cmd)
	return cmd
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, xerrors.Errorf("open input %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func createOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, xerrors.Errorf("create output %q: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func newProgressSink(showProgress bool) *progress.Sink {
	if !showProgress {
		return progress.New(0, nil)
	}
	return progress.New(1000, progress.LogRate)
}

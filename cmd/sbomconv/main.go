// Command sbomconv converts Software Bills of Materials between CycloneDX
// and SPDX 3.x, streaming both directions without materializing the whole
// document in memory.
package main

import (
	"fmt"
	"os"

	"github.com/aquasecurity/sbomconv/internal/slogx"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slogx.New("sbomconv").Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

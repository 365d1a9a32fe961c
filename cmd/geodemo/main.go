// Command geodemo runs the fixed lvgeo demonstration script.
//
// Unit shapes and rejected dimensions are reported on stderr; scene totals
// are printed on stdout. Set LVGEO_LOG_LEVEL=debug for structured records.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

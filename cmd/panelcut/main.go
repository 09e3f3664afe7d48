// PanelCut optimizes wall panel layouts from architectural schedules.
// It imports wall and opening schedules (CSV or Excel), runs the
// constraint-driven placement engine, and writes fabrication outputs:
// placement CSV, drawings PDF, panel labels, DXF and Excel schedules.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

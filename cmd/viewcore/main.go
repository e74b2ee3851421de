// Command viewcore realizes YAML scenes on the headless toolkit and
// reports their layout and measurements.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/viewcore/cmd/viewcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

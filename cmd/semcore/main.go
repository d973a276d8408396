// Command semcore builds semantic keyword cores from seed phrases.
package main

import (
	"fmt"
	"os"

	"github.com/clearpath-labs/semcore-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

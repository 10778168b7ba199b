// Command material inspects theme files and runs the Material widgets
// headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/material/cmd/material/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

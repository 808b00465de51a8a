// ABOUTME: Entry point for orincore-admin CLI
// ABOUTME: Terminal admin console for the Orincore Technologies site backend

package main

import (
	"fmt"
	"os"

	"github.com/orincore/portfolio-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

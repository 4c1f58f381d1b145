// Package main is the entry point for the parkfee CLI.
package main

import (
	"os"

	"facility-parking/cmd/parkfee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

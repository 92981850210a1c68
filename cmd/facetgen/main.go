// Package main provides the entry point for the facetgen CLI.
package main

import (
	"os"

	"github.com/lodgekit/facetgen/cmd/facetgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the itembridge CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/itembridge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

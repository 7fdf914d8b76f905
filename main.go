// Package main is the entry point for imgenc.
package main

import (
	"os"

	"github.com/idelchi/imgenc/internal/commands"
)

// Will be set by the build process.
var version = "unknown"

func main() {
	os.Exit(commands.Execute(version, os.Args[1:], os.Stdout, os.Stderr))
}

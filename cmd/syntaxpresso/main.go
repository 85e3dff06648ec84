// Package main is the entry point for the syntaxpresso CLI tool.
package main

import (
	"github.com/syntaxpresso/core/internal/cmd"
)

func main() {
	cmd.Execute()
}

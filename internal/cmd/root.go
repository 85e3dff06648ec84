// Package cmd contains all CLI commands for syntaxpresso.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the current version of syntaxpresso
	Version = "0.1.0"

	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "syntaxpresso",
	Short: "Java JPA scaffolding engine for editor integrations",
	Long: `syntaxpresso edits and generates Java source for JPA projects.

It parses Java files into concrete syntax trees, resolves structural
anchors (package clause, imports, type bodies) and applies byte-exact
edits, so everything outside the touched spans survives untouched.
Every command prints a single JSON envelope on stdout; editors and
agents drive the tool through flags and base64-encoded source.

Main capabilities:
  - List JPA entities, mapped superclasses and packages in a project
  - Describe an entity: package, superclass, id field, fields
  - Create Java files, JPA entities and Spring Data repositories
  - Add basic, id and enum fields to an existing entity
  - Add one-to-one and many-to-one relationships (owning side only)

Examples:
  syntaxpresso get-all-jpa-entities --cwd .
  syntaxpresso create-jpa-entity --cwd . --package-name com.acme --file-name Customer
  syntaxpresso get-java-basic-types --basic-type-kind id-types

See 'syntaxpresso <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output on stderr")

	// Editors generate flags from snake_case field names; accept both
	// spellings.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// verbosef prints a diagnostic line to stderr when --verbose is set.
// Stdout stays reserved for the JSON envelope.
func verbosef(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

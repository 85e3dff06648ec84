package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// getJavaBasicTypesCmd lists the catalog of well-known Java field
// types. It needs no project, so the envelope carries no real cwd.
var getJavaBasicTypesCmd = &cobra.Command{
	Use:   "get-java-basic-types",
	Short: "List well-known Java field types",
	RunE:  runGetJavaBasicTypes,
}

var basicTypeKind string

func init() {
	rootCmd.AddCommand(getJavaBasicTypesCmd)
	getJavaBasicTypesCmd.Flags().StringVar(&basicTypeKind, "basic-type-kind", "all-types",
		"Catalog slice (all-types|id-types|numeric-types|temporal-types|text-types|binary-types)")
}

func runGetJavaBasicTypes(cmd *cobra.Command, args []string) error {
	const name = "get-java-basic-types"
	const cwd = "N/A"

	kind, err := jpa.ParseBasicTypeQuery(basicTypeKind)
	if err != nil {
		return emitError[[]output.BasicTypeResponse](cmd, name, cwd, err)
	}

	types := jpa.BasicTypes(kind)
	resp := make([]output.BasicTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, output.BasicTypeResponse{
			TypeName:           t.TypeName,
			FullyQualifiedName: t.FullyQualifiedName(),
			IsPrimitive:        t.IsPrimitive(),
		})
	}
	return emit(cmd, name, cwd, resp)
}

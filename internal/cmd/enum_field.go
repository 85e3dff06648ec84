package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createJPAEnumFieldCmd adds an enum-typed persistent field to an
// entity file and writes the result back.
var createJPAEnumFieldCmd = &cobra.Command{
	Use:   "create-jpa-entity-enum-field",
	Short: "Add an enum field to an entity",
	RunE:  runCreateJPAEnumField,
}

var (
	enumFieldCwd        string
	enumFieldEntityPath string
	enumFieldEntityB64  string
	enumFieldName       string
	enumFieldType       string
	enumFieldTypePkg    string
	enumFieldStorage    string
	enumFieldLength     int
	enumFieldUnique     bool
	enumFieldNullable   bool
)

func init() {
	rootCmd.AddCommand(createJPAEnumFieldCmd)
	f := createJPAEnumFieldCmd.Flags()
	f.StringVar(&enumFieldCwd, "cwd", "", "Project working directory")
	f.StringVar(&enumFieldEntityPath, "entity-file-path", "", "Path to the entity file")
	f.StringVar(&enumFieldEntityB64, "entity-file-b64-src", "", "Base64-encoded entity source")
	f.StringVar(&enumFieldName, "field-name", "", "Name of the new field")
	f.StringVar(&enumFieldType, "enum-type", "", "Enum type of the field")
	f.StringVar(&enumFieldTypePkg, "enum-package-name", "", "Package of the enum type")
	f.StringVar(&enumFieldStorage, "enum-type-storage", "", "Persisted form (STRING|ORDINAL)")
	f.IntVar(&enumFieldLength, "field-length", 0, "Column length")
	f.BoolVar(&enumFieldUnique, "field-unique", false, "Add a unique constraint")
	f.BoolVar(&enumFieldNullable, "field-nullable", false, "Allow null values")
	createJPAEnumFieldCmd.MarkFlagRequired("cwd")
	createJPAEnumFieldCmd.MarkFlagRequired("entity-file-path")
	createJPAEnumFieldCmd.MarkFlagRequired("entity-file-b64-src")
	createJPAEnumFieldCmd.MarkFlagRequired("field-name")
	createJPAEnumFieldCmd.MarkFlagRequired("enum-type")
	createJPAEnumFieldCmd.MarkFlagRequired("enum-package-name")
	createJPAEnumFieldCmd.MarkFlagRequired("enum-type-storage")
}

func runCreateJPAEnumField(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-entity-enum-field"

	source, path, err := mutationInput(enumFieldCwd, enumFieldEntityPath, enumFieldEntityB64)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, enumFieldCwd, err)
	}

	cfg := jpa.EnumFieldConfig{
		FieldName:   enumFieldName,
		EnumType:    enumFieldType,
		EnumPackage: enumFieldTypePkg,
		Length:      enumFieldLength,
		Unique:      enumFieldUnique,
		Nullable:    enumFieldNullable,
	}
	cfg.Storage, err = jpa.ParseEnumStorage(enumFieldStorage)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, enumFieldCwd, err)
	}

	updated, err := gen.AddEnumField(source, cfg)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, enumFieldCwd, err)
	}
	if err := writeSourceFile(path, updated); err != nil {
		return emitError[output.FileResponse](cmd, name, enumFieldCwd, err)
	}

	verbosef("%s: added %s to %s", name, enumFieldName, path)
	return emit(cmd, name, enumFieldCwd, output.FileResponse{FilePath: path})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createJPABasicFieldCmd adds a plain persistent field to an entity
// file and writes the result back.
var createJPABasicFieldCmd = &cobra.Command{
	Use:   "create-jpa-entity-basic-field",
	Short: "Add a basic persistent field to an entity",
	RunE:  runCreateJPABasicField,
}

var (
	basicFieldCwd         string
	basicFieldEntityPath  string
	basicFieldEntityB64   string
	basicFieldName        string
	basicFieldType        string
	basicFieldTypePkg     string
	basicFieldLength      int
	basicFieldPrecision   int
	basicFieldScale       int
	basicFieldTemporal    string
	basicFieldTZStorage   string
	basicFieldUnique      bool
	basicFieldNullable    bool
	basicFieldLargeObject bool
)

func init() {
	rootCmd.AddCommand(createJPABasicFieldCmd)
	f := createJPABasicFieldCmd.Flags()
	f.StringVar(&basicFieldCwd, "cwd", "", "Project working directory")
	f.StringVar(&basicFieldEntityPath, "entity-file-path", "", "Path to the entity file")
	f.StringVar(&basicFieldEntityB64, "entity-file-b64-src", "", "Base64-encoded entity source")
	f.StringVar(&basicFieldName, "field-name", "", "Name of the new field")
	f.StringVar(&basicFieldType, "field-type", "", "Java type of the new field")
	f.StringVar(&basicFieldTypePkg, "field-type-package-name", "", "Package of the field type when not well-known")
	f.IntVar(&basicFieldLength, "field-length", 0, "Column length")
	f.IntVar(&basicFieldPrecision, "field-precision", 0, "Numeric precision")
	f.IntVar(&basicFieldScale, "field-scale", 0, "Numeric scale")
	f.StringVar(&basicFieldTemporal, "field-temporal", "", "Temporal mapping (DATE|TIME|TIMESTAMP)")
	f.StringVar(&basicFieldTZStorage, "field-timezone-storage", "", "Time zone storage strategy")
	f.BoolVar(&basicFieldUnique, "field-unique", false, "Add a unique constraint")
	f.BoolVar(&basicFieldNullable, "field-nullable", false, "Allow null values")
	f.BoolVar(&basicFieldLargeObject, "field-large-object", false, "Map as a large object")
	createJPABasicFieldCmd.MarkFlagRequired("cwd")
	createJPABasicFieldCmd.MarkFlagRequired("entity-file-path")
	createJPABasicFieldCmd.MarkFlagRequired("entity-file-b64-src")
	createJPABasicFieldCmd.MarkFlagRequired("field-name")
	createJPABasicFieldCmd.MarkFlagRequired("field-type")
}

func runCreateJPABasicField(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-entity-basic-field"

	source, path, err := mutationInput(basicFieldCwd, basicFieldEntityPath, basicFieldEntityB64)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, basicFieldCwd, err)
	}

	cfg := jpa.BasicFieldConfig{
		FieldName:   basicFieldName,
		FieldType:   basicFieldType,
		TypePackage: basicFieldTypePkg,
		Length:      basicFieldLength,
		Precision:   basicFieldPrecision,
		Scale:       basicFieldScale,
		Unique:      basicFieldUnique,
		Nullable:    basicFieldNullable,
		LargeObject: basicFieldLargeObject,
	}
	if basicFieldTemporal != "" {
		cfg.Temporal, err = jpa.ParseTemporal(basicFieldTemporal)
		if err != nil {
			return emitError[output.FileResponse](cmd, name, basicFieldCwd, err)
		}
	}
	if basicFieldTZStorage != "" {
		cfg.TimeZoneStorage, err = jpa.ParseTimeZoneStorage(basicFieldTZStorage)
		if err != nil {
			return emitError[output.FileResponse](cmd, name, basicFieldCwd, err)
		}
	}

	updated, err := gen.AddBasicField(source, cfg)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, basicFieldCwd, err)
	}
	if err := writeSourceFile(path, updated); err != nil {
		return emitError[output.FileResponse](cmd, name, basicFieldCwd, err)
	}

	verbosef("%s: added %s to %s", name, basicFieldName, path)
	return emit(cmd, name, basicFieldCwd, output.FileResponse{FilePath: path})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/config"
	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createJPAIDFieldCmd adds the identifier field to an entity file and
// writes the result back.
var createJPAIDFieldCmd = &cobra.Command{
	Use:   "create-jpa-entity-id-field",
	Short: "Add an identifier field to an entity",
	RunE:  runCreateJPAIDField,
}

var (
	idFieldCwd            string
	idFieldEntityPath     string
	idFieldEntityB64      string
	idFieldName           string
	idFieldType           string
	idFieldTypePkg        string
	idFieldGeneration     string
	idFieldGenerationType string
	idFieldGeneratorName  string
	idFieldSequenceName   string
	idFieldInitialValue   int64
	idFieldAllocationSize int
	idFieldNullable       bool
)

func init() {
	rootCmd.AddCommand(createJPAIDFieldCmd)
	f := createJPAIDFieldCmd.Flags()
	f.StringVar(&idFieldCwd, "cwd", "", "Project working directory")
	f.StringVar(&idFieldEntityPath, "entity-file-path", "", "Path to the entity file")
	f.StringVar(&idFieldEntityB64, "entity-file-b64-src", "", "Base64-encoded entity source")
	f.StringVar(&idFieldName, "field-name", "", "Name of the identifier field")
	f.StringVar(&idFieldType, "field-type", "", "Java type of the identifier")
	f.StringVar(&idFieldTypePkg, "field-type-package-name", "", "Package of the identifier type when not well-known")
	f.StringVar(&idFieldGeneration, "field-id-generation", "", "Value generation (none|generated-value)")
	f.StringVar(&idFieldGenerationType, "field-id-generation-type", "", "Generation strategy (auto|identity|sequence|table)")
	f.StringVar(&idFieldGeneratorName, "field-generator-name", "", "Name of the generator")
	f.StringVar(&idFieldSequenceName, "field-sequence-name", "", "Database sequence name")
	f.Int64Var(&idFieldInitialValue, "field-initial-value", jpa.DefaultInitialValue, "Sequence initial value")
	f.IntVar(&idFieldAllocationSize, "field-allocation-size", jpa.DefaultAllocationSize, "Sequence allocation size")
	f.BoolVar(&idFieldNullable, "field-nullable", false, "Allow null values")
	createJPAIDFieldCmd.MarkFlagRequired("cwd")
	createJPAIDFieldCmd.MarkFlagRequired("entity-file-path")
	createJPAIDFieldCmd.MarkFlagRequired("entity-file-b64-src")
	createJPAIDFieldCmd.MarkFlagRequired("field-name")
	createJPAIDFieldCmd.MarkFlagRequired("field-type")
	createJPAIDFieldCmd.MarkFlagRequired("field-id-generation")
	createJPAIDFieldCmd.MarkFlagRequired("field-id-generation-type")
}

func runCreateJPAIDField(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-entity-id-field"

	source, path, err := mutationInput(idFieldCwd, idFieldEntityPath, idFieldEntityB64)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, idFieldCwd, err)
	}

	// Flags left at the built-in defaults defer to the project's
	// generator configuration.
	projCfg, err := config.Load(idFieldCwd)
	if err != nil {
		verbosef("config: %v, using defaults", err)
		projCfg = config.DefaultConfig()
	}
	initialValue := idFieldInitialValue
	if initialValue == jpa.DefaultInitialValue {
		initialValue = projCfg.Generator.SequenceInitialValue
	}
	allocationSize := idFieldAllocationSize
	if allocationSize == jpa.DefaultAllocationSize {
		allocationSize = projCfg.Generator.SequenceAllocationSize
	}

	cfg := jpa.IDFieldConfig{
		FieldName:      idFieldName,
		FieldType:      idFieldType,
		TypePackage:    idFieldTypePkg,
		GeneratorName:  idFieldGeneratorName,
		SequenceName:   idFieldSequenceName,
		InitialValue:   initialValue,
		AllocationSize: allocationSize,
		Nullable:       idFieldNullable,
	}
	cfg.Generation, err = jpa.ParseIDGeneration(idFieldGeneration)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, idFieldCwd, err)
	}
	if idFieldGenerationType != "" {
		cfg.GenerationType, err = jpa.ParseGenerationType(idFieldGenerationType)
		if err != nil {
			return emitError[output.FileResponse](cmd, name, idFieldCwd, err)
		}
	}

	updated, err := gen.AddIDField(source, cfg)
	if err != nil {
		return emitError[output.FileResponse](cmd, name, idFieldCwd, err)
	}
	if err := writeSourceFile(path, updated); err != nil {
		return emitError[output.FileResponse](cmd, name, idFieldCwd, err)
	}

	verbosef("%s: added %s to %s", name, idFieldName, path)
	return emit(cmd, name, idFieldCwd, output.FileResponse{FilePath: path})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createOneToOneCmd adds a one-to-one association to the owning side's
// entity file. The inverse side's declaration is reported back as
// advisory text, never written to disk.
var createOneToOneCmd = &cobra.Command{
	Use:   "create-jpa-one-to-one-relationship",
	Short: "Add a one-to-one association to an entity",
	RunE:  runCreateOneToOne,
}

var (
	oneToOneCwd           string
	oneToOneOwningB64     string
	oneToOneOwningPath    string
	oneToOneOwningField   string
	oneToOneInverseField  string
	oneToOneInverseType   string
	oneToOneMapping       string
	oneToOneOwningCasc    []string
	oneToOneInverseCasc   []string
	oneToOneOwningOthers  []string
	oneToOneInverseOthers []string
)

func init() {
	rootCmd.AddCommand(createOneToOneCmd)
	f := createOneToOneCmd.Flags()
	f.StringVar(&oneToOneCwd, "cwd", "", "Project working directory")
	f.StringVar(&oneToOneOwningB64, "owning-side-entity-file-b64-src", "", "Base64-encoded owning-side source")
	f.StringVar(&oneToOneOwningPath, "owning-side-entity-file-path", "", "Path to the owning-side entity file")
	f.StringVar(&oneToOneOwningField, "owning-side-field-name", "", "Field name on the owning side")
	f.StringVar(&oneToOneInverseField, "inverse-side-field-name", "", "Field name on the inverse side")
	f.StringVar(&oneToOneInverseType, "inverse-field-type", "", "Entity type on the inverse side")
	f.StringVar(&oneToOneMapping, "mapping-type", "", "Association mapping (unidirectional|bidirectional)")
	f.StringSliceVar(&oneToOneOwningCasc, "owning-side-cascades", nil, "Cascade types on the owning side")
	f.StringSliceVar(&oneToOneInverseCasc, "inverse-side-cascades", nil, "Cascade types on the inverse side")
	f.StringSliceVar(&oneToOneOwningOthers, "owning-side-other", nil, "Extra modifiers on the owning side")
	f.StringSliceVar(&oneToOneInverseOthers, "inverse-side-other", nil, "Extra modifiers on the inverse side")
	createOneToOneCmd.MarkFlagRequired("cwd")
	createOneToOneCmd.MarkFlagRequired("owning-side-entity-file-b64-src")
	createOneToOneCmd.MarkFlagRequired("owning-side-entity-file-path")
	createOneToOneCmd.MarkFlagRequired("owning-side-field-name")
	createOneToOneCmd.MarkFlagRequired("inverse-side-field-name")
	createOneToOneCmd.MarkFlagRequired("inverse-field-type")
}

func runCreateOneToOne(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-one-to-one-relationship"

	source, path, err := mutationInput(oneToOneCwd, oneToOneOwningPath, oneToOneOwningB64)
	if err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}

	cfg := jpa.OneToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: oneToOneOwningField,
			FieldType: oneToOneInverseType,
		},
		Inverse: jpa.RelationshipSide{
			FieldName: oneToOneInverseField,
		},
	}
	if oneToOneMapping != "" {
		cfg.Mapping, err = jpa.ParseMappingType(oneToOneMapping)
		if err != nil {
			return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
		}
	}
	if cfg.Owning.Cascades, err = parseCascades(oneToOneOwningCasc); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}
	if cfg.Inverse.Cascades, err = parseCascades(oneToOneInverseCasc); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}
	if cfg.Owning.Other, err = parseOtherModifiers(oneToOneOwningOthers); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}
	if cfg.Inverse.Other, err = parseOtherModifiers(oneToOneInverseOthers); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}

	updated, inverse, err := gen.AddOneToOne(source, cfg)
	if err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}
	if err := writeSourceFile(path, updated); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, oneToOneCwd, err)
	}

	verbosef("%s: added %s to %s", name, oneToOneOwningField, path)
	resp := output.RelationshipResponse{
		File: output.FileResponse{FilePath: path},
	}
	if inverse.Text != "" {
		resp.InverseSide = &output.InverseAdvice{
			FieldDeclaration: inverse.Text,
			Imports:          inverse.Imports,
		}
	}
	return emit(cmd, name, oneToOneCwd, resp)
}

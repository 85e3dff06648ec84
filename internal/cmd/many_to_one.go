package cmd

import (
	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/gen"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/output"
)

// createManyToOneCmd adds a many-to-one association to the owning
// side's entity file. The inverse @OneToMany collection is reported
// back as advisory text, never written to disk.
var createManyToOneCmd = &cobra.Command{
	Use:   "create-jpa-many-to-one-relationship",
	Short: "Add a many-to-one association to an entity",
	RunE:  runCreateManyToOne,
}

var (
	manyToOneCwd           string
	manyToOneOwningB64     string
	manyToOneOwningPath    string
	manyToOneOwningField   string
	manyToOneInverseField  string
	manyToOneInverseType   string
	manyToOneMapping       string
	manyToOneFetch         string
	manyToOneCollection    string
	manyToOneOwningCasc    []string
	manyToOneInverseCasc   []string
	manyToOneOwningOthers  []string
	manyToOneInverseOthers []string
)

func init() {
	rootCmd.AddCommand(createManyToOneCmd)
	f := createManyToOneCmd.Flags()
	f.StringVar(&manyToOneCwd, "cwd", "", "Project working directory")
	f.StringVar(&manyToOneOwningB64, "owning-side-entity-file-b64-src", "", "Base64-encoded owning-side source")
	f.StringVar(&manyToOneOwningPath, "owning-side-entity-file-path", "", "Path to the owning-side entity file")
	f.StringVar(&manyToOneOwningField, "owning-side-field-name", "", "Field name on the owning side")
	f.StringVar(&manyToOneInverseField, "inverse-side-field-name", "", "Field name on the inverse side")
	f.StringVar(&manyToOneInverseType, "inverse-field-type", "", "Entity type on the inverse side")
	f.StringVar(&manyToOneMapping, "mapping-type", "", "Association mapping (unidirectional|bidirectional)")
	f.StringVar(&manyToOneFetch, "fetch-type", "", "Fetch strategy (LAZY|EAGER)")
	f.StringVar(&manyToOneCollection, "collection-type", "", "Inverse collection wrapper (LIST|SET|COLLECTION)")
	f.StringSliceVar(&manyToOneOwningCasc, "owning-side-cascades", nil, "Cascade types on the owning side")
	f.StringSliceVar(&manyToOneInverseCasc, "inverse-side-cascades", nil, "Cascade types on the inverse side")
	f.StringSliceVar(&manyToOneOwningOthers, "owning-side-other", nil, "Extra modifiers on the owning side")
	f.StringSliceVar(&manyToOneInverseOthers, "inverse-side-other", nil, "Extra modifiers on the inverse side")
	createManyToOneCmd.MarkFlagRequired("cwd")
	createManyToOneCmd.MarkFlagRequired("owning-side-entity-file-b64-src")
	createManyToOneCmd.MarkFlagRequired("owning-side-entity-file-path")
	createManyToOneCmd.MarkFlagRequired("owning-side-field-name")
	createManyToOneCmd.MarkFlagRequired("inverse-side-field-name")
	createManyToOneCmd.MarkFlagRequired("inverse-field-type")
	createManyToOneCmd.MarkFlagRequired("fetch-type")
	createManyToOneCmd.MarkFlagRequired("collection-type")
}

func runCreateManyToOne(cmd *cobra.Command, args []string) error {
	const name = "create-jpa-many-to-one-relationship"

	source, path, err := mutationInput(manyToOneCwd, manyToOneOwningPath, manyToOneOwningB64)
	if err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}

	cfg := jpa.ManyToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: manyToOneOwningField,
			FieldType: manyToOneInverseType,
		},
		Inverse: jpa.RelationshipSide{
			FieldName: manyToOneInverseField,
		},
	}
	if manyToOneMapping != "" {
		cfg.Mapping, err = jpa.ParseMappingType(manyToOneMapping)
		if err != nil {
			return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
		}
	}
	cfg.Fetch, err = jpa.ParseFetchType(manyToOneFetch)
	if err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}
	if manyToOneCollection != "" {
		cfg.Collection, err = jpa.ParseCollectionType(manyToOneCollection)
		if err != nil {
			return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
		}
	}
	if cfg.Owning.Cascades, err = parseCascades(manyToOneOwningCasc); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}
	if cfg.Inverse.Cascades, err = parseCascades(manyToOneInverseCasc); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}
	if cfg.Owning.Other, err = parseOtherModifiers(manyToOneOwningOthers); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}
	if cfg.Inverse.Other, err = parseOtherModifiers(manyToOneInverseOthers); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}

	updated, inverse, err := gen.AddManyToOne(source, cfg)
	if err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}
	if err := writeSourceFile(path, updated); err != nil {
		return emitError[output.RelationshipResponse](cmd, name, manyToOneCwd, err)
	}

	verbosef("%s: added %s to %s", name, manyToOneOwningField, path)
	resp := output.RelationshipResponse{
		File: output.FileResponse{FilePath: path},
	}
	if inverse.Text != "" {
		resp.InverseSide = &output.InverseAdvice{
			FieldDeclaration: inverse.Text,
			Imports:          inverse.Imports,
		}
	}
	return emit(cmd, name, manyToOneCwd, resp)
}

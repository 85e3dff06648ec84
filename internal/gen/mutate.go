package gen

import (
	"strings"

	"github.com/syntaxpresso/core/internal/edit"
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/parser"
	"github.com/syntaxpresso/core/internal/query"
)

// parseSource parses Java source bytes and rejects buffers with syntax
// errors. The caller must Close the returned result.
func parseSource(source []byte) (*parser.ParseResult, error) {
	p, err := parser.NewParser(parser.Java)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	result, err := p.Parse(source)
	if err != nil {
		return nil, err
	}
	if result.HasErrors() {
		result.Close()
		return nil, &parser.ParseError{Message: "source contains syntax errors"}
	}
	return result, nil
}

// applyFragment inserts a member fragment into the sole type
// declaration of the source, adding whichever of its imports the file
// does not already have. The result is a new buffer; the input is not
// modified.
func applyFragment(source []byte, frag Fragment, rejectName string) ([]byte, error) {
	result, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	a := query.New(result)
	decl, err := a.TypeDeclaration()
	if err != nil {
		return nil, err
	}
	if rejectName != "" && a.FieldNamed(decl, rejectName) != nil {
		return nil, &DuplicateMemberError{Member: rejectName}
	}

	fieldEdit, err := a.FieldEdit(decl, frag.Text)
	if err != nil {
		return nil, err
	}
	edits := []edit.TextEdit{fieldEdit}

	// All missing imports land at one insertion point, as one edit.
	pkg := a.PackageName()
	var statements []string
	for _, fqn := range frag.Imports {
		if samePackage(fqn, pkg) || a.HasImport(fqn) {
			continue
		}
		statements = append(statements, "import "+fqn+";")
	}
	if len(statements) > 0 {
		edits = append(edits, a.ImportEdit(strings.Join(statements, "\n")))
	}

	return edit.Apply(source, edits)
}

// declaredTypeName parses the source just enough to name its sole
// top-level type.
func declaredTypeName(source []byte) (string, error) {
	result, err := parseSource(source)
	if err != nil {
		return "", err
	}
	defer result.Close()

	a := query.New(result)
	decl, err := a.TypeDeclaration()
	if err != nil {
		return "", err
	}
	return a.Name(decl), nil
}

// samePackage reports whether a fully-qualified name lives in the
// given package and therefore needs no import.
func samePackage(fqn, pkg string) bool {
	if pkg == "" {
		return false
	}
	i := strings.LastIndex(fqn, ".")
	return i > 0 && fqn[:i] == pkg
}

// AddBasicField validates a basic-field request and returns the entity
// source with the new field and its imports inserted.
func AddBasicField(source []byte, cfg jpa.BasicFieldConfig) ([]byte, error) {
	if err := jpa.ValidateBasicField(cfg); err != nil {
		return nil, err
	}
	return applyFragment(source, BasicField(cfg), cfg.FieldName)
}

// AddIDField validates an id-field request against the entity and
// returns the source with the identifier field inserted. An entity
// that already declares an @Id field is rejected.
func AddIDField(source []byte, cfg jpa.IDFieldConfig) ([]byte, error) {
	result, err := parseSource(source)
	if err != nil {
		return nil, err
	}
	a := query.New(result)
	decl, err := a.TypeDeclaration()
	if err != nil {
		result.Close()
		return nil, err
	}
	entityName := a.Name(decl)
	if id := a.IdentifierField(decl); id != nil {
		name := a.FieldName(id)
		result.Close()
		return nil, &DuplicateMemberError{Member: name}
	}
	result.Close()

	validated, err := jpa.ValidateIDField(cfg, entityName)
	if err != nil {
		return nil, err
	}
	return applyFragment(source, IDField(validated), cfg.FieldName)
}

// AddEnumField validates an enum-field request and returns the entity
// source with the new field and its imports inserted.
func AddEnumField(source []byte, cfg jpa.EnumFieldConfig) ([]byte, error) {
	if err := jpa.ValidateEnumField(cfg); err != nil {
		return nil, err
	}
	return applyFragment(source, EnumField(cfg), cfg.FieldName)
}

// AddOneToOne validates a one-to-one request, mutates the owning-side
// source and returns it together with the advisory inverse-side
// fragment (empty for unidirectional mappings). Only the owning side
// is ever edited. The inverse side's field type is the owning entity
// itself, so an empty Inverse.FieldType is filled in from the source.
func AddOneToOne(source []byte, cfg jpa.OneToOneConfig) ([]byte, Fragment, error) {
	validated, err := jpa.ValidateOneToOne(cfg)
	if err != nil {
		return nil, Fragment{}, err
	}
	if validated.Mapping == jpa.MappingBidirectional && validated.Inverse.FieldType == "" {
		validated.Inverse.FieldType, err = declaredTypeName(source)
		if err != nil {
			return nil, Fragment{}, err
		}
	}
	owning, inverse := OneToOne(validated)
	out, err := applyFragment(source, owning, validated.Owning.FieldName)
	if err != nil {
		return nil, Fragment{}, err
	}
	return out, inverse, nil
}

// AddManyToOne validates a many-to-one request, mutates the
// owning-side source and returns it together with the advisory
// inverse-side fragment (empty for unidirectional mappings). The
// inverse collection's element type is the owning entity itself, so an
// empty Inverse.FieldType is filled in from the source.
func AddManyToOne(source []byte, cfg jpa.ManyToOneConfig) ([]byte, Fragment, error) {
	validated, err := jpa.ValidateManyToOne(cfg)
	if err != nil {
		return nil, Fragment{}, err
	}
	if validated.Mapping == jpa.MappingBidirectional && validated.Inverse.FieldType == "" {
		validated.Inverse.FieldType, err = declaredTypeName(source)
		if err != nil {
			return nil, Fragment{}, err
		}
	}
	owning, inverse := ManyToOne(validated)
	out, err := applyFragment(source, owning, validated.Owning.FieldName)
	if err != nil {
		return nil, Fragment{}, err
	}
	return out, inverse, nil
}

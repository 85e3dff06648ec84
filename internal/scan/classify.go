// Package scan walks Java source roots and classifies the types they
// declare: JPA entities, mapped superclasses and everything else.
// Classification is pure over source bytes; the walker fans file
// parsing out over a bounded worker pool and merges results in a
// deterministic order.
package scan

import (
	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/parser"
	"github.com/syntaxpresso/core/internal/query"
)

// Kind is the JPA classification of a declared type.
type Kind string

const (
	KindEntity           Kind = "ENTITY"
	KindMappedSuperclass Kind = "MAPPED_SUPERCLASS"
	KindOther            Kind = "OTHER"
)

// Descriptor describes one classified Java file.
type Descriptor struct {
	Path       string
	Package    string
	Name       string
	Kind       Kind
	TypeKind   jpa.FileType
	Superclass string
}

// FieldInfo is one persistent field of an entity.
type FieldInfo struct {
	Name string
	Type string
}

// EntityInfo is the full structural description of an entity file.
type EntityInfo struct {
	Package    string
	Name       string
	Superclass string
	ID         *FieldInfo
	Fields     []FieldInfo
}

// typeKindOf maps a declaration node kind to the catalog file type.
func typeKindOf(nodeType string) jpa.FileType {
	switch nodeType {
	case parser.NodeInterfaceDeclaration:
		return jpa.FileInterface
	case parser.NodeEnumDeclaration:
		return jpa.FileEnum
	case parser.NodeRecordDeclaration:
		return jpa.FileRecord
	case parser.NodeAnnotationTypeDeclaration:
		return jpa.FileAnnotation
	default:
		return jpa.FileClass
	}
}

// classify resolves the classification of an already-parsed file.
// Files without exactly one top-level type are classified as OTHER;
// they are never edit targets but still contribute their package.
func classify(a *query.Anchors, path string) Descriptor {
	d := Descriptor{
		Path:    path,
		Package: a.PackageName(),
		Kind:    KindOther,
	}

	decl, err := a.TypeDeclaration()
	if err != nil {
		return d
	}

	d.Name = a.Name(decl)
	d.TypeKind = typeKindOf(decl.Type())
	d.Superclass = a.SuperclassName(decl)

	switch {
	case a.AnnotationNamed(decl, "Entity") != nil:
		d.Kind = KindEntity
	case a.AnnotationNamed(decl, "MappedSuperclass") != nil:
		d.Kind = KindMappedSuperclass
	}
	return d
}

// ClassifySource classifies a single source buffer.
func ClassifySource(source []byte, path string) (Descriptor, error) {
	p, err := parser.NewParser(parser.Java)
	if err != nil {
		return Descriptor{}, err
	}
	defer p.Close()

	result, err := p.Parse(source)
	if err != nil {
		return Descriptor{}, err
	}
	defer result.Close()

	return classify(query.New(result), path), nil
}

// DescribeEntity extracts the structural description of an entity
// file: package, type name, superclass, the locally declared @Id field
// and every field declaration in order.
func DescribeEntity(source []byte) (EntityInfo, error) {
	p, err := parser.NewParser(parser.Java)
	if err != nil {
		return EntityInfo{}, err
	}
	defer p.Close()

	result, err := p.Parse(source)
	if err != nil {
		return EntityInfo{}, err
	}
	defer result.Close()

	a := query.New(result)
	decl, err := a.TypeDeclaration()
	if err != nil {
		return EntityInfo{}, err
	}

	info := EntityInfo{
		Package:    a.PackageName(),
		Name:       a.Name(decl),
		Superclass: a.SuperclassName(decl),
	}
	for _, field := range a.Fields(decl) {
		fi := FieldInfo{Name: a.FieldName(field), Type: a.FieldType(field)}
		info.Fields = append(info.Fields, fi)
		if info.ID == nil && a.AnnotationNamed(field, "Id") != nil {
			id := fi
			info.ID = &id
		}
	}
	return info, nil
}

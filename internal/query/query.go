// Package query locates structural anchors in parsed Java sources.
//
// An anchor is a structurally significant node — the package clause,
// the import block, the sole top-level type declaration, its field
// list, the annotations on a declaration. Every lookup returns
// zero-or-one node; absence is reported, not assumed fatal, and the
// caller decides what missing means. Anchors borrow from the parse
// result's tree and must not outlive it.
package query

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core/internal/parser"
)

// Anchors resolves structural anchors over a single parse result.
type Anchors struct {
	result *parser.ParseResult
}

// New creates an anchor resolver for the given parse result.
func New(result *parser.ParseResult) *Anchors {
	return &Anchors{result: result}
}

// Source returns the bytes the anchors are resolved against.
func (a *Anchors) Source() []byte {
	return a.result.Source
}

// Text returns the source text for a node.
func (a *Anchors) Text(node *sitter.Node) string {
	return a.result.NodeText(node)
}

// PackageClause returns the package declaration node, or nil for
// default-package files.
func (a *Anchors) PackageClause() *sitter.Node {
	return firstChildOfType(a.result.Root, parser.NodePackageDeclaration)
}

// PackageName returns the declared package name, or empty for
// default-package files.
func (a *Anchors) PackageName() string {
	pkg := a.PackageClause()
	if pkg == nil {
		return ""
	}
	for i := 0; i < int(pkg.NamedChildCount()); i++ {
		child := pkg.NamedChild(i)
		t := child.Type()
		if t == parser.NodeScopedIdentifier || t == parser.NodeIdentifier {
			return a.Text(child)
		}
	}
	return ""
}

// Imports returns the ordered import declarations of the file.
func (a *Anchors) Imports() []*sitter.Node {
	var imports []*sitter.Node
	root := a.result.Root
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == parser.NodeImportDeclaration {
			imports = append(imports, child)
		}
	}
	return imports
}

// ImportPath returns the dotted path of an import declaration,
// including a trailing .* for wildcard imports.
func (a *Anchors) ImportPath(imp *sitter.Node) string {
	var path string
	wildcard := false
	for i := 0; i < int(imp.ChildCount()); i++ {
		child := imp.Child(i)
		switch child.Type() {
		case parser.NodeScopedIdentifier, parser.NodeIdentifier:
			path = a.Text(child)
		case "asterisk":
			wildcard = true
		}
	}
	if wildcard && path != "" {
		path += ".*"
	}
	return path
}

// HasImport reports whether the file already imports the given
// fully-qualified name, either directly or through a wildcard import
// of its package.
func (a *Anchors) HasImport(fqn string) bool {
	pkg := ""
	if i := strings.LastIndex(fqn, "."); i > 0 {
		pkg = fqn[:i]
	}
	for _, imp := range a.Imports() {
		path := a.ImportPath(imp)
		if path == fqn {
			return true
		}
		if pkg != "" && path == pkg+".*" {
			return true
		}
	}
	return false
}

// TypeDeclarations returns all top-level type declarations.
func (a *Anchors) TypeDeclarations() []*sitter.Node {
	var decls []*sitter.Node
	root := a.result.Root
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if parser.IsTypeDeclaration(child) {
			decls = append(decls, child)
		}
	}
	return decls
}

// TypeDeclaration returns the file's single top-level type
// declaration. Zero or more than one is an AnchorNotFoundError: the
// edit target would be ambiguous.
func (a *Anchors) TypeDeclaration() (*sitter.Node, error) {
	decls := a.TypeDeclarations()
	if len(decls) != 1 {
		return nil, &AnchorNotFoundError{Anchor: "type declaration", Count: len(decls)}
	}
	return decls[0], nil
}

// Name returns the identifier of a type, field, or method declaration.
func (a *Anchors) Name(decl *sitter.Node) string {
	name := decl.ChildByFieldName("name")
	if name == nil {
		return ""
	}
	return a.Text(name)
}

// SuperclassName returns the simple name of the declared superclass,
// or empty if the type extends nothing.
func (a *Anchors) SuperclassName(decl *sitter.Node) string {
	super := decl.ChildByFieldName("superclass")
	if super == nil {
		return ""
	}
	if t := firstChildOfType(super, "type_identifier"); t != nil {
		return a.Text(t)
	}
	return ""
}

// Body returns the body node of a type declaration, or nil.
func (a *Anchors) Body(decl *sitter.Node) *sitter.Node {
	return decl.ChildByFieldName("body")
}

// Fields returns the ordered field declarations of a type's body.
func (a *Anchors) Fields(decl *sitter.Node) []*sitter.Node {
	body := a.Body(decl)
	if body == nil {
		return nil
	}
	return childrenOfType(body, parser.NodeFieldDeclaration)
}

// FieldName returns the name of the first declarator of a field
// declaration.
func (a *Anchors) FieldName(field *sitter.Node) string {
	decl := firstChildOfType(field, parser.NodeVariableDeclarator)
	if decl == nil {
		return ""
	}
	return a.Name(decl)
}

// FieldType returns the declared type of a field declaration.
func (a *Anchors) FieldType(field *sitter.Node) string {
	t := field.ChildByFieldName("type")
	if t == nil {
		return ""
	}
	return a.Text(t)
}

// FieldNamed returns the field declaration with the given name, or nil.
func (a *Anchors) FieldNamed(decl *sitter.Node, name string) *sitter.Node {
	for _, field := range a.Fields(decl) {
		if a.FieldName(field) == name {
			return field
		}
	}
	return nil
}

// Annotations returns the annotation nodes attached to a declaration,
// in source order.
func (a *Anchors) Annotations(decl *sitter.Node) []*sitter.Node {
	var annotations []*sitter.Node
	mods := firstChildOfType(decl, parser.NodeModifiers)
	if mods == nil {
		return nil
	}
	for i := 0; i < int(mods.ChildCount()); i++ {
		child := mods.Child(i)
		t := child.Type()
		if t == parser.NodeMarkerAnnotation || t == parser.NodeAnnotation {
			annotations = append(annotations, child)
		}
	}
	return annotations
}

// AnnotationName returns the simple name of an annotation node,
// without the @.
func (a *Anchors) AnnotationName(annotation *sitter.Node) string {
	if name := annotation.ChildByFieldName("name"); name != nil {
		return a.Text(name)
	}
	if id := firstChildOfType(annotation, parser.NodeIdentifier); id != nil {
		return a.Text(id)
	}
	return ""
}

// AnnotationNamed returns the annotation with the given simple name
// attached to a declaration, or nil.
func (a *Anchors) AnnotationNamed(decl *sitter.Node, name string) *sitter.Node {
	for _, annotation := range a.Annotations(decl) {
		if a.AnnotationName(annotation) == name {
			return annotation
		}
	}
	return nil
}

// IdentifierField returns the field declaration annotated with @Id, or
// nil if the type declares none locally.
func (a *Anchors) IdentifierField(decl *sitter.Node) *sitter.Node {
	for _, field := range a.Fields(decl) {
		if a.AnnotationNamed(field, "Id") != nil {
			return field
		}
	}
	return nil
}

// firstChildOfType returns the first child with the given node kind.
func firstChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// childrenOfType returns all children with the given node kind.
func childrenOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	if node == nil {
		return nil
	}
	var out []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == nodeType {
			out = append(out, child)
		}
	}
	return out
}

package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// newJavaParser creates a tree-sitter parser configured for Java.
func newJavaParser() (*sitter.Parser, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return parser, nil
}

// Java node kinds used throughout anchor resolution.
const (
	NodePackageDeclaration        = "package_declaration"
	NodeImportDeclaration         = "import_declaration"
	NodeClassDeclaration          = "class_declaration"
	NodeInterfaceDeclaration      = "interface_declaration"
	NodeEnumDeclaration           = "enum_declaration"
	NodeRecordDeclaration         = "record_declaration"
	NodeAnnotationTypeDeclaration = "annotation_type_declaration"
	NodeFieldDeclaration          = "field_declaration"
	NodeClassBody                 = "class_body"
	NodeModifiers                 = "modifiers"
	NodeMarkerAnnotation          = "marker_annotation"
	NodeAnnotation                = "annotation"
	NodeVariableDeclarator        = "variable_declarator"
	NodeScopedIdentifier          = "scoped_identifier"
	NodeIdentifier                = "identifier"
)

// typeDeclarationKinds lists the node kinds that introduce a top-level
// Java type.
var typeDeclarationKinds = map[string]bool{
	NodeClassDeclaration:          true,
	NodeInterfaceDeclaration:      true,
	NodeEnumDeclaration:           true,
	NodeRecordDeclaration:         true,
	NodeAnnotationTypeDeclaration: true,
}

// IsTypeDeclaration checks if a node introduces a Java type declaration.
func IsTypeDeclaration(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	return typeDeclarationKinds[node.Type()]
}

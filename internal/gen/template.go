package gen

import (
	"fmt"
	"strings"

	"github.com/syntaxpresso/core/internal/jpa"
)

// NewFileContent renders a fresh Java file declaring one empty
// top-level type. The type name is converted to PascalCase.
func NewFileContent(packageName, typeName string, kind jpa.FileType) string {
	name := PascalCase(typeName)

	var decl string
	switch kind {
	case jpa.FileInterface:
		decl = "public interface " + name
	case jpa.FileEnum:
		decl = "public enum " + name
	case jpa.FileRecord:
		decl = "public record " + name + "()"
	case jpa.FileAnnotation:
		decl = "public @interface " + name
	default:
		decl = "public class " + name
	}

	var b strings.Builder
	if packageName != "" {
		fmt.Fprintf(&b, "package %s;\n\n", packageName)
	}
	fmt.Fprintf(&b, "%s {\n\n}\n", decl)
	return b.String()
}

// EntityFileContent renders a fresh JPA entity file: @Entity plus a
// @Table with a pluralized snake_case name, optionally extending a
// superclass.
func EntityFileContent(packageName, typeName, superclassName, superclassPackage string) string {
	name := PascalCase(typeName)

	var b strings.Builder
	if packageName != "" {
		fmt.Fprintf(&b, "package %s;\n\n", packageName)
	}

	b.WriteString("import jakarta.persistence.Entity;\n")
	b.WriteString("import jakarta.persistence.Table;\n")
	if superclassName != "" && superclassPackage != "" && superclassPackage != packageName {
		fmt.Fprintf(&b, "import %s.%s;\n", superclassPackage, superclassName)
	}
	b.WriteString("\n")

	b.WriteString("@Entity\n")
	fmt.Fprintf(&b, "@Table(name = %q)\n", TableName(name))
	fmt.Fprintf(&b, "public class %s", name)
	if superclassName != "" {
		fmt.Fprintf(&b, " extends %s", superclassName)
	}
	b.WriteString(" {\n\n}\n")
	return b.String()
}

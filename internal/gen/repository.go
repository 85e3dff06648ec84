package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/syntaxpresso/core/internal/query"
)

// RepositoryFile is a synthesized Spring Data repository interface.
type RepositoryFile struct {
	Name    string
	Package string
	Content string
}

// entityID is the resolved identifier of an entity: the declared field
// type plus the import it needs, if any.
type entityID struct {
	TypeName string
	Import   string
}

// idFromAnchors finds the @Id field of the sole type declaration and
// resolves the import its type needs, preferring the file's own import
// block over the basic-type catalog.
func idFromAnchors(a *query.Anchors) (entityID, bool) {
	decl, err := a.TypeDeclaration()
	if err != nil {
		return entityID{}, false
	}
	field := a.IdentifierField(decl)
	if field == nil {
		return entityID{}, false
	}

	typeName := a.FieldType(field)
	id := entityID{TypeName: typeName}
	for _, imp := range a.Imports() {
		path := a.ImportPath(imp)
		if strings.HasSuffix(path, "."+typeName) {
			id.Import = path
			return id, true
		}
	}
	id.Import = typeImport(typeName, "")
	return id, true
}

// Repository synthesizes a Spring Data JpaRepository interface for the
// given entity source. The identifier type is resolved from the
// entity's own @Id field first, then from the optional superclass
// source; if neither declares one, a MissingIdentifierError is
// returned. An empty repoPackage defaults to the entity's package.
func Repository(entitySource, superclassSource []byte, repoPackage string) (RepositoryFile, error) {
	result, err := parseSource(entitySource)
	if err != nil {
		return RepositoryFile{}, err
	}
	defer result.Close()

	a := query.New(result)
	decl, err := a.TypeDeclaration()
	if err != nil {
		return RepositoryFile{}, err
	}
	entityName := a.Name(decl)
	entityPackage := a.PackageName()

	id, ok := idFromAnchors(a)
	if !ok && superclassSource != nil {
		superResult, err := parseSource(superclassSource)
		if err != nil {
			return RepositoryFile{}, err
		}
		id, ok = idFromAnchors(query.New(superResult))
		superResult.Close()
	}
	if !ok {
		return RepositoryFile{}, &MissingIdentifierError{Entity: entityName}
	}

	if repoPackage == "" {
		repoPackage = entityPackage
	}
	name := entityName + "Repository"

	imports := []string{
		"org.springframework.data.jpa.repository.JpaRepository",
		"org.springframework.stereotype.Repository",
	}
	if entityPackage != "" && entityPackage != repoPackage {
		imports = append(imports, entityPackage+"."+entityName)
	}
	if id.Import != "" && !samePackage(id.Import, repoPackage) {
		imports = append(imports, id.Import)
	}
	sort.Strings(imports)

	var b strings.Builder
	if repoPackage != "" {
		fmt.Fprintf(&b, "package %s;\n\n", repoPackage)
	}
	for _, imp := range imports {
		fmt.Fprintf(&b, "import %s;\n", imp)
	}
	b.WriteString("\n@Repository\n")
	fmt.Fprintf(&b, "public interface %s extends JpaRepository<%s, %s> {}\n",
		name, entityName, id.TypeName)

	return RepositoryFile{Name: name, Package: repoPackage, Content: b.String()}, nil
}

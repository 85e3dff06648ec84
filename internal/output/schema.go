package output

// FileResponse describes a file a command created or edited.
type FileResponse struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType,omitempty"`
}

// TypeResponse describes one declared Java type.
type TypeResponse struct {
	PackageName string `json:"packageName"`
	TypeName    string `json:"typeName"`
	FilePath    string `json:"filePath"`
}

// TypesResponse lists declared types, for the entity and mapped
// superclass queries.
type TypesResponse struct {
	Types      []TypeResponse `json:"types"`
	TypesCount int            `json:"typesCount"`
}

// FilesResponse lists files declaring a requested kind of type.
type FilesResponse struct {
	Files      []FileResponse `json:"files"`
	FilesCount int            `json:"filesCount"`
}

// PackagesResponse lists the packages under a source root.
type PackagesResponse struct {
	Packages        []string `json:"packages"`
	PackagesCount   int      `json:"packagesCount"`
	RootPackageName string   `json:"rootPackageName,omitempty"`
}

// BasicTypeResponse is one entry of the basic-type catalog.
type BasicTypeResponse struct {
	TypeName           string `json:"typeName"`
	FullyQualifiedName string `json:"fullyQualifiedName"`
	IsPrimitive        bool   `json:"isPrimitive"`
}

// FieldResponse describes one field of an entity.
type FieldResponse struct {
	FieldName string `json:"fieldName"`
	FieldType string `json:"fieldType"`
}

// EntityInfoResponse is the structural description of an entity file.
type EntityInfoResponse struct {
	PackageName    string          `json:"packageName"`
	TypeName       string          `json:"typeName"`
	SuperclassName string          `json:"superclassName,omitempty"`
	IDField        *FieldResponse  `json:"idField,omitempty"`
	Fields         []FieldResponse `json:"fields"`
}

// RepositoryResponse reports repository synthesis, including where the
// identifier was found.
type RepositoryResponse struct {
	IDFieldFound   bool          `json:"idFieldFound"`
	SuperclassType string        `json:"superclassType,omitempty"`
	Repository     *FileResponse `json:"repository,omitempty"`
}

// InverseAdvice is the advisory inverse-side fragment of a
// relationship command. The owning side is edited; this is what the
// other file would need.
type InverseAdvice struct {
	FieldDeclaration string   `json:"fieldDeclaration"`
	Imports          []string `json:"imports,omitempty"`
}

// RelationshipResponse reports an owning-side relationship edit.
type RelationshipResponse struct {
	File        FileResponse   `json:"file"`
	InverseSide *InverseAdvice `json:"inverseSide,omitempty"`
}

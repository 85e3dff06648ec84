package jpa

// BasicFieldConfig describes a plain persistent field to add to an
// entity.
type BasicFieldConfig struct {
	FieldName string
	FieldType string
	// TypePackage is the owning package of FieldType when it is not in
	// the basic-type catalog.
	TypePackage string

	Length    int
	Precision int
	Scale     int

	Temporal        Temporal
	TimeZoneStorage TimeZoneStorage

	Unique      bool
	Nullable    bool
	LargeObject bool
}

// IDFieldConfig describes an identifier field to add to an entity.
type IDFieldConfig struct {
	FieldName   string
	FieldType   string
	TypePackage string

	Generation     IDGeneration
	GenerationType GenerationType

	GeneratorName  string
	SequenceName   string
	InitialValue   int64
	AllocationSize int

	Nullable bool
}

// EnumFieldConfig describes an enum-typed persistent field.
type EnumFieldConfig struct {
	FieldName   string
	EnumType    string
	EnumPackage string
	Storage     EnumStorage

	Length   int
	Unique   bool
	Nullable bool
}

// RelationshipSide carries the per-side attributes of an association.
type RelationshipSide struct {
	FieldName string
	FieldType string
	Cascades  []CascadeType
	Other     []OtherModifier
}

// OneToOneConfig describes a one-to-one association. Only the owning
// side's file is mutated; the inverse side is advisory metadata.
type OneToOneConfig struct {
	Owning  RelationshipSide
	Inverse RelationshipSide
	Mapping MappingType
}

// ManyToOneConfig describes a many-to-one association from the owning
// side's perspective. Collection describes the inverse side's wrapper
// type for reporting.
type ManyToOneConfig struct {
	Owning     RelationshipSide
	Inverse    RelationshipSide
	Mapping    MappingType
	Fetch      FetchType
	Collection CollectionType
}

// Package jpa defines the closed catalog of JPA generation options and
// the validity rules for combining them.
//
// Every configurable aspect of entity/field/relationship generation is a
// closed enumeration with a case-insensitive parser. Combination rules
// live in validate.go so that a new legal combination is an addition to
// one table, not a change scattered through the synthesizer.
package jpa

import (
	"fmt"
	"strings"
)

// CascadeType is a JPA cascade operation.
type CascadeType string

const (
	CascadeAll     CascadeType = "ALL"
	CascadePersist CascadeType = "PERSIST"
	CascadeMerge   CascadeType = "MERGE"
	CascadeRemove  CascadeType = "REMOVE"
	CascadeRefresh CascadeType = "REFRESH"
	CascadeDetach  CascadeType = "DETACH"
)

// FetchType is a JPA association fetch strategy.
type FetchType string

const (
	FetchEager FetchType = "EAGER"
	FetchLazy  FetchType = "LAZY"
)

// MappingType is the direction of a relationship mapping.
type MappingType string

const (
	MappingUnidirectional MappingType = "UNIDIRECTIONAL"
	MappingBidirectional  MappingType = "BIDIRECTIONAL"
)

// CollectionType is the wrapper used for the inverse side of a
// many-to-one association.
type CollectionType string

const (
	CollectionList       CollectionType = "LIST"
	CollectionSet        CollectionType = "SET"
	CollectionCollection CollectionType = "COLLECTION"
)

// EnumStorage is how an enum field is stored in its column.
type EnumStorage string

const (
	EnumOrdinal EnumStorage = "ORDINAL"
	EnumString  EnumStorage = "STRING"
)

// Temporal is the precision of a temporal column.
type Temporal string

const (
	TemporalDate      Temporal = "DATE"
	TemporalTime      Temporal = "TIME"
	TemporalTimestamp Temporal = "TIMESTAMP"
)

// TimeZoneStorage is the timezone storage mode for offset-carrying
// temporal types.
type TimeZoneStorage string

const (
	TimeZoneNative       TimeZoneStorage = "NATIVE"
	TimeZoneNormalize    TimeZoneStorage = "NORMALIZE"
	TimeZoneNormalizeUTC TimeZoneStorage = "NORMALIZE_UTC"
	TimeZoneColumn       TimeZoneStorage = "COLUMN"
	TimeZoneAuto         TimeZoneStorage = "AUTO"
)

// IDGeneration says whether an identifier value is generated at all.
type IDGeneration string

const (
	IDGenerationNone           IDGeneration = "NONE"
	IDGenerationGeneratedValue IDGeneration = "GENERATED_VALUE"
)

// GenerationType is the JPA identifier generation strategy.
type GenerationType string

const (
	GenerationAuto     GenerationType = "AUTO"
	GenerationIdentity GenerationType = "IDENTITY"
	GenerationSequence GenerationType = "SEQUENCE"
	GenerationTable    GenerationType = "TABLE"
)

// OtherModifier is an orthogonal association modifier that does not fit
// the cascade/fetch/mapping axes.
type OtherModifier string

const (
	OtherOrphanRemoval OtherModifier = "ORPHAN_REMOVAL"
	OtherOptional      OtherModifier = "OPTIONAL"
	OtherUnique        OtherModifier = "UNIQUE"
)

// FileType is the kind of top-level Java type a new file declares.
type FileType string

const (
	FileClass      FileType = "CLASS"
	FileInterface  FileType = "INTERFACE"
	FileEnum       FileType = "ENUM"
	FileRecord     FileType = "RECORD"
	FileAnnotation FileType = "ANNOTATION"
)

// SourceDir selects a Maven/Gradle source set.
type SourceDir string

const (
	SourceMain SourceDir = "MAIN"
	SourceTest SourceDir = "TEST"
)

// Path returns the source-root path relative to a project root.
func (s SourceDir) Path() string {
	if s == SourceTest {
		return "src/test/java"
	}
	return "src/main/java"
}

// normalize folds a flag value to the canonical enum spelling.
func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}

// parse resolves a free-form string against a set of legal values.
func parse[T ~string](kind, s string, legal ...T) (T, error) {
	n := normalize(s)
	for _, v := range legal {
		if n == string(v) {
			return v, nil
		}
	}
	var zero T
	return zero, &InvalidConfigurationError{
		Reason: fmt.Sprintf("unknown %s %q", kind, s),
	}
}

// ParseCascadeType parses a cascade operation name, case-insensitively.
func ParseCascadeType(s string) (CascadeType, error) {
	return parse("cascade type", s,
		CascadeAll, CascadePersist, CascadeMerge, CascadeRemove, CascadeRefresh, CascadeDetach)
}

// ParseFetchType parses a fetch strategy name.
func ParseFetchType(s string) (FetchType, error) {
	return parse("fetch type", s, FetchEager, FetchLazy)
}

// ParseMappingType parses a mapping direction name.
func ParseMappingType(s string) (MappingType, error) {
	return parse("mapping type", s, MappingUnidirectional, MappingBidirectional)
}

// ParseCollectionType parses a collection wrapper name.
func ParseCollectionType(s string) (CollectionType, error) {
	return parse("collection type", s, CollectionList, CollectionSet, CollectionCollection)
}

// ParseEnumStorage parses an enum storage mode name.
func ParseEnumStorage(s string) (EnumStorage, error) {
	return parse("enum storage", s, EnumOrdinal, EnumString)
}

// ParseTemporal parses a temporal precision name.
func ParseTemporal(s string) (Temporal, error) {
	return parse("temporal precision", s, TemporalDate, TemporalTime, TemporalTimestamp)
}

// ParseTimeZoneStorage parses a timezone storage mode name.
func ParseTimeZoneStorage(s string) (TimeZoneStorage, error) {
	return parse("timezone storage", s,
		TimeZoneNative, TimeZoneNormalize, TimeZoneNormalizeUTC, TimeZoneColumn, TimeZoneAuto)
}

// ParseIDGeneration parses an identifier generation mode name.
func ParseIDGeneration(s string) (IDGeneration, error) {
	return parse("id generation", s, IDGenerationNone, IDGenerationGeneratedValue)
}

// ParseGenerationType parses an identifier generation strategy name.
func ParseGenerationType(s string) (GenerationType, error) {
	return parse("id generation type", s,
		GenerationAuto, GenerationIdentity, GenerationSequence, GenerationTable)
}

// ParseOtherModifier parses an orthogonal association modifier name.
func ParseOtherModifier(s string) (OtherModifier, error) {
	return parse("association modifier", s, OtherOrphanRemoval, OtherOptional, OtherUnique)
}

// ParseFileType parses a Java file kind name.
func ParseFileType(s string) (FileType, error) {
	return parse("file type", s, FileClass, FileInterface, FileEnum, FileRecord, FileAnnotation)
}

// ParseSourceDir parses a source-set selector name.
func ParseSourceDir(s string) (SourceDir, error) {
	return parse("source directory", s, SourceMain, SourceTest)
}

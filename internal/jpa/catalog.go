package jpa

import "strings"

// BasicType is an entry in the catalog of Java types usable as entity
// field types without project-local imports. Primitives carry an empty
// package name.
type BasicType struct {
	TypeName string
	Package  string
}

// FullyQualifiedName returns package.Type, or just the type name for
// primitives.
func (t BasicType) FullyQualifiedName() string {
	if t.Package == "" {
		return t.TypeName
	}
	return t.Package + "." + t.TypeName
}

// IsPrimitive reports whether the type is a Java primitive (or a
// primitive array).
func (t BasicType) IsPrimitive() bool {
	return t.Package == ""
}

// NeedsImport reports whether using the type requires an import
// statement. java.lang is always in scope.
func (t BasicType) NeedsImport() bool {
	return t.Package != "" && t.Package != "java.lang"
}

// basicTypes is the closed catalog of well-known Java field types.
var basicTypes = []BasicType{
	{"String", "java.lang"},
	{"Long", "java.lang"},
	{"Integer", "java.lang"},
	{"Boolean", "java.lang"},
	{"Double", "java.lang"},
	{"Byte[]", "java.lang"},
	{"Byte", "java.lang"},
	{"Character", "java.lang"},
	{"Short", "java.lang"},
	{"Float", "java.lang"},
	{"Character[]", "java.lang"},
	{"BigDecimal", "java.math"},
	{"BigInteger", "java.math"},
	{"Instant", "java.time"},
	{"LocalDateTime", "java.time"},
	{"LocalDate", "java.time"},
	{"LocalTime", "java.time"},
	{"OffsetDateTime", "java.time"},
	{"OffsetTime", "java.time"},
	{"Duration", "java.time"},
	{"ZonedDateTime", "java.time"},
	{"ZoneOffset", "java.time"},
	{"Date", "java.util"},
	{"TimeZone", "java.util"},
	{"Calendar", "java.util"},
	{"Locale", "java.util"},
	{"Currency", "java.util"},
	{"UUID", "java.util"},
	{"Date", "java.sql"},
	{"Time", "java.sql"},
	{"Timestamp", "java.sql"},
	{"Blob", "java.sql"},
	{"Clob", "java.sql"},
	{"NClob", "java.sql"},
	{"URL", "java.net"},
	{"InetAddress", "java.net"},
	{"boolean", ""},
	{"byte", ""},
	{"float", ""},
	{"char", ""},
	{"int", ""},
	{"double", ""},
	{"short", ""},
	{"long", ""},
	{"byte[]", ""},
	{"char[]", ""},
}

// BasicTypeQuery selects a slice of the basic-type catalog.
type BasicTypeQuery string

const (
	BasicTypesAll      BasicTypeQuery = "ALL_TYPES"
	BasicTypesID       BasicTypeQuery = "ID_TYPES"
	BasicTypesNumeric  BasicTypeQuery = "NUMERIC_TYPES"
	BasicTypesTemporal BasicTypeQuery = "TEMPORAL_TYPES"
	BasicTypesText     BasicTypeQuery = "TEXT_TYPES"
	BasicTypesBinary   BasicTypeQuery = "BINARY_TYPES"
)

// ParseBasicTypeQuery parses a basic-type query kind name.
func ParseBasicTypeQuery(s string) (BasicTypeQuery, error) {
	return parse("basic type kind", s,
		BasicTypesAll, BasicTypesID, BasicTypesNumeric, BasicTypesTemporal,
		BasicTypesText, BasicTypesBinary)
}

// recommendedIDTypeNames lists the types suitable for identifier fields.
var recommendedIDTypeNames = map[string]bool{
	"int": true, "Integer": true,
	"long": true, "Long": true,
	"short": true, "Short": true,
	"byte": true, "Byte": true,
	"BigInteger": true,
	"String":     true,
	"UUID":       true,
	"char":       true, "Character": true,
}

var numericTypeNames = map[string]bool{
	"int": true, "Integer": true,
	"long": true, "Long": true,
	"short": true, "Short": true,
	"byte": true, "Byte": true,
	"float": true, "Float": true,
	"double": true, "Double": true,
	"BigInteger": true, "BigDecimal": true,
}

var textTypeNames = map[string]bool{
	"String": true, "char": true, "Character": true,
	"char[]": true, "Character[]": true, "Clob": true, "NClob": true,
}

var binaryTypeNames = map[string]bool{
	"byte[]": true, "Byte[]": true, "Blob": true,
}

// BasicTypes returns the catalog entries selected by the query kind.
func BasicTypes(kind BasicTypeQuery) []BasicType {
	var pred func(BasicType) bool
	switch kind {
	case BasicTypesID:
		pred = func(t BasicType) bool { return recommendedIDTypeNames[t.TypeName] }
	case BasicTypesNumeric:
		pred = func(t BasicType) bool { return numericTypeNames[t.TypeName] }
	case BasicTypesTemporal:
		pred = func(t BasicType) bool {
			return t.Package == "java.time" ||
				(t.Package == "java.sql" && t.TypeName != "Blob" && t.TypeName != "Clob" && t.TypeName != "NClob") ||
				(t.Package == "java.util" && (t.TypeName == "Date" || t.TypeName == "Calendar" || t.TypeName == "TimeZone"))
		}
	case BasicTypesText:
		pred = func(t BasicType) bool { return textTypeNames[t.TypeName] }
	case BasicTypesBinary:
		pred = func(t BasicType) bool { return binaryTypeNames[t.TypeName] }
	default:
		pred = func(BasicType) bool { return true }
	}

	var out []BasicType
	for _, t := range basicTypes {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// LookupBasicType finds a catalog entry by its simple type name.
// When a name appears in more than one package (java.util.Date and
// java.sql.Date) the first catalog entry wins.
func LookupBasicType(typeName string) (BasicType, bool) {
	for _, t := range basicTypes {
		if t.TypeName == typeName {
			return t, true
		}
	}
	return BasicType{}, false
}

// PackageFor returns the package a simple type name resolves to in the
// catalog, or empty for primitives and unknown types.
func PackageFor(typeName string) string {
	t, ok := LookupBasicType(typeName)
	if !ok {
		return ""
	}
	return t.Package
}

// IsTemporalType reports whether a field type accepts the @Temporal
// annotation. Only the legacy java.util / java.sql date types do.
func IsTemporalType(typeName string) bool {
	switch typeName {
	case "Date", "Calendar", "Time", "Timestamp":
		return true
	}
	return false
}

// IsOffsetType reports whether a field type carries a timezone offset
// and accepts a timezone storage mode.
func IsOffsetType(typeName string) bool {
	return strings.HasPrefix(typeName, "Offset") || typeName == "ZonedDateTime"
}

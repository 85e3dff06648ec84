package gen

import (
	"fmt"

	"github.com/syntaxpresso/core/internal/jpa"
)

// typeImport resolves the import a field type needs: the explicit
// package when given, otherwise the basic-type catalog. java.lang and
// primitives need none.
func typeImport(typeName, typePackage string) string {
	if typePackage != "" {
		if typePackage == "java.lang" {
			return ""
		}
		return typePackage + "." + typeName
	}
	if t, ok := jpa.LookupBasicType(typeName); ok && t.NeedsImport() {
		return t.FullyQualifiedName()
	}
	return ""
}

// columnAttrs renders the shared @Column attribute list.
func columnAttrs(name string, length, precision, scale int, nullable, unique bool) []string {
	attrs := []string{fmt.Sprintf("name = %q", name)}
	if length > 0 {
		attrs = append(attrs, fmt.Sprintf("length = %d", length))
	}
	if precision > 0 {
		attrs = append(attrs, fmt.Sprintf("precision = %d", precision))
	}
	if scale > 0 {
		attrs = append(attrs, fmt.Sprintf("scale = %d", scale))
	}
	if !nullable {
		attrs = append(attrs, "nullable = false")
	}
	if unique {
		attrs = append(attrs, "unique = true")
	}
	return attrs
}

// BasicField synthesizes an annotated plain persistent field. The
// config must have passed jpa.ValidateBasicField.
func BasicField(cfg jpa.BasicFieldConfig) Fragment {
	b := newFragmentBuilder()

	b.needs("jakarta.persistence.Column")
	b.needs(typeImport(cfg.FieldType, cfg.TypePackage))

	attrs := columnAttrs(SnakeCase(cfg.FieldName), cfg.Length, cfg.Precision, cfg.Scale, cfg.Nullable, cfg.Unique)
	b.line("@Column%s", annotationAttrs(attrs))

	if cfg.LargeObject {
		b.needs("jakarta.persistence.Lob")
		b.line("@Lob")
	}
	if cfg.Temporal != "" {
		b.needs("jakarta.persistence.Temporal")
		b.needs("jakarta.persistence.TemporalType")
		b.line("@Temporal(TemporalType.%s)", cfg.Temporal)
	}
	if cfg.TimeZoneStorage != "" {
		b.needs("org.hibernate.annotations.TimeZoneStorage")
		b.needs("org.hibernate.annotations.TimeZoneStorageType")
		b.line("@TimeZoneStorage(TimeZoneStorageType.%s)", cfg.TimeZoneStorage)
	}

	b.line("private %s %s;", cfg.FieldType, cfg.FieldName)
	return b.build()
}

// IDField synthesizes an annotated identifier field. The config must
// have passed jpa.ValidateIDField, which fills generator defaults.
func IDField(cfg jpa.IDFieldConfig) Fragment {
	b := newFragmentBuilder()

	b.needs("jakarta.persistence.Id")
	b.needs("jakarta.persistence.Column")
	b.needs(typeImport(cfg.FieldType, cfg.TypePackage))
	b.line("@Id")

	if cfg.Generation == jpa.IDGenerationGeneratedValue {
		b.needs("jakarta.persistence.GeneratedValue")
		b.needs("jakarta.persistence.GenerationType")

		attrs := []string{fmt.Sprintf("strategy = GenerationType.%s", cfg.GenerationType)}
		if cfg.GeneratorName != "" {
			attrs = append(attrs, fmt.Sprintf("generator = %q", cfg.GeneratorName))
		}
		b.line("@GeneratedValue%s", annotationAttrs(attrs))

		switch cfg.GenerationType {
		case jpa.GenerationSequence:
			b.needs("jakarta.persistence.SequenceGenerator")
			attrs := []string{
				fmt.Sprintf("name = %q", cfg.GeneratorName),
				fmt.Sprintf("sequenceName = %q", cfg.SequenceName),
			}
			if cfg.InitialValue != jpa.DefaultInitialValue {
				attrs = append(attrs, fmt.Sprintf("initialValue = %d", cfg.InitialValue))
			}
			if cfg.AllocationSize != jpa.DefaultAllocationSize {
				attrs = append(attrs, fmt.Sprintf("allocationSize = %d", cfg.AllocationSize))
			}
			b.line("@SequenceGenerator%s", annotationAttrs(attrs))
		case jpa.GenerationTable:
			b.needs("jakarta.persistence.TableGenerator")
			b.line("@TableGenerator(name = %q)", cfg.GeneratorName)
		}
	}

	attrs := columnAttrs(SnakeCase(cfg.FieldName), 0, 0, 0, cfg.Nullable, false)
	b.line("@Column%s", annotationAttrs(attrs))
	b.line("private %s %s;", cfg.FieldType, cfg.FieldName)
	return b.build()
}

// EnumField synthesizes an annotated enum-typed field. The config must
// have passed jpa.ValidateEnumField.
func EnumField(cfg jpa.EnumFieldConfig) Fragment {
	b := newFragmentBuilder()

	b.needs("jakarta.persistence.Enumerated")
	b.needs("jakarta.persistence.EnumType")
	b.needs("jakarta.persistence.Column")
	if cfg.EnumPackage != "" {
		b.needs(cfg.EnumPackage + "." + cfg.EnumType)
	}

	b.line("@Enumerated(EnumType.%s)", cfg.Storage)
	attrs := columnAttrs(SnakeCase(cfg.FieldName), cfg.Length, 0, 0, cfg.Nullable, cfg.Unique)
	b.line("@Column%s", annotationAttrs(attrs))
	b.line("private %s %s;", cfg.EnumType, cfg.FieldName)
	return b.build()
}

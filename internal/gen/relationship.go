package gen

import (
	"fmt"
	"strings"

	"github.com/syntaxpresso/core/internal/jpa"
)

// cascadeAttr renders a cascade attribute: a single operation stays
// bare, several are wrapped in braces.
func cascadeAttr(cascades []jpa.CascadeType) string {
	if len(cascades) == 0 {
		return ""
	}
	parts := make([]string, len(cascades))
	for i, c := range cascades {
		parts[i] = "CascadeType." + string(c)
	}
	if len(parts) == 1 {
		return "cascade = " + parts[0]
	}
	return "cascade = {" + strings.Join(parts, ", ") + "}"
}

func hasModifier(mods []jpa.OtherModifier, m jpa.OtherModifier) bool {
	for _, v := range mods {
		if v == m {
			return true
		}
	}
	return false
}

// sideAttrs renders the modifier attributes shared by association
// annotations. The modifiers are explicit switches: each one present
// is rendered, absent ones fall back to the JPA defaults.
func sideAttrs(side jpa.RelationshipSide, b *fragmentBuilder) []string {
	var attrs []string
	if c := cascadeAttr(side.Cascades); c != "" {
		b.needs("jakarta.persistence.CascadeType")
		attrs = append(attrs, c)
	}
	if hasModifier(side.Other, jpa.OtherOptional) {
		attrs = append(attrs, "optional = true")
	}
	if hasModifier(side.Other, jpa.OtherOrphanRemoval) {
		attrs = append(attrs, "orphanRemoval = true")
	}
	return attrs
}

// OneToOne synthesizes the owning-side fragment of a one-to-one
// association, plus an advisory inverse-side fragment for
// bidirectional mappings. Only the owning fragment is meant to be
// applied; the inverse one describes what the other file would need.
// The config must have passed jpa.ValidateOneToOne.
func OneToOne(cfg jpa.OneToOneConfig) (owning Fragment, inverse Fragment) {
	b := newFragmentBuilder()
	b.needs("jakarta.persistence.OneToOne")
	b.needs("jakarta.persistence.JoinColumn")

	b.line("@OneToOne%s", annotationAttrs(sideAttrs(cfg.Owning, b)))

	joinAttrs := []string{fmt.Sprintf("name = %q", JoinColumnName(cfg.Owning.FieldName))}
	if hasModifier(cfg.Owning.Other, jpa.OtherUnique) {
		joinAttrs = append(joinAttrs, "unique = true")
	}
	b.line("@JoinColumn%s", annotationAttrs(joinAttrs))
	b.line("private %s %s;", cfg.Owning.FieldType, cfg.Owning.FieldName)
	owning = b.build()

	if cfg.Mapping != jpa.MappingBidirectional {
		return owning, Fragment{}
	}

	ib := newFragmentBuilder()
	ib.needs("jakarta.persistence.OneToOne")
	attrs := []string{fmt.Sprintf("mappedBy = %q", cfg.Owning.FieldName)}
	attrs = append(attrs, sideAttrs(cfg.Inverse, ib)...)
	ib.line("@OneToOne%s", annotationAttrs(attrs))
	ib.line("private %s %s;", cfg.Inverse.FieldType, cfg.Inverse.FieldName)
	return owning, ib.build()
}

// collectionWrapper maps a collection kind to its interface and
// implementation types plus their imports.
func collectionWrapper(kind jpa.CollectionType) (iface, impl string, imports []string) {
	switch kind {
	case jpa.CollectionSet:
		return "Set", "LinkedHashSet", []string{"java.util.Set", "java.util.LinkedHashSet"}
	case jpa.CollectionCollection:
		return "Collection", "ArrayList", []string{"java.util.Collection", "java.util.ArrayList"}
	default:
		return "List", "ArrayList", []string{"java.util.List", "java.util.ArrayList"}
	}
}

// ManyToOne synthesizes the owning-side fragment of a many-to-one
// association, plus an advisory @OneToMany inverse-side fragment for
// bidirectional mappings. The config must have passed
// jpa.ValidateManyToOne.
func ManyToOne(cfg jpa.ManyToOneConfig) (owning Fragment, inverse Fragment) {
	b := newFragmentBuilder()
	b.needs("jakarta.persistence.ManyToOne")
	b.needs("jakarta.persistence.JoinColumn")
	b.needs("jakarta.persistence.FetchType")

	attrs := []string{fmt.Sprintf("fetch = FetchType.%s", cfg.Fetch)}
	attrs = append(attrs, sideAttrs(cfg.Owning, b)...)
	b.line("@ManyToOne%s", annotationAttrs(attrs))

	joinAttrs := []string{fmt.Sprintf("name = %q", JoinColumnName(cfg.Owning.FieldName))}
	if hasModifier(cfg.Owning.Other, jpa.OtherUnique) {
		joinAttrs = append(joinAttrs, "unique = true")
	}
	b.line("@JoinColumn%s", annotationAttrs(joinAttrs))
	b.line("private %s %s;", cfg.Owning.FieldType, cfg.Owning.FieldName)
	owning = b.build()

	if cfg.Mapping != jpa.MappingBidirectional {
		return owning, Fragment{}
	}

	ib := newFragmentBuilder()
	ib.needs("jakarta.persistence.OneToMany")
	iface, impl, imports := collectionWrapper(cfg.Collection)
	for _, imp := range imports {
		ib.needs(imp)
	}

	attrs = []string{fmt.Sprintf("mappedBy = %q", cfg.Owning.FieldName)}
	attrs = append(attrs, sideAttrs(cfg.Inverse, ib)...)
	ib.line("@OneToMany%s", annotationAttrs(attrs))
	ib.line("private %s<%s> %s = new %s<>();",
		iface, cfg.Inverse.FieldType, cfg.Inverse.FieldName, impl)
	return owning, ib.build()
}

package jpa

import (
	"fmt"

	"github.com/go-openapi/inflect"
)

// InvalidConfigurationError reports an illegal combination of catalog
// values in a generation request.
type InvalidConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

func invalidf(format string, args ...any) error {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// DefaultAllocationSize is the sequence allocation size used when the
// request does not supply one.
const DefaultAllocationSize = 50

// DefaultInitialValue is the sequence initial value used when the
// request does not supply one.
const DefaultInitialValue = 1

// ValidateIDField checks the strategy/generation-type combination and
// fills in documented defaults. The returned config is a normalized
// copy; the input is not modified.
//
// Rules:
//   - AUTO and IDENTITY permit neither a generator name nor a sequence
//     name.
//   - SEQUENCE defaults the sequence name to <entity>_seq when absent
//     and fills initial value and allocation size defaults.
//   - TABLE requires a generator name.
//   - With generation NONE, no generator attributes may be set.
func ValidateIDField(cfg IDFieldConfig, entityName string) (IDFieldConfig, error) {
	out := cfg

	if cfg.FieldName == "" {
		return out, invalidf("id field name is required")
	}
	if cfg.FieldType == "" {
		return out, invalidf("id field type is required")
	}

	if cfg.Generation == IDGenerationNone || cfg.Generation == "" {
		if cfg.GeneratorName != "" || cfg.SequenceName != "" {
			return out, invalidf("generator attributes require generated-value id generation")
		}
		out.Generation = IDGenerationNone
		return out, nil
	}

	switch cfg.GenerationType {
	case GenerationAuto, GenerationIdentity:
		if cfg.SequenceName != "" {
			return out, invalidf("%s generation does not accept a sequence name", cfg.GenerationType)
		}
		if cfg.GeneratorName != "" {
			return out, invalidf("%s generation does not accept a generator name", cfg.GenerationType)
		}
	case GenerationSequence:
		if out.SequenceName == "" {
			out.SequenceName = inflect.Underscore(entityName) + "_seq"
		}
		if out.GeneratorName == "" {
			out.GeneratorName = out.SequenceName
		}
		if out.InitialValue == 0 {
			out.InitialValue = DefaultInitialValue
		}
		if out.AllocationSize == 0 {
			out.AllocationSize = DefaultAllocationSize
		}
	case GenerationTable:
		if cfg.GeneratorName == "" {
			return out, invalidf("TABLE generation requires a generator name")
		}
		if cfg.SequenceName != "" {
			return out, invalidf("TABLE generation does not accept a sequence name")
		}
	default:
		return out, invalidf("unknown id generation type %q", cfg.GenerationType)
	}

	return out, nil
}

// ValidateBasicField checks attribute combinations for a basic field.
//
// Rules:
//   - precision/scale only apply to BigDecimal-shaped numeric columns;
//     scale without precision is rejected.
//   - @Temporal only applies to the legacy java.util / java.sql date
//     types.
//   - timezone storage only applies to offset-carrying java.time types.
func ValidateBasicField(cfg BasicFieldConfig) error {
	if cfg.FieldName == "" {
		return invalidf("field name is required")
	}
	if cfg.FieldType == "" {
		return invalidf("field type is required")
	}
	if cfg.Scale > 0 && cfg.Precision == 0 {
		return invalidf("scale requires precision")
	}
	if cfg.Temporal != "" && !IsTemporalType(cfg.FieldType) {
		return invalidf("temporal precision does not apply to type %s", cfg.FieldType)
	}
	if cfg.TimeZoneStorage != "" && !IsOffsetType(cfg.FieldType) {
		return invalidf("timezone storage does not apply to type %s", cfg.FieldType)
	}
	return nil
}

// ValidateEnumField checks an enum field request.
func ValidateEnumField(cfg EnumFieldConfig) error {
	if cfg.FieldName == "" {
		return invalidf("field name is required")
	}
	if cfg.EnumType == "" {
		return invalidf("enum type is required")
	}
	if cfg.EnumPackage == "" {
		return invalidf("enum package is required")
	}
	if cfg.Storage == "" {
		return invalidf("enum storage mode is required")
	}
	if cfg.Length > 0 && cfg.Storage != EnumString {
		return invalidf("length only applies to string-stored enums")
	}
	return nil
}

// NormalizeCascades de-duplicates a cascade set, preserving first-seen
// order. ALL subsumes every other operation, so a set containing ALL
// collapses to ALL alone.
func NormalizeCascades(cascades []CascadeType) []CascadeType {
	seen := make(map[CascadeType]bool, len(cascades))
	var out []CascadeType
	for _, c := range cascades {
		if c == CascadeAll {
			return []CascadeType{CascadeAll}
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// ValidateOneToOne checks a one-to-one association request and
// normalizes both cascade sets.
func ValidateOneToOne(cfg OneToOneConfig) (OneToOneConfig, error) {
	out := cfg
	if cfg.Owning.FieldName == "" || cfg.Owning.FieldType == "" {
		return out, invalidf("owning side field name and type are required")
	}
	if cfg.Mapping == MappingBidirectional && cfg.Inverse.FieldName == "" {
		return out, invalidf("bidirectional mapping requires an inverse side field name")
	}
	out.Owning.Cascades = NormalizeCascades(cfg.Owning.Cascades)
	out.Inverse.Cascades = NormalizeCascades(cfg.Inverse.Cascades)
	if out.Mapping == "" {
		out.Mapping = MappingUnidirectional
	}
	return out, nil
}

// ValidateManyToOne checks a many-to-one association request. A fetch
// strategy is mandatory for many-to-one.
func ValidateManyToOne(cfg ManyToOneConfig) (ManyToOneConfig, error) {
	out := cfg
	if cfg.Owning.FieldName == "" || cfg.Owning.FieldType == "" {
		return out, invalidf("owning side field name and type are required")
	}
	if cfg.Fetch == "" {
		return out, invalidf("many-to-one requires a fetch strategy")
	}
	if cfg.Mapping == MappingBidirectional && cfg.Inverse.FieldName == "" {
		return out, invalidf("bidirectional mapping requires an inverse side field name")
	}
	out.Owning.Cascades = NormalizeCascades(cfg.Owning.Cascades)
	out.Inverse.Cascades = NormalizeCascades(cfg.Inverse.Cascades)
	if out.Mapping == "" {
		out.Mapping = MappingUnidirectional
	}
	if out.Collection == "" {
		out.Collection = CollectionList
	}
	return out, nil
}

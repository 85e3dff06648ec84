package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core/internal/jpa"
	"github.com/syntaxpresso/core/internal/query"
)

const customerEntity = `package com.acme.model;

import jakarta.persistence.Column;
import jakarta.persistence.Entity;
import jakarta.persistence.Id;

@Entity
public class Customer {
    @Id
    @Column(name = "id", nullable = false)
    private Long id;
}
`

func TestAddBasicField(t *testing.T) {
	out, err := AddBasicField([]byte(customerEntity), jpa.BasicFieldConfig{
		FieldName: "email",
		FieldType: "String",
		Nullable:  true,
		Unique:    true,
	})
	require.NoError(t, err)

	want := `package com.acme.model;

import jakarta.persistence.Column;
import jakarta.persistence.Entity;
import jakarta.persistence.Id;

@Entity
public class Customer {
    @Id
    @Column(name = "id", nullable = false)
    private Long id;

    @Column(name = "email", unique = true)
    private String email;
}
`
	assert.Equal(t, want, string(out))
}

func TestAddBasicFieldInsertsMissingImports(t *testing.T) {
	source := `package com.acme.model;

import jakarta.persistence.Entity;

@Entity
public class Invoice {
    private Long id;
}
`
	out, err := AddBasicField([]byte(source), jpa.BasicFieldConfig{
		FieldName: "total",
		FieldType: "BigDecimal",
		Precision: 10,
		Scale:     2,
		Nullable:  true,
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "import jakarta.persistence.Entity;\nimport jakarta.persistence.Column;\nimport java.math.BigDecimal;\n")
	assert.Contains(t, got, "    @Column(name = \"total\", precision = 10, scale = 2)\n    private BigDecimal total;")
}

func TestAddBasicFieldDuplicateRejected(t *testing.T) {
	_, err := AddBasicField([]byte(customerEntity), jpa.BasicFieldConfig{
		FieldName: "id",
		FieldType: "String",
		Nullable:  true,
	})
	var dup *DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "id", dup.Member)
}

func TestAddBasicFieldRejectsAmbiguousFile(t *testing.T) {
	source := "class A {}\nclass B {}\n"
	_, err := AddBasicField([]byte(source), jpa.BasicFieldConfig{
		FieldName: "name",
		FieldType: "String",
		Nullable:  true,
	})
	var notFound *query.AnchorNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAddBasicFieldRejectsBrokenSource(t *testing.T) {
	_, err := AddBasicField([]byte("class Broken {"), jpa.BasicFieldConfig{
		FieldName: "name",
		FieldType: "String",
		Nullable:  true,
	})
	require.Error(t, err)
}

func TestAddIDField(t *testing.T) {
	source := `package com.acme.model;

import jakarta.persistence.Entity;

@Entity
public class Order {
}
`
	out, err := AddIDField([]byte(source), jpa.IDFieldConfig{
		FieldName:      "id",
		FieldType:      "Long",
		Generation:     jpa.IDGenerationGeneratedValue,
		GenerationType: jpa.GenerationSequence,
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "@GeneratedValue(strategy = GenerationType.SEQUENCE, generator = \"order_seq\")")
	assert.Contains(t, got, "@SequenceGenerator(name = \"order_seq\", sequenceName = \"order_seq\")")
	assert.Contains(t, got, "import jakarta.persistence.Id;")
	assert.Contains(t, got, "    private Long id;\n}")
}

func TestAddIDFieldRejectsSecondIdentifier(t *testing.T) {
	_, err := AddIDField([]byte(customerEntity), jpa.IDFieldConfig{
		FieldName:  "uuid",
		FieldType:  "UUID",
		Generation: jpa.IDGenerationNone,
	})
	var dup *DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "id", dup.Member)
}

func TestAddEnumField(t *testing.T) {
	out, err := AddEnumField([]byte(customerEntity), jpa.EnumFieldConfig{
		FieldName:   "status",
		EnumType:    "Status",
		EnumPackage: "com.acme.model",
		Storage:     jpa.EnumString,
		Nullable:    true,
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "@Enumerated(EnumType.STRING)")
	// Same package as the entity, no import needed.
	assert.NotContains(t, got, "import com.acme.model.Status;")
	assert.Contains(t, got, "import jakarta.persistence.Enumerated;")
}

func TestAddOneToOneUnidirectional(t *testing.T) {
	out, inverse, err := AddOneToOne([]byte(customerEntity), jpa.OneToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: "profile",
			FieldType: "Profile",
			Cascades:  []jpa.CascadeType{jpa.CascadeAll},
			Other:     []jpa.OtherModifier{jpa.OtherUnique},
		},
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "@OneToOne(cascade = CascadeType.ALL)")
	assert.Contains(t, got, "@JoinColumn(name = \"profile_id\", unique = true)")
	assert.Contains(t, got, "private Profile profile;")
	assert.Empty(t, inverse.Text, "unidirectional mapping has no inverse fragment")
}

func TestAddOneToOneBidirectionalInverseAdvisory(t *testing.T) {
	before := customerEntity
	out, inverse, err := AddOneToOne([]byte(before), jpa.OneToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: "profile",
			FieldType: "Profile",
		},
		Inverse: jpa.RelationshipSide{
			FieldName: "customer",
			FieldType: "Customer",
		},
		Mapping: jpa.MappingBidirectional,
	})
	require.NoError(t, err)

	// Only the owning side is edited; the inverse fragment is advice.
	assert.NotContains(t, string(out), "mappedBy")
	assert.Equal(t, "@OneToOne(mappedBy = \"profile\")\nprivate Customer customer;", inverse.Text)
}

func TestAddManyToOne(t *testing.T) {
	source := `package com.acme.model;

import jakarta.persistence.Entity;

@Entity
public class Order {
    private Long id;
}
`
	out, inverse, err := AddManyToOne([]byte(source), jpa.ManyToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: "customer",
			FieldType: "Customer",
			Cascades:  []jpa.CascadeType{jpa.CascadePersist, jpa.CascadeMerge},
		},
		Inverse: jpa.RelationshipSide{
			FieldName: "orders",
			FieldType: "Order",
		},
		Mapping:    jpa.MappingBidirectional,
		Fetch:      jpa.FetchLazy,
		Collection: jpa.CollectionSet,
	})
	require.NoError(t, err)

	got := string(out)
	assert.Contains(t, got, "@ManyToOne(fetch = FetchType.LAZY, cascade = {CascadeType.PERSIST, CascadeType.MERGE})")
	assert.Contains(t, got, "@JoinColumn(name = \"customer_id\")")
	assert.Contains(t, got, "import jakarta.persistence.FetchType;")

	assert.Equal(t,
		"@OneToMany(mappedBy = \"customer\")\nprivate Set<Order> orders = new LinkedHashSet<>();",
		inverse.Text)
	assert.Contains(t, inverse.Imports, "java.util.LinkedHashSet")
}

func TestAddOneToOneBidirectionalDefaultsInverseType(t *testing.T) {
	// The CLI never supplies the inverse field's type: it is the owning
	// entity's own class and must come from the source.
	_, inverse, err := AddOneToOne([]byte(customerEntity), jpa.OneToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: "profile",
			FieldType: "Profile",
		},
		Inverse: jpa.RelationshipSide{FieldName: "customer"},
		Mapping: jpa.MappingBidirectional,
	})
	require.NoError(t, err)

	assert.Equal(t, "@OneToOne(mappedBy = \"profile\")\nprivate Customer customer;", inverse.Text)
}

func TestAddManyToOneBidirectionalDefaultsInverseType(t *testing.T) {
	source := `package com.acme.model;

import jakarta.persistence.Entity;

@Entity
public class Order {
    private Long id;
}
`
	_, inverse, err := AddManyToOne([]byte(source), jpa.ManyToOneConfig{
		Owning: jpa.RelationshipSide{
			FieldName: "customer",
			FieldType: "Customer",
		},
		Inverse:    jpa.RelationshipSide{FieldName: "orders"},
		Mapping:    jpa.MappingBidirectional,
		Fetch:      jpa.FetchLazy,
		Collection: jpa.CollectionSet,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"@OneToMany(mappedBy = \"customer\")\nprivate Set<Order> orders = new LinkedHashSet<>();",
		inverse.Text)
}

func TestAddManyToOneRequiresFetch(t *testing.T) {
	_, _, err := AddManyToOne([]byte(customerEntity), jpa.ManyToOneConfig{
		Owning: jpa.RelationshipSide{FieldName: "customer", FieldType: "Customer"},
	})
	var invalid *jpa.InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
}

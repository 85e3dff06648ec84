package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntaxpresso/core/internal/jpa"
)

func TestBasicFieldFragment(t *testing.T) {
	frag := BasicField(jpa.BasicFieldConfig{
		FieldName: "email",
		FieldType: "String",
		Nullable:  true,
		Unique:    true,
	})

	assert.Equal(t, "@Column(name = \"email\", unique = true)\nprivate String email;", frag.Text)
	assert.Equal(t, []string{"jakarta.persistence.Column"}, frag.Imports)
}

func TestBasicFieldFragmentCatalogImport(t *testing.T) {
	frag := BasicField(jpa.BasicFieldConfig{
		FieldName: "total",
		FieldType: "BigDecimal",
		Precision: 10,
		Scale:     2,
		Nullable:  true,
	})

	assert.Equal(t, "@Column(name = \"total\", precision = 10, scale = 2)\nprivate BigDecimal total;", frag.Text)
	assert.Contains(t, frag.Imports, "java.math.BigDecimal")
}

func TestBasicFieldFragmentTemporal(t *testing.T) {
	frag := BasicField(jpa.BasicFieldConfig{
		FieldName: "createdAt",
		FieldType: "Date",
		Temporal:  jpa.TemporalTimestamp,
		Nullable:  true,
	})

	assert.Contains(t, frag.Text, "@Temporal(TemporalType.TIMESTAMP)")
	assert.Contains(t, frag.Text, "@Column(name = \"created_at\")")
	assert.Contains(t, frag.Imports, "jakarta.persistence.Temporal")
	assert.Contains(t, frag.Imports, "jakarta.persistence.TemporalType")
	assert.Contains(t, frag.Imports, "java.util.Date")
}

func TestBasicFieldFragmentTimeZoneStorage(t *testing.T) {
	frag := BasicField(jpa.BasicFieldConfig{
		FieldName:       "occurredAt",
		FieldType:       "OffsetDateTime",
		TimeZoneStorage: jpa.TimeZoneNormalizeUTC,
		Nullable:        true,
	})

	assert.Contains(t, frag.Text, "@TimeZoneStorage(TimeZoneStorageType.NORMALIZE_UTC)")
	assert.Contains(t, frag.Imports, "org.hibernate.annotations.TimeZoneStorage")
	assert.Contains(t, frag.Imports, "java.time.OffsetDateTime")
}

func TestIDFieldFragmentSequence(t *testing.T) {
	cfg, err := jpa.ValidateIDField(jpa.IDFieldConfig{
		FieldName:      "id",
		FieldType:      "Long",
		Generation:     jpa.IDGenerationGeneratedValue,
		GenerationType: jpa.GenerationSequence,
	}, "Customer")
	require.NoError(t, err)

	frag := IDField(cfg)
	assert.Equal(t,
		"@Id\n"+
			"@GeneratedValue(strategy = GenerationType.SEQUENCE, generator = \"customer_seq\")\n"+
			"@SequenceGenerator(name = \"customer_seq\", sequenceName = \"customer_seq\")\n"+
			"@Column(name = \"id\", nullable = false)\n"+
			"private Long id;",
		frag.Text)
	assert.Contains(t, frag.Imports, "jakarta.persistence.SequenceGenerator")
	assert.NotContains(t, frag.Imports, "java.lang.Long")
}

func TestIDFieldFragmentIdentity(t *testing.T) {
	cfg, err := jpa.ValidateIDField(jpa.IDFieldConfig{
		FieldName:      "id",
		FieldType:      "Long",
		Generation:     jpa.IDGenerationGeneratedValue,
		GenerationType: jpa.GenerationIdentity,
	}, "Customer")
	require.NoError(t, err)

	frag := IDField(cfg)
	assert.Contains(t, frag.Text, "@GeneratedValue(strategy = GenerationType.IDENTITY)")
	assert.NotContains(t, frag.Text, "@SequenceGenerator")
}

func TestIDFieldFragmentNone(t *testing.T) {
	cfg, err := jpa.ValidateIDField(jpa.IDFieldConfig{
		FieldName:  "id",
		FieldType:  "UUID",
		Generation: jpa.IDGenerationNone,
	}, "Customer")
	require.NoError(t, err)

	frag := IDField(cfg)
	assert.NotContains(t, frag.Text, "@GeneratedValue")
	assert.Contains(t, frag.Imports, "java.util.UUID")
}

func TestEnumFieldFragment(t *testing.T) {
	frag := EnumField(jpa.EnumFieldConfig{
		FieldName:   "status",
		EnumType:    "OrderStatus",
		EnumPackage: "com.acme.model",
		Storage:     jpa.EnumString,
		Length:      20,
		Nullable:    true,
	})

	assert.Equal(t,
		"@Enumerated(EnumType.STRING)\n"+
			"@Column(name = \"status\", length = 20)\n"+
			"private OrderStatus status;",
		frag.Text)
	assert.Contains(t, frag.Imports, "com.acme.model.OrderStatus")
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "UserProfile", PascalCase("user_profile"))
	assert.Equal(t, "created_at", SnakeCase("createdAt"))
	assert.Equal(t, "order_items", TableName("OrderItem"))
	assert.Equal(t, "customer_id", JoinColumnName("customer"))
	assert.Equal(t, "parent_order_id", JoinColumnName("parentOrder"))
}

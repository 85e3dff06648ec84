// Package gen synthesizes Java source fragments and files for JPA
// scaffolding: annotated field declarations, repository interfaces and
// new-file templates. Fragments are plain text plus the imports they
// require; placing them into a file is the caller's job.
package gen

import "github.com/go-openapi/inflect"

// PascalCase converts a name to PascalCase for type and file names.
func PascalCase(s string) string {
	return inflect.Camelize(s)
}

// SnakeCase converts a name to snake_case for column names.
func SnakeCase(s string) string {
	return inflect.Underscore(s)
}

// TableName derives the table name for an entity type: pluralized
// snake_case ("OrderItem" -> "order_items").
func TableName(typeName string) string {
	return inflect.Pluralize(inflect.Underscore(typeName))
}

// JoinColumnName derives the join column name for an association
// field: snake_case plus an _id suffix ("customer" -> "customer_id").
func JoinColumnName(fieldName string) string {
	return inflect.Underscore(fieldName) + "_id"
}

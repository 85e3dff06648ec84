package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/syntaxpresso/core/internal/cache"
	"github.com/syntaxpresso/core/internal/jpa"
)

// envelope mirrors the wire shape for decoding in tests.
type envelope struct {
	Command     string          `json:"command"`
	Cwd         string          `json:"cwd"`
	Success     bool            `json:"success"`
	Data        json.RawMessage `json:"data"`
	ErrorReason string          `json:"errorReason"`
}

func runCaptured(t *testing.T, run func(*cobra.Command, []string) error) envelope {
	t.Helper()
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	if err := run(c, nil); err != nil {
		t.Fatalf("command returned error: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(buf.Bytes(), &env); err != nil {
		t.Fatalf("output is not a JSON envelope: %v\n%s", err, buf.String())
	}
	return env
}

func TestGetJavaBasicTypes(t *testing.T) {
	basicTypeKind = "id-types"
	env := runCaptured(t, runGetJavaBasicTypes)

	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}
	if env.Cwd != "N/A" {
		t.Errorf("cwd = %q, want N/A", env.Cwd)
	}

	var types []struct {
		TypeName           string `json:"typeName"`
		FullyQualifiedName string `json:"fullyQualifiedName"`
	}
	if err := json.Unmarshal(env.Data, &types); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(types) == 0 {
		t.Fatal("expected at least one id type")
	}
	found := false
	for _, bt := range types {
		if bt.TypeName == "UUID" {
			found = true
			if bt.FullyQualifiedName != "java.util.UUID" {
				t.Errorf("UUID fqn = %q", bt.FullyQualifiedName)
			}
		}
	}
	if !found {
		t.Error("UUID missing from id types")
	}
}

func TestGetJavaBasicTypesRejectsUnknownKind(t *testing.T) {
	basicTypeKind = "bogus"
	env := runCaptured(t, runGetJavaBasicTypes)

	if env.Success {
		t.Fatal("expected failure envelope")
	}
	if env.ErrorReason == "" {
		t.Error("expected an error reason")
	}
}

func TestCreateJavaFile(t *testing.T) {
	dir := t.TempDir()
	createFileCwd = dir
	createFilePackage = "com.example.app"
	createFileName = "orderService"
	createFileType = "class"
	createFileSourceDir = "main"

	env := runCaptured(t, runCreateJavaFile)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	var resp struct {
		FilePath string `json:"filePath"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	want := filepath.Join(dir, "src", "main", "java", "com", "example", "app", "OrderService.java")
	if resp.FilePath != want {
		t.Errorf("filePath = %q, want %q", resp.FilePath, want)
	}

	content, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	if !strings.Contains(string(content), "package com.example.app;") {
		t.Errorf("missing package clause:\n%s", content)
	}
	if !strings.Contains(string(content), "public class OrderService {") {
		t.Errorf("missing class declaration:\n%s", content)
	}

	// Second run with the same name must fail, not overwrite.
	env = runCaptured(t, runCreateJavaFile)
	if env.Success {
		t.Fatal("expected failure on existing file")
	}
}

func TestCreateJPAEntityWithSuperclass(t *testing.T) {
	dir := t.TempDir()
	createEntityCwd = dir
	createEntityPackage = "com.example.app"
	createEntityName = "customer"
	createEntitySuperclass = "BaseEntity"
	createEntitySuperclassPkg = "com.example.common"

	env := runCaptured(t, runCreateJPAEntity)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	path := filepath.Join(dir, "src", "main", "java", "com", "example", "app", "Customer.java")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading created file: %v", err)
	}
	for _, want := range []string{
		"@Entity",
		`@Table(name = "customers")`,
		"public class Customer extends BaseEntity {",
		"import com.example.common.BaseEntity;",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("missing %q:\n%s", want, content)
		}
	}
}

func TestCreateJPABasicFieldRoundTrip(t *testing.T) {
	dir := t.TempDir()
	entity := "package com.example;\n\npublic class Customer {\n\n}\n"
	path := filepath.Join(dir, "Customer.java")
	if err := os.WriteFile(path, []byte(entity), 0644); err != nil {
		t.Fatal(err)
	}

	basicFieldCwd = dir
	basicFieldEntityPath = path
	basicFieldEntityB64 = base64.StdEncoding.EncodeToString([]byte(entity))
	basicFieldName = "email"
	basicFieldType = "String"
	basicFieldTypePkg = ""
	basicFieldLength = 120
	basicFieldPrecision = 0
	basicFieldScale = 0
	basicFieldTemporal = ""
	basicFieldTZStorage = ""
	basicFieldUnique = true
	basicFieldNullable = false
	basicFieldLargeObject = false

	env := runCaptured(t, runCreateJPABasicField)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"import jakarta.persistence.Column;",
		`@Column(name = "email", length = 120, nullable = false, unique = true)`,
		"private String email;",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("missing %q:\n%s", want, content)
		}
	}
}

func TestCreateJPABasicFieldRejectsEscapingPath(t *testing.T) {
	dir := t.TempDir()
	basicFieldCwd = dir
	basicFieldEntityPath = "../outside/Customer.java"
	basicFieldEntityB64 = base64.StdEncoding.EncodeToString([]byte("class X {}"))
	basicFieldName = "email"
	basicFieldType = "String"

	env := runCaptured(t, runCreateJPABasicField)
	if env.Success {
		t.Fatal("expected failure for path outside cwd")
	}
	if !strings.Contains(env.ErrorReason, "outside the working directory") {
		t.Errorf("errorReason = %q", env.ErrorReason)
	}
}

func TestResolveWithin(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveWithin(dir, "src/main/java/A.java")
	if err != nil {
		t.Fatalf("relative path inside cwd: %v", err)
	}
	if got != filepath.Join(dir, "src", "main", "java", "A.java") {
		t.Errorf("resolved to %q", got)
	}

	if _, err := resolveWithin(dir, "../escape.java"); err == nil {
		t.Error("expected error for escaping relative path")
	}
	if _, err := resolveWithin(dir, "/etc/passwd"); err == nil {
		t.Error("expected error for absolute path outside cwd")
	}
}

func TestCreateJPAIDFieldUsesGeneratorConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".syntaxpresso"), 0755); err != nil {
		t.Fatal(err)
	}
	cfgYAML := "generator:\n  sequence_initial_value: 5\n  sequence_allocation_size: 10\n"
	if err := os.WriteFile(filepath.Join(dir, ".syntaxpresso", "config.yaml"), []byte(cfgYAML), 0644); err != nil {
		t.Fatal(err)
	}

	entity := "package com.example;\n\npublic class Customer {\n\n}\n"
	path := filepath.Join(dir, "Customer.java")
	if err := os.WriteFile(path, []byte(entity), 0644); err != nil {
		t.Fatal(err)
	}

	idFieldCwd = dir
	idFieldEntityPath = path
	idFieldEntityB64 = base64.StdEncoding.EncodeToString([]byte(entity))
	idFieldName = "id"
	idFieldType = "Long"
	idFieldTypePkg = ""
	idFieldGeneration = "generated-value"
	idFieldGenerationType = "sequence"
	idFieldGeneratorName = ""
	idFieldSequenceName = ""
	idFieldInitialValue = jpa.DefaultInitialValue
	idFieldAllocationSize = jpa.DefaultAllocationSize
	idFieldNullable = false

	env := runCaptured(t, runCreateJPAIDField)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `@SequenceGenerator(name = "customer_seq", sequenceName = "customer_seq", initialValue = 5, allocationSize = 10)`
	if !strings.Contains(string(content), want) {
		t.Errorf("missing %q:\n%s", want, content)
	}
}

func TestInitWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	initCwd = dir
	initResetCache = false

	env := runCaptured(t, runInit)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	var resp struct {
		FilePath string `json:"filePath"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	want := filepath.Join(dir, ".syntaxpresso", "config.yaml")
	if resp.FilePath != want {
		t.Errorf("filePath = %q, want %q", resp.FilePath, want)
	}
	content, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !strings.Contains(string(content), "generator:") {
		t.Errorf("config missing generator section:\n%s", content)
	}

	// A second init must not overwrite an existing config.
	env = runCaptured(t, runInit)
	if env.Success {
		t.Fatal("expected failure on existing config")
	}
}

func TestScanPrunesStaleCacheRows(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".syntaxpresso"), 0755); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "src", "main", "java", "com", "example")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	entity := "package com.example;\n\nimport jakarta.persistence.Entity;\n\n@Entity\npublic class %s {\n}\n"
	for _, name := range []string{"Customer", "Invoice"} {
		path := filepath.Join(src, name+".java")
		if err := os.WriteFile(path, []byte(strings.ReplaceAll(entity, "%s", name)), 0644); err != nil {
			t.Fatal(err)
		}
	}

	getAllJPAEntitiesCwd = dir
	env := runCaptured(t, runGetAllJPAEntities)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	if err := os.Remove(filepath.Join(src, "Invoice.java")); err != nil {
		t.Fatal(err)
	}
	env = runCaptured(t, runGetAllJPAEntities)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	c, err := cache.Open(filepath.Join(dir, ".syntaxpresso"))
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	defer c.Close()
	n, err := c.Count()
	if err != nil {
		t.Fatalf("counting cache rows: %v", err)
	}
	if n != 1 {
		t.Errorf("cache rows = %d, want 1", n)
	}
}

func TestGetAllJPAEntities(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "main", "java", "com", "example")
	if err := os.MkdirAll(src, 0755); err != nil {
		t.Fatal(err)
	}
	entity := "package com.example;\n\nimport jakarta.persistence.Entity;\n\n@Entity\npublic class Customer {\n}\n"
	plain := "package com.example;\n\npublic class Helper {\n}\n"
	if err := os.WriteFile(filepath.Join(src, "Customer.java"), []byte(entity), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "Helper.java"), []byte(plain), 0644); err != nil {
		t.Fatal(err)
	}

	getAllJPAEntitiesCwd = dir
	env := runCaptured(t, runGetAllJPAEntities)
	if !env.Success {
		t.Fatalf("expected success, got %q", env.ErrorReason)
	}

	var resp struct {
		Types []struct {
			PackageName string `json:"packageName"`
			TypeName    string `json:"typeName"`
		} `json:"types"`
		TypesCount int `json:"typesCount"`
	}
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if resp.TypesCount != 1 {
		t.Fatalf("typesCount = %d, want 1", resp.TypesCount)
	}
	if resp.Types[0].TypeName != "Customer" || resp.Types[0].PackageName != "com.example" {
		t.Errorf("unexpected type %+v", resp.Types[0])
	}
}

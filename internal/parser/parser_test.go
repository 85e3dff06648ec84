package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewParserJava(t *testing.T) {
	p, err := NewParser(Java)
	if err != nil {
		t.Fatalf("failed to create Java parser: %v", err)
	}
	defer p.Close()

	if p.Language() != Java {
		t.Errorf("expected language %q, got %q", Java, p.Language())
	}
}

func TestNewParserUnsupported(t *testing.T) {
	_, err := NewParser(Language("cobol"))
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if _, ok := err.(*UnsupportedLanguageError); !ok {
		t.Errorf("expected UnsupportedLanguageError, got %T", err)
	}
}

func TestParseJavaSource(t *testing.T) {
	code := `package com.example;

public class User {
    private Long id;
    private String name;
}
`
	p, err := NewParser(Java)
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	defer p.Close()

	result, err := p.Parse([]byte(code))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	defer result.Close()

	if result.HasErrors() {
		t.Error("expected no syntax errors")
	}

	classes := result.FindNodesByType(NodeClassDeclaration)
	if len(classes) != 1 {
		t.Fatalf("expected 1 class declaration, got %d", len(classes))
	}

	fields := result.FindNodesByType(NodeFieldDeclaration)
	if len(fields) != 2 {
		t.Errorf("expected 2 field declarations, got %d", len(fields))
	}
}

func TestParseInvalidSource(t *testing.T) {
	p, err := NewParser(Java)
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	defer p.Close()

	result, err := p.Parse([]byte("public class {{{"))
	if err != nil {
		t.Fatalf("parse should succeed with error nodes: %v", err)
	}
	defer result.Close()

	if !result.HasErrors() {
		t.Error("expected syntax errors for malformed input")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Customer.java")
	code := "package com.acme.model;\n\npublic class Customer {\n}\n"
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	p, err := NewParser(Java)
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	defer p.Close()

	result, err := p.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse file: %v", err)
	}
	defer result.Close()

	if result.FilePath != path {
		t.Errorf("expected FilePath %q, got %q", path, result.FilePath)
	}
	if string(result.Source) != code {
		t.Error("source bytes do not match file content")
	}
}

func TestParseFileMissing(t *testing.T) {
	p, err := NewParser(Java)
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	defer p.Close()

	_, err = p.ParseFile(filepath.Join(t.TempDir(), "missing.java"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*FileReadError); !ok {
		t.Errorf("expected FileReadError, got %T", err)
	}
}

func TestNodeText(t *testing.T) {
	p, _ := NewParser(Java)
	defer p.Close()

	result, err := p.Parse([]byte("package a;\npublic class B {}\n"))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	defer result.Close()

	pkgs := result.FindNodesByType(NodePackageDeclaration)
	if len(pkgs) != 1 {
		t.Fatalf("expected 1 package declaration, got %d", len(pkgs))
	}
	if got := result.NodeText(pkgs[0]); got != "package a;" {
		t.Errorf("expected %q, got %q", "package a;", got)
	}
	if got := result.NodeText(nil); got != "" {
		t.Errorf("expected empty text for nil node, got %q", got)
	}
}

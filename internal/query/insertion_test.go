package query

import (
	"strings"
	"testing"

	"github.com/syntaxpresso/core/internal/edit"
)

func TestImportEditAfterLastImport(t *testing.T) {
	a := parse(t, customerSource)
	e := a.ImportEdit("import jakarta.persistence.Column;")
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "import java.util.*;\nimport jakarta.persistence.Column;\n"
	if !strings.Contains(string(out), want) {
		t.Errorf("new import not placed after last import:\n%s", out)
	}
}

func TestImportEditAfterPackageClause(t *testing.T) {
	a := parse(t, "package com.acme;\n\npublic class Empty {}\n")
	e := a.ImportEdit("import java.util.UUID;")
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "package com.acme;\n\nimport java.util.UUID;\n\npublic class Empty {}\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestImportEditAtFileStart(t *testing.T) {
	a := parse(t, "public class Empty {}\n")
	e := a.ImportEdit("import java.util.UUID;")
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "import java.util.UUID;\n\npublic class Empty {}\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFieldEditAfterLastMember(t *testing.T) {
	a := parse(t, customerSource)
	decl, err := a.TypeDeclaration()
	if err != nil {
		t.Fatalf("TypeDeclaration: %v", err)
	}

	e, err := a.FieldEdit(decl, "@Column(name = \"email\")\nprivate String email;")
	if err != nil {
		t.Fatalf("FieldEdit: %v", err)
	}
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := "    private String name;\n\n    @Column(name = \"email\")\n    private String email;\n}"
	if !strings.Contains(string(out), want) {
		t.Errorf("member not placed after last field:\n%s", out)
	}
}

func TestFieldEditEmptyBody(t *testing.T) {
	a := parse(t, "package com.acme;\n\npublic class Empty {}\n")
	decl, err := a.TypeDeclaration()
	if err != nil {
		t.Fatalf("TypeDeclaration: %v", err)
	}

	e, err := a.FieldEdit(decl, "private String name;")
	if err != nil {
		t.Fatalf("FieldEdit: %v", err)
	}
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := "package com.acme;\n\npublic class Empty {\n    private String name;\n}\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFieldEditEmptyBodyWithBlankLine(t *testing.T) {
	// Freshly generated files carry a blank line between the braces; it
	// must not survive the first insertion.
	a := parse(t, "public class Empty {\n\n}\n")
	decl, err := a.TypeDeclaration()
	if err != nil {
		t.Fatalf("TypeDeclaration: %v", err)
	}

	e, err := a.FieldEdit(decl, "private Long id;")
	if err != nil {
		t.Fatalf("FieldEdit: %v", err)
	}
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := "public class Empty {\n    private Long id;\n}\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFieldEditMatchesExistingIndent(t *testing.T) {
	source := "class Outer {\n\tprivate int a;\n}\n"
	a := parse(t, source)
	decl, err := a.TypeDeclaration()
	if err != nil {
		t.Fatalf("TypeDeclaration: %v", err)
	}

	e, err := a.FieldEdit(decl, "private int b;")
	if err != nil {
		t.Fatalf("FieldEdit: %v", err)
	}
	out, err := edit.Apply(a.Source(), []edit.TextEdit{e})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	want := "class Outer {\n\tprivate int a;\n\n\tprivate int b;\n}\n"
	if string(out) != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

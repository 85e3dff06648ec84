package query

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/syntaxpresso/core/internal/edit"
)

// defaultIndent is used when a type body has no members to copy
// indentation from.
const defaultIndent = "    "

// ImportInsertion describes where a new import statement goes and how
// it is separated from its neighbours.
type ImportInsertion struct {
	Offset uint32
	Prefix string
	Suffix string
}

// FieldInsertion describes where a new member goes inside a type body.
type FieldInsertion struct {
	Offset          uint32
	Indent          string
	BlankLineBefore bool
	// For an empty body the whitespace between the braces is replaced
	// wholesale; emptyEnd marks the byte before the closing brace and
	// closingIndent the indentation re-established in front of it.
	emptyBody     bool
	emptyEnd      uint32
	closingIndent string
}

// ResolveImportInsertion computes the insertion point for a new import:
// after the last existing import, otherwise after the package clause,
// otherwise at the start of the file followed by a blank line.
func (a *Anchors) ResolveImportInsertion() ImportInsertion {
	imports := a.Imports()
	if len(imports) > 0 {
		last := imports[len(imports)-1]
		return ImportInsertion{Offset: last.EndByte(), Prefix: "\n"}
	}
	if pkg := a.PackageClause(); pkg != nil {
		return ImportInsertion{Offset: pkg.EndByte(), Prefix: "\n\n"}
	}
	return ImportInsertion{Offset: 0, Suffix: "\n\n"}
}

// ImportEdit renders a text edit that inserts one import statement.
func (a *Anchors) ImportEdit(statement string) edit.TextEdit {
	p := a.ResolveImportInsertion()
	return edit.Insert(p.Offset, p.Prefix+statement+p.Suffix)
}

// ResolveFieldInsertion computes the insertion point for a new member
// of the given type declaration: after the last existing member,
// separated by a blank line and matching its indentation, or directly
// inside an empty body one level deeper than the declaration.
func (a *Anchors) ResolveFieldInsertion(decl *sitter.Node) (FieldInsertion, error) {
	body := a.Body(decl)
	if body == nil {
		return FieldInsertion{}, &AnchorNotFoundError{Anchor: "type body"}
	}

	var last *sitter.Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		last = body.NamedChild(i)
	}

	if last != nil {
		return FieldInsertion{
			Offset:          last.EndByte(),
			Indent:          a.lineIndent(last),
			BlankLineBefore: true,
		}, nil
	}

	declIndent := a.lineIndent(decl)
	return FieldInsertion{
		// Everything between the braces is whitespace; replace it.
		Offset:        body.StartByte() + 1,
		Indent:        declIndent + defaultIndent,
		emptyBody:     true,
		emptyEnd:      body.EndByte() - 1,
		closingIndent: declIndent,
	}, nil
}

// FieldEdit renders a text edit that inserts a member fragment at the
// resolved insertion point. The fragment may span several lines
// (annotations above the declaration); every line is indented to the
// resolved level.
func (a *Anchors) FieldEdit(decl *sitter.Node, fragment string) (edit.TextEdit, error) {
	p, err := a.ResolveFieldInsertion(decl)
	if err != nil {
		return edit.TextEdit{}, err
	}

	indented := indentLines(fragment, p.Indent)
	if p.emptyBody {
		// The body has no members: open it up around the new one.
		return edit.Replace(p.Offset, p.emptyEnd, "\n"+indented+"\n"+p.closingIndent), nil
	}

	sep := "\n"
	if p.BlankLineBefore {
		sep = "\n\n"
	}
	return edit.Insert(p.Offset, sep+indented), nil
}

// lineIndent returns the leading whitespace of the line a node starts
// on. If the node does not start a line, it returns empty.
func (a *Anchors) lineIndent(node *sitter.Node) string {
	source := a.result.Source
	start := int(node.StartByte())

	lineStart := start
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}

	for i := lineStart; i < start; i++ {
		if source[i] != ' ' && source[i] != '\t' {
			return ""
		}
	}
	return string(source[lineStart:start])
}

// indentLines prefixes every non-empty line of a fragment with indent.
func indentLines(fragment, indent string) string {
	lines := strings.Split(fragment, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

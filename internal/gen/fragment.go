package gen

import (
	"fmt"
	"sort"
	"strings"
)

// Fragment is a synthesized piece of Java source: the member text
// (annotations plus declaration, newline separated, unindented) and
// the fully-qualified names it needs imported.
type Fragment struct {
	Imports []string
	Text    string
}

// fragmentBuilder accumulates annotation lines, imports and the final
// declaration of a member fragment.
type fragmentBuilder struct {
	imports map[string]bool
	lines   []string
}

func newFragmentBuilder() *fragmentBuilder {
	return &fragmentBuilder{imports: make(map[string]bool)}
}

func (b *fragmentBuilder) needs(fqn string) {
	if fqn != "" {
		b.imports[fqn] = true
	}
}

func (b *fragmentBuilder) line(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

func (b *fragmentBuilder) build() Fragment {
	imports := make([]string, 0, len(b.imports))
	for fqn := range b.imports {
		imports = append(imports, fqn)
	}
	sort.Strings(imports)
	return Fragment{
		Imports: imports,
		Text:    strings.Join(b.lines, "\n"),
	}
}

// annotationAttrs joins annotation attributes into the parenthesized
// part of an annotation, or returns empty when there are none.
func annotationAttrs(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return "(" + strings.Join(attrs, ", ") + ")"
}

package props

import "strings"

// SetterImports are the names a setter-function prop type depends on.
var SetterImports = []string{dispatchName, setStateActionName}

// ImportStmt is a named import `import [Default,] { a, b } from "module"`.
type ImportStmt struct {
	Default string
	Names   []string
	Quote   string

	// Start and End delimit the statement up to and including the module
	// string; a trailing `;` is not part of the span.
	Start int
	End   int
}

func importedName(entry string) string {
	entry = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(entry), "type "))
	if idx := strings.Index(entry, " as "); idx >= 0 {
		entry = entry[:idx]
	}
	return strings.TrimSpace(entry)
}

// Has reports whether name is imported, ignoring aliases and inline type
// modifiers.
func (s *ImportStmt) Has(name string) bool {
	for _, n := range s.Names {
		if importedName(n) == name {
			return true
		}
	}
	return false
}

func (s *ImportStmt) Render(module string) string {
	var sb strings.Builder
	sb.WriteString("import ")
	if s.Default != "" {
		sb.WriteString(s.Default)
		sb.WriteString(", ")
	}
	sb.WriteString("{ ")
	sb.WriteString(strings.Join(s.Names, ", "))
	sb.WriteString(" } from ")
	q := s.Quote
	if q == "" {
		q = `"`
	}
	sb.WriteString(q + module + q)
	return sb.String()
}

// FindImport returns the first value import of named bindings from module.
// `import type { ... }` statements are not considered.
func FindImport(src, module string) (*ImportStmt, bool) {
	toks := code(tokenize(src))

	for i := 0; i < len(toks); i++ {
		if !isKeyword(toks[i], "import") {
			continue
		}

		j := i + 1
		stmt := &ImportStmt{Start: toks[i].start}
		if j+1 < len(toks) && toks[j].kind == tokIdent && toks[j].text != "type" && isPunct(toks[j+1], ",") {
			stmt.Default = toks[j].text
			j += 2
		}
		if j >= len(toks) || !isPunct(toks[j], "{") {
			continue
		}

		closeIdx := matchClose(toks, j)
		if closeIdx < 0 || closeIdx+2 >= len(toks) {
			continue
		}
		if !isKeyword(toks[closeIdx+1], "from") || toks[closeIdx+2].kind != tokString {
			continue
		}

		lit := toks[closeIdx+2].text
		if len(lit) < 2 || lit[1:len(lit)-1] != module {
			continue
		}

		for _, n := range strings.Split(src[toks[j].end:toks[closeIdx].start], ",") {
			if n = strings.TrimSpace(n); n != "" {
				stmt.Names = append(stmt.Names, n)
			}
		}
		stmt.Quote = lit[:1]
		stmt.End = toks[closeIdx+2].end
		return stmt, true
	}

	return nil, false
}

// EnsureImports makes names importable from module. An existing named
// import is extended in place; otherwise a new statement is placed at the top
// of src, after any directive prologue such as "use client". The boolean
// reports whether src changed.
func EnsureImports(src, module string, names []string) (string, bool) {
	if stmt, ok := FindImport(src, module); ok {
		changed := false
		for _, n := range names {
			if !stmt.Has(n) {
				stmt.Names = append(stmt.Names, n)
				changed = true
			}
		}
		if !changed {
			return src, false
		}
		return src[:stmt.Start] + stmt.Render(module) + src[stmt.End:], true
	}

	stmt := &ImportStmt{Names: append([]string(nil), names...)}
	line := stmt.Render(module) + ";\n"
	at := prologueEnd(src)
	if at > 0 && src[at-1] != '\n' {
		line = "\n" + line
	}
	return src[:at] + line + src[at:], true
}

// prologueEnd returns the offset just after the leading directive
// statements of src, or 0 when there are none.
func prologueEnd(src string) int {
	toks := tokenize(src)
	end := 0

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.kind == tokSpace || t.kind == tokComment {
			continue
		}
		if t.kind != tokString || !strings.HasPrefix(t.text[1:], "use ") {
			break
		}

		end = t.end
		if i+1 < len(toks) && isPunct(toks[i+1], ";") {
			end = toks[i+1].end
			i++
		}
		if nl := strings.IndexByte(src[end:], '\n'); nl >= 0 && strings.TrimSpace(src[end:end+nl]) == "" {
			end += nl + 1
		}
	}

	return end
}

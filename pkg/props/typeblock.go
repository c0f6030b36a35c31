package props

import "strings"

// TypeBlock is a named object-type declaration found in source text, either
// `interface Name {...}` or `type Name = {...}`.
type TypeBlock struct {
	Name    string
	Keyword string

	// Start is the offset of the keyword; End is just past the closing brace.
	// A leading `export` and a trailing `;` lie outside the span.
	Start int
	End   int
	// Header is the text from the keyword through the opening brace.
	Header string
	// Lines holds the trimmed, non-blank lines of the body.
	Lines []string
}

// FieldNames returns the names declared at the top level of the body. The
// name is the text before the first ':' (or '(' for methods) without a
// trailing '?' or leading readonly modifier.
func (b *TypeBlock) FieldNames() []string {
	var names []string
	depth := 0

	for _, line := range b.Lines {
		if depth == 0 && !isCommentLine(line) {
			if idx := strings.IndexAny(line, ":("); idx > 0 {
				name := strings.TrimSpace(line[:idx])
				name = strings.TrimSuffix(name, "?")
				name = strings.TrimPrefix(name, "readonly ")
				names = append(names, strings.TrimSpace(name))
			}
		}
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if depth < 0 {
			depth = 0
		}
	}

	return names
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*")
}

// Merge returns a copy of b with a line appended for every field whose name
// is not yet declared. Existing lines are kept in order.
func (b *TypeBlock) Merge(fields []Field) (*TypeBlock, []Field) {
	existing := make(map[string]bool)
	for _, n := range b.FieldNames() {
		existing[n] = true
	}

	merged := *b
	merged.Lines = append([]string(nil), b.Lines...)

	var added []Field
	for _, f := range fields {
		if existing[f.Name] {
			continue
		}
		existing[f.Name] = true
		merged.Lines = append(merged.Lines, f.Line())
		added = append(added, f)
	}

	return &merged, added
}

// Render formats the block with its original header and a two-space
// indented body.
func (b *TypeBlock) Render() string {
	var sb strings.Builder
	sb.WriteString(b.Header)
	sb.WriteString("\n")
	for _, line := range b.Lines {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// NewTypeBlock builds an interface declaration holding fields.
func NewTypeBlock(name string, fields []Field) *TypeBlock {
	b := &TypeBlock{
		Name:    name,
		Keyword: "interface",
		Header:  "interface " + name + " {",
	}
	for _, f := range fields {
		b.Lines = append(b.Lines, f.Line())
	}
	return b
}

// FindTypeBlock looks up the first declaration of name in src. The boolean
// is false when src declares no such block.
func FindTypeBlock(src, name string) (*TypeBlock, bool) {
	toks := code(tokenize(src))

	for i := 0; i+2 < len(toks); i++ {
		kw := toks[i]
		if !isKeyword(kw, "interface") && !isKeyword(kw, "type") {
			continue
		}
		if !isKeyword(toks[i+1], name) {
			continue
		}

		open := -1
		if kw.text == "type" {
			// only `type Name = {` declares an object type block
			if i+3 < len(toks) && isPunct(toks[i+2], "=") && isPunct(toks[i+3], "{") {
				open = i + 3
			}
		} else {
			for j := i + 2; j < len(toks); j++ {
				t := toks[j]
				if isPunct(t, "{") {
					open = j
					break
				}
				if isPunct(t, ";") || isPunct(t, "}") || isPunct(t, "(") {
					break
				}
			}
		}
		if open < 0 {
			continue
		}

		closeIdx := matchClose(toks, open)
		if closeIdx < 0 {
			continue
		}

		body := src[toks[open].end:toks[closeIdx].start]
		var lines []string
		for _, l := range strings.Split(body, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}

		return &TypeBlock{
			Name:    name,
			Keyword: kw.text,
			Start:   kw.start,
			End:     toks[closeIdx].end,
			Header:  src[kw.start:toks[open].end],
			Lines:   lines,
		}, true
	}

	return nil, false
}

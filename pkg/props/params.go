package props

import "strings"

// Param is one binding of a destructured props parameter. Text is the
// binding as it is rendered back into the signature and keeps any default
// value; Name is the bare binding name used for comparison.
type Param struct {
	Name string
	Text string
}

// ParseParams extracts the destructured bindings from a raw parameter list
// such as `{ a, b = 1 }: Props`. A parameter list without a destructuring
// brace group has no bindings.
func ParseParams(raw string) []Param {
	toks := code(tokenize(raw))

	open := -1
	depth := 0
	for i, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[":
			depth++
		case ")", "]":
			depth--
		case "{":
			if depth == 0 {
				open = i
			}
		}
		if open >= 0 {
			break
		}
	}
	if open < 0 {
		return nil
	}

	closeIdx := matchClose(toks, open)
	if closeIdx < 0 {
		closeIdx = len(toks)
	}

	var params []Param
	entryStart := open + 1
	depth = 0
	for i := open + 1; i <= closeIdx; i++ {
		if i < closeIdx && toks[i].kind == tokPunct {
			switch toks[i].text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
		}
		if i == closeIdx || (depth == 0 && isPunct(toks[i], ",")) {
			if p, ok := parseEntry(raw, toks[entryStart:i]); ok {
				params = append(params, p)
			}
			entryStart = i + 1
		}
	}

	return params
}

func parseEntry(raw string, toks []token) (Param, bool) {
	if len(toks) == 0 {
		return Param{}, false
	}

	start := toks[0].start
	end := toks[len(toks)-1].end
	depth := 0
	for _, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
			continue
		case ")", "]", "}":
			depth--
			continue
		}
		if depth != 0 {
			continue
		}
		switch t.text {
		case "=":
			name := strings.TrimSpace(raw[start:t.start])
			if name == "" {
				return Param{}, false
			}
			return Param{Name: name, Text: strings.TrimSpace(raw[start:end])}, true
		case ":", "?":
			name := strings.TrimSpace(raw[start:t.start])
			if name == "" {
				return Param{}, false
			}
			return Param{Name: name, Text: name}, true
		}
	}

	text := strings.TrimSpace(raw[start:end])
	return Param{Name: text, Text: text}, text != ""
}

// MergeParams returns existing followed by every name in names that is not
// already bound, each binding appearing once in first-seen order.
func MergeParams(existing []Param, names []string) []Param {
	seen := make(map[string]bool, len(existing)+len(names))
	merged := make([]Param, 0, len(existing)+len(names))

	for _, p := range existing {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		merged = append(merged, p)
	}

	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		merged = append(merged, Param{Name: n, Text: n})
	}

	return merged
}

// RenderParams renders bindings as a destructuring pattern annotated with
// typeName.
func RenderParams(params []Param, typeName string) string {
	if len(params) == 0 {
		return "{}: " + typeName
	}

	texts := make([]string, len(params))
	for i, p := range params {
		texts[i] = p.Text
	}
	return "{ " + strings.Join(texts, ", ") + " }: " + typeName
}

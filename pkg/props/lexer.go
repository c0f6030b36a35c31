package props

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokPunct
	tokString
	tokComment
	tokSpace
)

type token struct {
	kind  tokenKind
	text  string
	start int
	end   int
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// tokenize splits src into a flat token stream. It only knows enough of the
// language to keep identifiers inside strings and comments from being seen
// as code; everything else is single-byte punctuation.
func tokenize(src string) []token {
	var toks []token
	i := 0

	for i < len(src) {
		c := src[i]
		start := i

		switch {
		case isSpace(c):
			for i < len(src) && isSpace(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokSpace, text: src[start:i], start: start, end: i})

		case isIdentStart(c):
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], start: start, end: i})

		case c >= '0' && c <= '9':
			for i < len(src) && (isIdentPart(src[i]) || src[i] == '.') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], start: start, end: i})

		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			toks = append(toks, token{kind: tokComment, text: src[start:i], start: start, end: i})

		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i < len(src) && !(src[i] == '*' && i+1 < len(src) && src[i+1] == '/') {
				i++
			}
			if i < len(src) {
				i += 2
			}
			toks = append(toks, token{kind: tokComment, text: src[start:i], start: start, end: i})

		case c == '"' || c == '\'' || c == '`':
			i = skipString(src, i)
			toks = append(toks, token{kind: tokString, text: src[start:i], start: start, end: i})

		default:
			i++
			toks = append(toks, token{kind: tokPunct, text: src[start:i], start: start, end: i})
		}
	}

	return toks
}

// skipString returns the offset just past the string literal opening at i.
// An unterminated literal runs to the end of its line, or to the end of the
// input for template literals.
func skipString(src string, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return i
			}
		}
		i++
	}
	return len(src)
}

// code returns the tokens that carry syntax, dropping whitespace and comments.
func code(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.kind == tokSpace || t.kind == tokComment {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchClose returns the index in toks of the punctuation token closing the
// group opened at toks[open], or -1 when the input ends first.
func matchClose(toks []token, open int) int {
	pairs := map[string]string{"(": ")", "{": "}", "[": "]"}
	var stack []string

	for i := open; i < len(toks); i++ {
		t := toks[i]
		if t.kind != tokPunct {
			continue
		}
		if closer, ok := pairs[t.text]; ok {
			stack = append(stack, closer)
			continue
		}
		if len(stack) > 0 && t.text == stack[len(stack)-1] {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i
			}
		}
	}
	return -1
}

package props

import (
	"errors"
	"fmt"
)

var ErrNoDeclaration = errors.New("component declaration not found")

// ParseError reports a source text that has no
// `export default function Name(...)` declaration.
type ParseError struct {
	Len int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse component: %v in %d bytes of input", ErrNoDeclaration, e.Len)
}

func (e *ParseError) Unwrap() error {
	return ErrNoDeclaration
}

// Signature locates a default-exported function declaration in source text.
// Offsets are byte offsets into the parsed source.
type Signature struct {
	Name   string
	Params string

	// Start is the offset of the `export` keyword.
	Start int
	// ParamsStart and ParamsEnd delimit Params, excluding the parentheses.
	ParamsStart int
	ParamsEnd   int
	// End is the offset just past the closing parenthesis.
	End int
}

// Header returns the declaration text from `export` through the closing
// parenthesis as it appears in src.
func (s *Signature) Header(src string) string {
	return src[s.Start:s.End]
}

// ParseSignature returns the leftmost `export default function Name(params)`
// declaration in src. Declarations inside strings and comments are ignored.
func ParseSignature(src string) (*Signature, error) {
	toks := code(tokenize(src))

	for i := 0; i+4 < len(toks); i++ {
		if !isKeyword(toks[i], "export") ||
			!isKeyword(toks[i+1], "default") ||
			!isKeyword(toks[i+2], "function") ||
			toks[i+3].kind != tokIdent ||
			!isPunct(toks[i+4], "(") {
			continue
		}

		closeIdx := matchClose(toks, i+4)
		if closeIdx < 0 {
			continue
		}

		open, closing := toks[i+4], toks[closeIdx]
		return &Signature{
			Name:        toks[i+3].text,
			Params:      src[open.end:closing.start],
			Start:       toks[i].start,
			ParamsStart: open.end,
			ParamsEnd:   closing.start,
			End:         closing.end,
		}, nil
	}

	return nil, &ParseError{Len: len(src)}
}

func isKeyword(t token, word string) bool {
	return t.kind == tokIdent && t.text == word
}

func isPunct(t token, p string) bool {
	return t.kind == tokPunct && t.text == p
}

// Package render turns generated code and page help text into HTML.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

type Doc struct {
	Frontmatter map[string]interface{}
	Content     string
	HTML        string
}

func (d *Doc) String(key string) string {
	if val, ok := d.Frontmatter[key].(string); ok {
		return val
	}
	return ""
}

type Renderer struct {
	md goldmark.Markdown
}

// New returns a renderer highlighting code with the named chroma style.
func New(style string) *Renderer {
	if style == "" {
		style = "github"
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				meta.Meta,
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
		),
	}
}

// ParseDoc converts markdown with optional YAML frontmatter.
func (r *Renderer) ParseDoc(content string) (*Doc, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()

	if err := r.md.Convert([]byte(content), &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	frontmatter := meta.Get(ctx)
	if frontmatter == nil {
		frontmatter = make(map[string]interface{})
	}

	return &Doc{
		Frontmatter: frontmatter,
		Content:     content,
		HTML:        buf.String(),
	}, nil
}

// Code renders source as a highlighted block for lang.
func (r *Renderer) Code(source, lang string) (string, error) {
	fence := strings.Repeat("`", longestRun(source, '`')+1)
	if len(fence) < 3 {
		fence = "```"
	}

	md := fence + lang + "\n" + source + "\n" + fence + "\n"

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("highlight code: %w", err)
	}
	return buf.String(), nil
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

package transform

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingInput = errors.New("icon name and svg markup are required")

type IconRequest struct {
	Name  string
	Color string
	SVG   string
}

type IconOptions struct {
	// PropsType is the type annotation of the component's props object.
	PropsType string
	Rewrite   RewriteOptions
}

func DefaultIconOptions() IconOptions {
	return IconOptions{PropsType: "Icon"}
}

// WrapIcon renders markup as an exported arrow component with a single
// color prop defaulting to color.
func WrapIcon(name, color, markup string, opts IconOptions) string {
	propsType := opts.PropsType
	if propsType == "" {
		propsType = "Icon"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "export const %s = ({ %s = %q }: %s) => {\n", name, ColorVar, color, propsType)
	b.WriteString("  return (\n")
	b.WriteString("    ")
	b.WriteString(markup)
	b.WriteString("\n  );\n};")
	return b.String()
}

// ConvertIcon rewrites req.SVG and wraps it into a component named req.Name.
func ConvertIcon(req IconRequest, opts IconOptions) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.SVG) == "" {
		return "", ErrMissingInput
	}

	rewritten := RewriteAttributes(req.SVG, opts.Rewrite)
	return WrapIcon(strings.TrimSpace(req.Name), req.Color, rewritten, opts), nil
}

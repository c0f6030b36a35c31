// Package transform converts raw SVG markup into a TSX icon component.
//
// Rewriting is plain substring substitution. Attributes that do not match
// one of the literal patterns are passed through untouched.
package transform

import (
	"regexp"
	"strings"
)

// ColorVar is the identifier substituted for static stroke/fill colors.
const ColorVar = "color"

var (
	strokeHexRegex = regexp.MustCompile(`stroke="#[0-9A-Fa-f]{3,6}"`)
	fillHexRegex   = regexp.MustCompile(`fill="#[0-9A-Fa-f]{3,6}"`)
)

type rename struct {
	from string
	to   string
}

var baseRenames = []rename{
	{"stroke-width=", "strokeWidth="},
	{"stroke-linecap=", "strokeLinecap="},
	{"stroke-linejoin=", "strokeLinejoin="},
	{"fill-rule=", "fillRule="},
	{"clip-rule=", "clipRule="},
}

var extendedRenames = []rename{
	{"stroke-miterlimit=", "strokeMiterlimit="},
	{"stroke-dasharray=", "strokeDasharray="},
	{"stroke-dashoffset=", "strokeDashoffset="},
	{"stroke-opacity=", "strokeOpacity="},
	{"fill-opacity=", "fillOpacity="},
	{"stop-color=", "stopColor="},
	{"stop-opacity=", "stopOpacity="},
	{"clip-path=", "clipPath="},
	{"xlink:href=", "xlinkHref="},
	{"xml:space=", "xmlSpace="},
	{" class=", " className="},
}

type RewriteOptions struct {
	// ExtendedAttributes also renames the less common presentation
	// attributes and class.
	ExtendedAttributes bool
}

// RewriteAttributes replaces hex and "black" stroke/fill colors with a
// reference to ColorVar and renames kebab-case attributes to camelCase.
func RewriteAttributes(markup string, opts RewriteOptions) string {
	ref := "{" + ColorVar + "}"

	out := strokeHexRegex.ReplaceAllLiteralString(markup, "stroke="+ref)
	out = fillHexRegex.ReplaceAllLiteralString(out, "fill="+ref)
	out = strings.ReplaceAll(out, `stroke="black"`, "stroke="+ref)
	out = strings.ReplaceAll(out, `fill="black"`, "fill="+ref)

	for _, r := range baseRenames {
		out = strings.ReplaceAll(out, r.from, r.to)
	}
	if opts.ExtendedAttributes {
		for _, r := range extendedRenames {
			out = strings.ReplaceAll(out, r.from, r.to)
		}
	}

	return out
}

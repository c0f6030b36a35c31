package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stroke hex", `<path stroke="#FF0000"/>`, `<path stroke={color}/>`},
		{"fill short hex", `<path fill="#fff"/>`, `<path fill={color}/>`},
		{"stroke black", `<path stroke="black"/>`, `<path stroke={color}/>`},
		{"fill black", `<path fill="black"/>`, `<path fill={color}/>`},
		{"stroke width", `<path stroke-width="2"/>`, `<path strokeWidth="2"/>`},
		{"linecap and linejoin", `<path stroke-linecap="round" stroke-linejoin="round"/>`, `<path strokeLinecap="round" strokeLinejoin="round"/>`},
		{"rules", `<path fill-rule="evenodd" clip-rule="evenodd"/>`, `<path fillRule="evenodd" clipRule="evenodd"/>`},
		{"named color untouched", `<path fill="none" stroke="red"/>`, `<path fill="none" stroke="red"/>`},
		{"url fill untouched", `<path fill="url(#a)"/>`, `<path fill="url(#a)"/>`},
		{"too long hex untouched", `<path fill="#12345678"/>`, `<path fill="#12345678"/>`},
		{"single quotes untouched", `<path fill='#000'/>`, `<path fill='#000'/>`},
		{"extended names untouched by default", `<stop stop-color="#000"/>`, `<stop stop-color="#000"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteAttributes(tt.in, RewriteOptions{}))
		})
	}
}

func TestRewriteAttributes_Extended(t *testing.T) {
	in := `<svg class="i"><stop stop-color="#000" stop-opacity=".5"/><path stroke-dasharray="4" xlink:href="#p"/></svg>`
	got := RewriteAttributes(in, RewriteOptions{ExtendedAttributes: true})

	assert.Equal(t, `<svg className="i"><stop stopColor="#000" stopOpacity=".5"/><path strokeDasharray="4" xlinkHref="#p"/></svg>`, got)
}

func TestRewriteAttributes_Idempotent(t *testing.T) {
	in := `<svg><path stroke="black" fill="#123456" stroke-width="2"/></svg>`
	once := RewriteAttributes(in, RewriteOptions{})
	assert.Equal(t, once, RewriteAttributes(once, RewriteOptions{}))
}

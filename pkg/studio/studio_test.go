package studio

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/withgalaxy/tsxkit/pkg/clipboard"
	"github.com/withgalaxy/tsxkit/pkg/config"
	"github.com/withgalaxy/tsxkit/pkg/notify"
	"github.com/withgalaxy/tsxkit/pkg/props"
)

type fixture struct {
	clip  *clipboard.Memory
	toast *notify.Collector
	env   Env
}

func newFixture() *fixture {
	f := &fixture{clip: &clipboard.Memory{}, toast: &notify.Collector{}}
	f.env = Env{Clipboard: f.clip, Notifier: f.toast}
	return f
}

func (f *fixture) onlyToast(t *testing.T) notify.Toast {
	t.Helper()
	toasts := f.toast.Toasts()
	require.Len(t, toasts, 1, "every action reports exactly once")
	return toasts[0]
}

func TestSubmitOnKey(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want bool
	}{
		{KeyEvent{Target: "input", Key: "Enter"}, true},
		{KeyEvent{Target: "select", Key: "Enter"}, true},
		{KeyEvent{Target: "input", Key: "a"}, false},
		{KeyEvent{Target: "textarea", Key: "Enter"}, false},
		{KeyEvent{Target: "TEXTAREA", Key: "Enter", Ctrl: true}, true},
		{KeyEvent{Target: "textarea", Key: "Enter", Meta: true}, true},
		{KeyEvent{Target: "textarea", Key: "a", Ctrl: true}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SubmitOnKey(tt.ev), "%+v", tt.ev)
	}
}

func TestIconPage_Generate(t *testing.T) {
	f := newFixture()
	p := NewIconPage(nil, f.env)
	assert.Equal(t, config.DefaultIconColor, p.Color)

	p.Name = "IconFoo"
	p.Color = "#000"
	p.SVG = `<svg><path stroke="black" fill="#123456" stroke-width="2"/></svg>`

	require.NoError(t, p.Generate(context.Background()))
	assert.Contains(t, p.Output, "export const IconFoo")
	assert.Contains(t, p.Output, "stroke={color}")
	assert.Equal(t, p.Output, f.clip.Text())

	toast := f.onlyToast(t)
	assert.Equal(t, TitleCopied, toast.Title)
	assert.Equal(t, notify.ColorSuccess, toast.Color)
}

func TestIconPage_InputValidation(t *testing.T) {
	f := newFixture()
	p := NewIconPage(nil, f.env)
	p.Output = "previous"
	p.SVG = "<svg/>"

	err := p.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrInputValidation))
	assert.Equal(t, "previous", p.Output)
	assert.Zero(t, f.clip.Writes())
	assert.Equal(t, TitleInputError, f.onlyToast(t).Title)
}

func TestIconPage_ClipboardFailure(t *testing.T) {
	f := newFixture()
	f.clip.Err = errors.New("denied")
	p := NewIconPage(nil, f.env)
	p.Name = "IconA"
	p.SVG = "<svg/>"

	err := p.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrClipboard))
	assert.Contains(t, p.Output, "export const IconA", "output is kept when only the copy fails")

	toast := f.onlyToast(t)
	assert.Equal(t, TitleFailed, toast.Title)
	assert.True(t, toast.Failed())
}

func TestIconPage_UsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Icon.PropsType = "SvgProps"
	cfg.Icon.ExtendedAttributes = true

	p := NewIconPage(cfg, newFixture().env)
	p.Name = "IconA"
	p.SVG = `<svg class="x"/>`
	require.NoError(t, p.Generate(context.Background()))

	assert.Contains(t, p.Output, "}: SvgProps)")
	assert.Contains(t, p.Output, `className="x"`)
}

func TestPropsPage_Defaults(t *testing.T) {
	p := NewPropsPage(nil, Env{})
	assert.Equal(t, SampleComponent, p.Input)
	assert.Equal(t, []props.FieldDescriptor{{Kind: props.KindString}}, p.Rows)
}

func TestPropsPage_Rows(t *testing.T) {
	p := NewPropsPage(nil, Env{})
	p.AddRow()
	p.AddRow()
	require.Len(t, p.Rows, 3)

	require.NoError(t, p.SetRow(0, RowName, "a"))
	require.NoError(t, p.SetRow(1, RowName, "b"))
	require.NoError(t, p.SetRow(1, RowKind, "setState"))
	require.NoError(t, p.SetRow(1, RowInner, "string"))
	require.NoError(t, p.SetRow(2, RowKind, "Custom"))
	require.NoError(t, p.SetRow(2, RowCustom, "User"))

	assert.Error(t, p.SetRow(3, RowName, "x"))
	assert.Error(t, p.SetRow(0, RowKind, "float"))
	assert.Error(t, p.SetRow(0, RowField("bogus"), "x"))

	require.NoError(t, p.RemoveRow(0))
	assert.Error(t, p.RemoveRow(5))
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "b", p.Rows[0].Name)
	assert.Equal(t, props.KindStateSetter, p.Rows[0].Kind)
	assert.Equal(t, "User", p.Rows[1].Custom)

	p.Reset()
	assert.Len(t, p.Rows, 1)
	assert.Equal(t, SampleComponent, p.Input)
}

func TestPropsPage_Generate(t *testing.T) {
	f := newFixture()
	p := NewPropsPage(nil, f.env)
	require.NoError(t, p.SetRow(0, RowName, "title"))

	require.NoError(t, p.Generate(context.Background()))
	assert.Contains(t, p.Output, "interface PanelProps {\n  title: string;\n}")
	assert.Contains(t, p.Output, "function Panel({ title }: PanelProps)")
	assert.Equal(t, p.Output, f.clip.Text())
	require.NotNil(t, p.Last)
	assert.Equal(t, "Panel", p.Last.Component)
	assert.Equal(t, TitleDone, f.onlyToast(t).Title)
}

func TestPropsPage_ParseFailure(t *testing.T) {
	f := newFixture()
	p := NewPropsPage(nil, f.env)
	p.Output = "previous"
	p.Input = "const Panel = () => null;"

	err := p.Generate(context.Background())
	assert.True(t, errors.Is(err, props.ErrNoDeclaration))
	assert.Equal(t, "previous", p.Output)
	assert.Zero(t, f.clip.Writes())
	assert.Equal(t, TitleParseFailed, f.onlyToast(t).Title)
}

func TestPropsPage_EmptyInput(t *testing.T) {
	f := newFixture()
	p := NewPropsPage(nil, f.env)
	p.Input = "  \n"

	assert.True(t, errors.Is(p.Generate(context.Background()), ErrInputValidation))
	assert.Equal(t, TitleInputError, f.onlyToast(t).Title)
}

func TestPropsPage_ClipboardFailure(t *testing.T) {
	f := newFixture()
	f.clip.Err = errors.New("denied")
	p := NewPropsPage(nil, f.env)
	require.NoError(t, p.SetRow(0, RowName, "count"))
	require.NoError(t, p.SetRow(0, RowKind, "setState"))
	require.NoError(t, p.SetRow(0, RowInner, "number"))

	err := p.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrClipboard))
	assert.True(t, strings.HasPrefix(p.Output, "import { Dispatch, SetStateAction } from \"react\";"))
	assert.Equal(t, TitleFailed, f.onlyToast(t).Title)
}

func TestPropsPage_NoClipboard(t *testing.T) {
	p := NewPropsPage(nil, Env{})
	err := p.Generate(context.Background())
	assert.True(t, errors.Is(err, ErrClipboard))
	assert.NotEmpty(t, p.Output)
}

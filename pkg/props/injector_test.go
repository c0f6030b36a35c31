package props

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const panelSource = "export default function Panel() {\n  return (<div></div>);\n}"

func TestInject_NewInterface(t *testing.T) {
	res, err := Inject(panelSource, []FieldDescriptor{{Name: "title", Kind: KindString}}, DefaultOptions())
	require.NoError(t, err)

	want := "interface PanelProps {\n  title: string;\n}\n\n" +
		"export default function Panel({ title }: PanelProps) {\n  return (<div></div>);\n}"
	assert.Equal(t, want, res.Output)
	assert.Equal(t, "Panel", res.Component)
	assert.Equal(t, "PanelProps", res.Interface)
	assert.True(t, res.CreatedInterface)
	assert.False(t, res.ImportsChanged)
	assert.Equal(t, []Field{{"title", "string"}}, res.AddedFields)
}

func TestInject_StateSetter(t *testing.T) {
	res, err := Inject(panelSource, []FieldDescriptor{{Name: "count", Kind: KindStateSetter, Inner: "number"}}, DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, res.Output, "count: Dispatch<SetStateAction<number>>;")
	assert.True(t, strings.HasPrefix(res.Output, "import { Dispatch, SetStateAction } from \"react\";\n"))
	assert.Contains(t, res.Output, "function Panel({ count }: PanelProps)")
	assert.True(t, res.ImportsChanged)
}

func TestInject_MergesExisting(t *testing.T) {
	src := `import { useState } from "react";

interface CardProps {
  title: string;
  // body text
  body?: string;
}

export default function Card({ title, body = "" }: CardProps) {
  return <div>{title}</div>;
}
`
	res, err := Inject(src, []FieldDescriptor{
		{Name: "title", Kind: KindNumber},
		{Name: "onSelect", Kind: KindCustom, Custom: "(id: string) => void"},
		{Name: "setOpen", Kind: KindStateSetter, Inner: "boolean"},
		{Name: ""},
	}, DefaultOptions())
	require.NoError(t, err)

	want := `import { useState, Dispatch, SetStateAction } from "react";

interface CardProps {
  title: string;
  // body text
  body?: string;
  onSelect: (id: string) => void;
  setOpen: Dispatch<SetStateAction<boolean>>;
}

export default function Card({ title, body = "", onSelect, setOpen }: CardProps) {
  return <div>{title}</div>;
}
`
	assert.Equal(t, want, res.Output)
	assert.False(t, res.CreatedInterface)
	assert.Len(t, res.AddedFields, 2)
}

func TestInject_Idempotent(t *testing.T) {
	fields := []FieldDescriptor{
		{Name: "title", Kind: KindString},
		{Name: "setCount", Kind: KindStateSetter, Inner: "number"},
	}

	once, err := Inject(panelSource, fields, DefaultOptions())
	require.NoError(t, err)
	twice, err := Inject(once.Output, fields, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, once.Output, twice.Output)
	assert.Empty(t, twice.AddedFields)
	assert.False(t, twice.ImportsChanged)
}

func TestInject_DuplicateRows(t *testing.T) {
	res, err := Inject(panelSource, []FieldDescriptor{
		{Name: "a", Kind: KindString},
		{Name: " a ", Kind: KindNumber},
	}, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(res.Output, "a: "))
	assert.Contains(t, res.Output, "a: string;")
}

func TestInject_NoFields(t *testing.T) {
	res, err := Inject(panelSource, nil, DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, res.Output, "interface PanelProps {\n}\n\nexport default function Panel({}: PanelProps)")
}

func TestInject_CustomOptions(t *testing.T) {
	res, err := Inject(panelSource, []FieldDescriptor{{Name: "s", Kind: KindStateSetter}}, Options{
		InterfaceSuffix: "Properties",
		FrameworkModule: "preact/compat",
	})
	require.NoError(t, err)

	assert.Equal(t, "PanelProperties", res.Interface)
	assert.Contains(t, res.Output, `from "preact/compat";`)
}

func TestInject_ParseFailure(t *testing.T) {
	res, err := Inject("const Panel = () => null;", []FieldDescriptor{{Name: "a"}}, DefaultOptions())
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, ErrNoDeclaration))
}

func TestResult_Describe(t *testing.T) {
	res, err := Inject(panelSource, []FieldDescriptor{{Name: "title"}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Panel: created PanelProps, 1 field added", res.Describe())
}

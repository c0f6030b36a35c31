package props

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindImport(t *testing.T) {
	src := "import type { FC } from 'react';\nimport React, { useState, type Ref as R } from 'react'\nimport { x } from \"reactive\";"

	stmt, ok := FindImport(src, "react")
	require.True(t, ok)
	assert.Equal(t, "React", stmt.Default)
	assert.Equal(t, []string{"useState", "type Ref as R"}, stmt.Names)
	assert.Equal(t, "'", stmt.Quote)
	assert.True(t, stmt.Has("Ref"))
	assert.False(t, stmt.Has("R"))
	assert.Equal(t, "import React, { useState, type Ref as R } from 'react'", src[stmt.Start:stmt.End])
}

func TestFindImport_NotFound(t *testing.T) {
	for _, src := range []string{
		"",
		"import React from 'react';",
		"import * as React from 'react';",
		"import type { FC } from 'react';",
		"import { x } from 'preact';",
	} {
		_, ok := FindImport(src, "react")
		assert.False(t, ok, "source %q", src)
	}
}

func TestEnsureImports(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		want        string
		wantChanged bool
	}{
		{
			name:        "prepends when absent",
			src:         "export default function A() {}",
			want:        "import { Dispatch, SetStateAction } from \"react\";\nexport default function A() {}",
			wantChanged: true,
		},
		{
			name:        "extends existing import",
			src:         "import { useState } from \"react\";\nexport default function A() {}",
			want:        "import { useState, Dispatch, SetStateAction } from \"react\";\nexport default function A() {}",
			wantChanged: true,
		},
		{
			name:        "keeps default binding and quote",
			src:         "import React, { useEffect } from 'react'\n",
			want:        "import React, { useEffect, Dispatch, SetStateAction } from 'react'\n",
			wantChanged: true,
		},
		{
			name:        "adds only the missing name",
			src:         "import { SetStateAction, useMemo } from \"react\";",
			want:        "import { SetStateAction, useMemo, Dispatch } from \"react\";",
			wantChanged: true,
		},
		{
			name:        "already complete",
			src:         "import { Dispatch, SetStateAction } from \"react\";",
			want:        "import { Dispatch, SetStateAction } from \"react\";",
			wantChanged: false,
		},
		{
			name:        "after use client directive",
			src:         "\"use client\";\n\nexport default function A() {}",
			want:        "\"use client\";\nimport { Dispatch, SetStateAction } from \"react\";\n\nexport default function A() {}",
			wantChanged: true,
		},
		{
			name:        "directive without newline",
			src:         "'use client';",
			want:        "'use client';\nimport { Dispatch, SetStateAction } from \"react\";\n",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := EnsureImports(tt.src, "react", SetterImports)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestEnsureImports_Idempotent(t *testing.T) {
	for _, src := range []string{
		"export default function A() {}",
		"import { useState } from 'react';\nexport default function A() {}",
		"import React, { Dispatch } from \"react\";",
	} {
		once, _ := EnsureImports(src, "react", SetterImports)
		twice, changed := EnsureImports(once, "react", SetterImports)
		assert.False(t, changed)
		assert.Equal(t, once, twice)
		assert.Equal(t, 1, strings.Count(twice, "Dispatch"), "in %q", twice)
		assert.Equal(t, 1, strings.Count(twice, "SetStateAction"), "in %q", twice)
	}
}

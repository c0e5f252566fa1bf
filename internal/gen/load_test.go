// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "impls/packed_seq.go", OutputPath("impls/packed_seq.yaml"))
}

func TestPrevious(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "x.go")

	old, overlay, err := previous("x.yaml", output)
	require.NoError(t, err)
	assert.Nil(t, old)
	assert.Nil(t, overlay)

	text := Header + " from x.yaml. DO NOT EDIT.\n\npackage things\n\ntype ThingView struct{}\n"
	require.NoError(t, os.WriteFile(output, []byte(text), 0o644))
	old, overlay, err = previous("x.yaml", output)
	require.NoError(t, err)
	assert.Equal(t, text, string(old))
	assert.Equal(t, map[string][]byte{output: []byte("package things\n")}, overlay)

	require.NoError(t, os.WriteFile(output, []byte("package things\n"), 0o644))
	_, _, err = previous("x.yaml", output)
	d, ok := AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "x.yaml: refusing to overwrite x.go, which was not generated by byvaluegen", d.Error())
}

func TestImportBlock(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"\t\"cmp\"\n\t\"iter\"\n\n\t\"github.com/bufbuild/byvalue/seq\"\n\tsv \"golang.org/x/mod/semver/v2\"\n\t\"gopkg.in/yaml.v3\"\n",
		importBlock(map[string]string{
			"iter":                       "iter",
			SeqPath:                      "seq",
			"cmp":                        "cmp",
			"golang.org/x/mod/semver/v2": "sv",
			"gopkg.in/yaml.v3":           "yaml",
		}),
	)
	assert.Equal(t, "\t\"iter\"\n", importBlock(map[string]string{"iter": "iter"}))
}

func TestDefaultName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"iter":                             "iter",
		"github.com/bufbuild/byvalue/seq":  "seq",
		"github.com/bmatcuk/doublestar/v4": "doublestar",
		"gopkg.in/yaml.v3":                 "yaml",
		"example.com/go-thing":             "go_thing",
	}
	for path, want := range tests {
		assert.Equal(t, want, defaultName(path), path)
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "interface{ comparable }", combine("any", "comparable"))
	assert.Equal(t, "interface{ ~int | ~string }", combine("any", " ~int | ~string; "))
	assert.Equal(t, "any", combine("any", ""))
	assert.Equal(t,
		"interface {\n\tfmt.Stringer\n\tcomparable\n\tLen() int\n}",
		combine("fmt.Stringer", "comparable; Len() int"),
	)
}

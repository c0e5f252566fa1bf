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

// Package gen generates statically dispatched views and iterators for
// by-value sequence backends.
//
// A configuration file, conventionally named after the file it generates,
// lists the backend types of a package:
//
//	- type: Packed
//	  derive: [eq, debug]
//
// For each entry, the generated file declares <T>View and <T>Iter and, when
// the backend has a SetAt method, <T>ViewMut, <T>IterMut and <T>Handle. The
// generated types share their semantics with package seq.
package gen

import (
	_ "embed"
	"fmt"
	"go/types"
	"maps"
	"slices"
	"strings"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// SeqPath is the import path of the runtime package generated code uses.
const SeqPath = "github.com/bufbuild/byvalue/seq"

// Header is the first line of every generated file.
const Header = "// Code generated by byvaluegen"

//go:embed views.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("views.go.tmpl").Parse(tmplText))

// Generate generates views for entries, whose backends are declared in pkg.
//
// config is the name of the configuration file, and file is the name of the
// output file; both are used for diagnostics and the generated header.
func Generate(pkg *types.Package, config, file string, entries []Entry) ([]byte, error) {
	im := newImporter(pkg)
	im.paths[SeqPath] = "seq"
	im.paths["iter"] = "iter"

	var input struct {
		Config, Package, Imports string
		Backends                 []*backend
	}
	input.Config = config
	input.Package = pkg.Name()

	for _, e := range entries {
		b, err := analyze(pkg, im, config, e)
		if err != nil {
			return nil, err
		}
		Logger().Debug("analyzed backend",
			zap.String("config", config),
			zap.String("type", b.Name),
			zap.String("elem", b.Elem),
			zap.Bool("mutable", b.Mutable),
			zap.Bool("replace", b.Replace),
		)
		if b.Ord() {
			im.paths["cmp"] = "cmp"
		}
		if b.Debug() {
			im.paths["fmt"] = "fmt"
			im.paths["strings"] = "strings"
		}
		input.Backends = append(input.Backends, b)
	}
	input.Imports = importBlock(im.paths)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, input); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	out, err := imports.Process(file, []byte(buf.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		Logger().Error("generated invalid code", zap.String("config", config), zap.String("source", buf.String()))
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return out, nil
}

// importBlock formats the body of an import declaration: standard library
// packages first, followed by everything else.
func importBlock(paths map[string]string) string {
	var std, other []string
	for _, path := range slices.Sorted(maps.Keys(paths)) {
		spec := fmt.Sprintf("\t%q\n", path)
		if name := paths[path]; name != defaultName(path) {
			spec = fmt.Sprintf("\t%s %q\n", name, path)
		}

		if first, _, _ := strings.Cut(path, "/"); strings.Contains(first, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	if len(std) > 0 && len(other) > 0 {
		std = append(std, "\n")
	}
	return strings.Join(append(std, other...), "")
}

// defaultName guesses the name of the package at path. Major version
// suffixes and gopkg.in version suffixes are skipped.
func defaultName(path string) string {
	elems := strings.Split(path, "/")
	name := elems[len(elems)-1]
	if len(elems) > 1 && len(name) > 1 && name[0] == 'v' && strings.Trim(name[1:], "0123456789") == "" {
		name = elems[len(elems)-2]
	}
	name, _, _ = strings.Cut(name, ".")
	return strings.ReplaceAll(name, "-", "_")
}

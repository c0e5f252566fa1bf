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
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// OutputPath returns the path of the file generated from config: the same
// path, with .yaml replaced by .go.
func OutputPath(config string) string {
	return strings.TrimSuffix(config, ".yaml") + ".go"
}

// Run generates the file for the configuration at config.
//
// It returns whether the output changed. If check is set, nothing is
// written, and the result reports whether the output is stale.
func Run(ctx context.Context, config string, check bool) (changed bool, err error) {
	defer func() {
		if d, ok := AsDiagnostic(err); ok {
			d.File = config
		}
	}()

	if filepath.Ext(config) != ".yaml" {
		return false, errorf(config, "", "configuration file must end in .yaml")
	}
	data, err := os.ReadFile(config)
	if err != nil {
		return false, err
	}
	entries, err := ParseConfig(config, data)
	if err != nil {
		return false, err
	}

	output, err := filepath.Abs(OutputPath(config))
	if err != nil {
		return false, err
	}
	old, overlay, err := previous(config, output)
	if err != nil {
		return false, err
	}

	// Syntax is needed so that the package is checked from source, which keeps
	// the file scopes that bounds are evaluated in.
	const mode = packages.NeedName | packages.NeedFiles | packages.NeedTypes |
		packages.NeedImports | packages.NeedSyntax | packages.NeedTypesInfo
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     filepath.Dir(output),
		Overlay: overlay,
	}, ".")
	if err != nil {
		return false, fmt.Errorf("loading package: %w", err)
	}
	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return false, errorf(config, "", "could not load the package in %s", filepath.Dir(output))
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		// Code that uses the generated types does not type check until
		// they are generated, so errors are expected here.
		Logger().Debug("package error", zap.String("package", pkg.PkgPath), zap.String("error", e.Error()))
	}

	out, err := Generate(pkg.Types, filepath.Base(config), output, entries)
	if err != nil {
		return false, err
	}
	if bytes.Equal(out, old) {
		Logger().Debug("up to date", zap.String("output", output))
		return false, nil
	}
	if check {
		return true, nil
	}

	Logger().Info("writing", zap.String("output", output), zap.Int("bytes", len(out)))
	return true, os.WriteFile(output, out, 0o644)
}

// previous reads a previously generated output, and builds an overlay that
// hides its declarations from the type checker.
func previous(config, output string) ([]byte, map[string][]byte, error) {
	old, err := os.ReadFile(output)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, err
	}
	if !bytes.HasPrefix(old, []byte(Header)) {
		return nil, nil, errorf(config, "", "refusing to overwrite %s, which was not generated by byvaluegen", filepath.Base(output))
	}

	file, err := parser.ParseFile(token.NewFileSet(), output, old, parser.PackageClauseOnly)
	if err != nil {
		return nil, nil, err
	}
	overlay := map[string][]byte{
		output: []byte("package " + file.Name.Name + "\n"),
	}
	return old, overlay, nil
}

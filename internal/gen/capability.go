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
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"maps"
	"slices"
	"strings"
)

// backend is a configuration entry resolved against the package it names a
// type in. It is the data the view template is executed with.
type backend struct {
	Entry

	Name    string // The backend's name, e.g. Packed.
	Decl    string // Type parameter declarations, e.g. [T constraints.Unsigned].
	Args    string // Type arguments, e.g. [T].
	Elem    string // The element type.
	Base    string // The type views hold, e.g. *Packed[T].
	Methods bool   // Whether to add entry points to the backend itself.
	Mutable bool
	Replace bool // Whether the backend has its own ReplaceAt.
}

// Type returns the name of a generated type with its type arguments, e.g.
// b.Type("View") is PackedView[T].
func (b *backend) Type(suffix string) string {
	return b.Name + suffix + b.Args
}

// Derive flags, for the template.
func (b *backend) Eq() bool    { return b.Derives(DeriveEq) }
func (b *backend) Ord() bool   { return b.Derives(DeriveOrd) }
func (b *backend) Debug() bool { return b.Derives(DeriveDebug) }
func (b *backend) Clone() bool { return b.Derives(DeriveClone) }

var (
	entryPoints    = []string{"Sub", "MustSub", "Iter", "IterFrom", "MustIterFrom"}
	mutEntryPoints = []string{"SubMut", "MustSubMut", "IterMut"}
)

// importer records the packages that generated code refers to.
type importer struct {
	pkg   *types.Package
	paths map[string]string // Import path to package name.
}

func newImporter(pkg *types.Package) *importer {
	return &importer{pkg: pkg, paths: make(map[string]string)}
}

// qualify is a [types.Qualifier] that records every package it is called
// with.
func (im *importer) qualify(p *types.Package) string {
	if p == im.pkg {
		return ""
	}
	im.paths[p.Path()] = p.Name()
	return p.Name()
}

// analyze checks the capability methods of the backend e names.
func analyze(pkg *types.Package, im *importer, file string, e Entry) (*backend, error) {
	fail := func(format string, args ...any) error {
		return errorf(file, e.Type, format, args...)
	}
	relative := types.RelativeTo(pkg)

	obj, ok := pkg.Scope().Lookup(e.Type).(*types.TypeName)
	if !ok {
		return nil, fail("no such type in package %s", pkg.Path())
	}
	named, ok := obj.Type().(*types.Named)
	if !ok || obj.IsAlias() {
		return nil, fail("not a defined type")
	}
	if types.IsInterface(named) {
		return nil, fail("backend must not be an interface")
	}

	b := &backend{
		Entry:   e,
		Name:    e.Type,
		Methods: len(e.Bounds) == 0,
	}

	// Instantiate the type with its own parameters, so that method
	// signatures are expressed in terms of them.
	var typ types.Type = named
	tparams := named.TypeParams()
	params := make(map[string]bool)
	if tparams.Len() > 0 {
		args := make([]types.Type, tparams.Len())
		var decl, use []string
		for i := range tparams.Len() {
			tp := tparams.At(i)
			name := tp.Obj().Name()
			params[name] = true
			args[i] = tp

			constraint := types.TypeString(tp.Constraint(), im.qualify)
			if extra, ok := e.Bounds[name]; ok {
				bound, err := checkBound(pkg, im, obj, extra)
				if err != nil {
					return nil, fail("bound on %s: %v", name, err)
				}
				constraint = combine(constraint, extra)

				// Element types are checked against the bound too, so
				// instantiate with a parameter that carries it.
				iface := types.NewInterfaceType(nil, []types.Type{tp.Constraint(), bound})
				args[i] = types.NewTypeParam(types.NewTypeName(tp.Obj().Pos(), pkg, name, nil), iface.Complete())
			}
			decl = append(decl, name+" "+constraint)
			use = append(use, name)
		}
		b.Decl = "[" + strings.Join(decl, ", ") + "]"
		b.Args = "[" + strings.Join(use, ", ") + "]"

		inst, err := types.Instantiate(nil, named, args, false)
		if err != nil {
			return nil, fail("%w", err)
		}
		typ = inst
	}
	for _, name := range slices.Sorted(maps.Keys(e.Bounds)) {
		if !params[name] {
			return nil, fail("bounds names %s, which is not a type parameter", name)
		}
	}

	ptrSet := types.NewMethodSet(types.NewPointer(typ))
	valSet := types.NewMethodSet(typ)
	method := func(name string) (*types.Signature, error) {
		sel := ptrSet.Lookup(pkg, name)
		if sel == nil {
			return nil, nil
		}
		if e.Ownership == Own && valSet.Lookup(pkg, name) == nil {
			return nil, fail("ownership %s requires %s to have a value receiver", Own, name)
		}
		return sel.Type().(*types.Signature), nil
	}
	intType := types.Typ[types.Int]

	length, err := method("Len")
	switch {
	case err != nil:
		return nil, err
	case length == nil:
		return nil, fail("missing method Len() int")
	case length.Params().Len() != 0 || length.Results().Len() != 1 ||
		!types.Identical(length.Results().At(0).Type(), intType):
		return nil, fail("Len must have signature func() int, found %s", types.TypeString(length, relative))
	}

	at, err := method("At")
	switch {
	case err != nil:
		return nil, err
	case at == nil:
		return nil, fail("missing method At(int) E")
	case at.Params().Len() != 1 || at.Results().Len() != 1 ||
		!types.Identical(at.Params().At(0).Type(), intType):
		return nil, fail("At must have signature func(int) E, found %s", types.TypeString(at, relative))
	}
	elem := at.Results().At(0).Type()
	b.Elem = types.TypeString(elem, im.qualify)

	if e.Derives(DeriveEq) && !types.Comparable(elem) {
		return nil, fail("derive %s requires a comparable element type, found %s", DeriveEq, types.TypeString(elem, relative))
	}
	if e.Derives(DeriveOrd) && !types.Satisfies(elem, ordered) {
		return nil, fail("derive %s requires an ordered element type, found %s", DeriveOrd, types.TypeString(elem, relative))
	}

	set, err := method("SetAt")
	if err != nil {
		return nil, err
	}
	if set != nil && (set.Params().Len() != 2 || set.Results().Len() != 0 ||
		!types.Identical(set.Params().At(0).Type(), intType) ||
		!types.Identical(set.Params().At(1).Type(), elem)) {
		return nil, fail("SetAt must have signature func(int, %s), found %s",
			types.TypeString(elem, relative), types.TypeString(set, relative))
	}

	switch {
	case e.Mutable == nil:
		b.Mutable = set != nil
	case *e.Mutable && set == nil:
		return nil, fail("mutable: true requires a method SetAt(int, %s)", types.TypeString(elem, relative))
	default:
		b.Mutable = *e.Mutable
	}

	if b.Mutable {
		replace, err := method("ReplaceAt")
		if err != nil {
			return nil, err
		}
		if replace != nil && (replace.Params().Len() != 2 || replace.Results().Len() != 1 ||
			!types.Identical(replace.Params().At(0).Type(), intType) ||
			!types.Identical(replace.Params().At(1).Type(), elem) ||
			!types.Identical(replace.Results().At(0).Type(), elem)) {
			elem := types.TypeString(elem, relative)
			return nil, fail("ReplaceAt must have signature func(int, %s) %s, found %s",
				elem, elem, types.TypeString(replace, relative))
		}
		b.Replace = replace != nil
	}

	if b.Methods {
		names := entryPoints
		if b.Mutable {
			names = append(slices.Clip(names), mutEntryPoints...)
		}
		for _, name := range names {
			if obj, _, _ := types.LookupFieldOrMethod(typ, true, pkg, name); obj != nil {
				return nil, fail("%s is already declared; it would conflict with a generated entry point", name)
			}
		}
	}

	suffixes := []string{"View", "Iter"}
	constructors := []string{"New" + b.Name + "View"}
	if b.Mutable {
		suffixes = append(suffixes, "ViewMut", "IterMut", "Handle")
		constructors = append(constructors, "New"+b.Name+"ViewMut")
	}
	for _, suffix := range suffixes {
		constructors = append(constructors, b.Name+suffix)
	}
	for _, name := range constructors {
		if pkg.Scope().Lookup(name) != nil {
			return nil, fail("%s is already declared in package %s", name, pkg.Name())
		}
	}

	b.Base = b.Name + b.Args
	if e.Ownership == Borrow {
		b.Base = "*" + b.Base
	}
	return b, nil
}

// combine returns a constraint with the elements of both declared and bound,
// laid out the way gofmt prints it: on one line only when there is a single
// element.
func combine(declared, bound string) string {
	var elems []string
	if declared != "any" {
		elems = append(elems, declared)
	}
	for elem := range strings.SplitSeq(bound, ";") {
		if elem = strings.TrimSpace(elem); elem != "" {
			elems = append(elems, elem)
		}
	}

	switch len(elems) {
	case 0:
		return "any"
	case 1:
		return "interface{ " + elems[0] + " }"
	default:
		return "interface {\n\t" + strings.Join(elems, "\n\t") + "\n}"
	}
}

// ordered is the type set of [cmp.Ordered].
var ordered = func() *types.Interface {
	kinds := []types.BasicKind{
		types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64, types.Uintptr,
		types.Float32, types.Float64,
		types.String,
	}
	terms := make([]*types.Term, len(kinds))
	for i, kind := range kinds {
		terms[i] = types.NewTerm(true, types.Typ[kind])
	}
	return types.NewInterfaceType(nil, []types.Type{types.NewUnion(terms)}).Complete()
}()

// checkBound type checks a bound expression as if it appeared in the
// declaration of obj, and records the packages it refers to. Packages are
// resolved by name among pkg's imports.
func checkBound(pkg *types.Package, im *importer, obj types.Object, bound string) (types.Type, error) {
	src := "interface{ " + bound + " }"
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", bound, err)
	}

	var missing string
	ast.Inspect(expr, func(n ast.Node) bool {
		if missing != "" {
			return false
		}
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		for _, imp := range pkg.Imports() {
			if imp.Name() == id.Name {
				im.paths[imp.Path()] = imp.Name()
				return false
			}
		}
		missing = id.Name
		return false
	})
	if missing != "" {
		return nil, fmt.Errorf("%q refers to package %s, which %s does not import", bound, missing, pkg.Name())
	}

	tv, err := types.Eval(token.NewFileSet(), pkg, obj.Pos(), src)
	if err != nil {
		return nil, err
	}
	if !tv.IsType() {
		return nil, fmt.Errorf("%q is not a constraint", bound)
	}
	return tv.Type, nil
}

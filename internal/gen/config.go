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
	"errors"
	"fmt"
	"go/token"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Entry is one element of a configuration file. Each entry names a backend
// type to generate views for.
type Entry struct {
	Type      string            `yaml:"type"`      // The backend type's name.
	Bounds    map[string]string `yaml:"bounds"`    // Extra constraints per type parameter.
	Ownership Ownership         `yaml:"ownership"` // Whether views hold the backend by pointer.
	Derive    []Derive          `yaml:"derive"`    // Extra methods for the generated view.
	Mutable   *bool             `yaml:"mutable"`   // Nil means auto-detect.
}

// Derives returns whether e asks for d.
func (e *Entry) Derives(d Derive) bool {
	return slices.Contains(e.Derive, d)
}

// Ownership is how generated views refer to their backend.
type Ownership string

const (
	// Borrow views hold a pointer to the backend.
	Borrow Ownership = "borrow"
	// Own views hold a copy of the backend value, which must have value
	// receivers for its capability methods.
	Own Ownership = "own"
)

// UnmarshalYAML implements [yaml.Unmarshaler].
func (o *Ownership) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch v := Ownership(s); v {
	case Borrow, Own:
		*o = v
		return nil
	}
	return fmt.Errorf("line %d: unknown ownership %q, expected %q or %q", node.Line, s, Borrow, Own)
}

// Derive is a marker that asks for an extra method on a generated view.
type Derive string

const (
	DeriveEq    Derive = "eq"    // Equal(other) bool
	DeriveOrd   Derive = "ord"   // Compare(other) int
	DeriveDebug Derive = "debug" // String() string
	DeriveClone Derive = "clone" // Clone() []E
)

var derives = []Derive{DeriveEq, DeriveOrd, DeriveDebug, DeriveClone}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (d *Derive) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if !slices.Contains(derives, Derive(s)) {
		return fmt.Errorf("line %d: unknown derive marker %q, expected one of %q", node.Line, s, derives)
	}
	*d = Derive(s)
	return nil
}

// ParseConfig parses the entries of a configuration file. Unknown keys are
// rejected.
//
// file is only used for diagnostics.
func ParseConfig(file string, data []byte) ([]Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errorf(file, "", "no entries")
		}
		return nil, &Diagnostic{File: file, Err: err}
	}
	if len(entries) == 0 {
		return nil, errorf(file, "", "no entries")
	}

	seen := make(map[string]bool)
	for i := range entries {
		e := &entries[i]
		switch {
		case e.Type == "":
			return nil, errorf(file, "", "entry %d: missing type", i)
		case !token.IsIdentifier(e.Type):
			return nil, errorf(file, "", "entry %d: type %q is not an identifier", i, e.Type)
		case seen[e.Type]:
			return nil, errorf(file, e.Type, "duplicate entry")
		}
		seen[e.Type] = true

		if e.Ownership == "" {
			e.Ownership = Borrow
		}
		slices.Sort(e.Derive)
		e.Derive = slices.Compact(e.Derive)
	}
	return entries, nil
}

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
	"errors"
	"fmt"
)

// Diagnostic is an error that rejects a configuration, naming where the
// problem was found.
type Diagnostic struct {
	// The configuration file being processed.
	File string
	// The backend type of the entry being processed, if any.
	Type string
	Err  error
}

// Error implements [error].
func (d *Diagnostic) Error() string {
	if d.Type == "" {
		return fmt.Sprintf("%s: %v", d.File, d.Err)
	}
	return fmt.Sprintf("%s: %s: %v", d.File, d.Type, d.Err)
}

// Unwrap returns the underlying error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// errorf creates a diagnostic for the given file and entry.
func errorf(file, typ string, format string, args ...any) *Diagnostic {
	return &Diagnostic{File: file, Type: typ, Err: fmt.Errorf(format, args...)}
}

// AsDiagnostic returns err as a [*Diagnostic], if it is one.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	ok := errors.As(err, &d)
	return d, ok
}

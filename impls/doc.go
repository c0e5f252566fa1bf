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

// Package impls provides by-value sequence backends.
//
// Each backend stores its elements in some packed or foreign representation,
// and exposes them through the capability methods of package seq: Len, At
// and, for mutable backends, SetAt and ReplaceAt. Views and iterators come
// either from the generic types in package seq, or from generated code, as
// [Packed] and [Stride] do.
//
// Backends that can be mutated track exclusive borrows with a [seq.Guard].
package impls

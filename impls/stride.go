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

package impls

// Stride is an arithmetic progression: Count values, starting at Start and
// Step apart.
//
// Stride is a value; its generated views hold a copy of it.
type Stride struct {
	Start, Step, Count int
}

// Len implements [seq.Indexer].
func (s Stride) Len() int {
	return s.Count
}

// At implements [seq.Indexer].
func (s Stride) At(idx int) int {
	return s.Start + idx*s.Step
}

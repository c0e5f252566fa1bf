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

package impls_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/byvalue/seq"
)

func panicValue(f func()) (v any) {
	defer func() { v = recover() }()
	f()
	return nil
}

func borrowError(t *testing.T, reason seq.BorrowReason, f func()) *seq.BorrowError {
	t.Helper()
	err, _ := panicValue(f).(error)
	var be *seq.BorrowError
	require.True(t, errors.As(err, &be), "expected a *seq.BorrowError panic, got %v", err)
	require.Equal(t, reason, be.Reason, "%v", be)
	return be
}

func collect[T any](it iter.Seq[T]) []T {
	out := []T{}
	for v := range it {
		out = append(out, v)
	}
	return out
}

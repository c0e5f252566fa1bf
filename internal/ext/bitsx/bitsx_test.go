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

package bitsx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/byvalue/internal/ext/bitsx"
)

func TestPowerOfTwo(t *testing.T) {
	t.Parallel()

	assert.True(t, bitsx.IsPowerOfTwo(1))
	assert.True(t, bitsx.IsPowerOfTwo(64))
	assert.False(t, bitsx.IsPowerOfTwo(0))
	assert.False(t, bitsx.IsPowerOfTwo(12))

	assert.Equal(t, uint(1), bitsx.MakePowerOfTwo(0))
	assert.Equal(t, uint(8), bitsx.MakePowerOfTwo(5))
	assert.Equal(t, uint(8), bitsx.MakePowerOfTwo(8))
	assert.Equal(t, uint(16), bitsx.NextPowerOfTwo(8))
}

func TestLowMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), bitsx.LowMask(0))
	assert.Equal(t, uint64(1), bitsx.LowMask(1))
	assert.Equal(t, uint64(0xfff), bitsx.LowMask(12))
	assert.Equal(t, uint64(math.MaxUint64>>1), bitsx.LowMask(63))
	assert.Equal(t, uint64(math.MaxUint64), bitsx.LowMask(64))
}

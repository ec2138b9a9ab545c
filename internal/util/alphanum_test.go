// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess(t *testing.T) {
	assert.True(t, NaturalLess("round-2", "round-10"))
	assert.False(t, NaturalLess("round-10", "round-2"))
	assert.True(t, NaturalLess("a", "b"))
	assert.True(t, NaturalLess("open", "open-2"))
	assert.False(t, NaturalLess("same", "same"))

	names := []string{"cup-10", "cup-9", "cup-1", "arena", "cup-100"}
	sort.Slice(names, func(i, j int) bool { return NaturalLess(names[i], names[j]) })
	assert.Equal(t, []string{"arena", "cup-1", "cup-9", "cup-10", "cup-100"}, names)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

// TestMatchSelectsLiveHandler tags each handler's result with its
// alternative so cross-dispatch would be visible.
func TestMatchSelectsLiveHandler(t *testing.T) {
	f0 := func(int) string { return "int" }
	f1 := func(string) string { return "string" }

	a := variant.Of2A[int, string](1)
	b := variant.Of2B[int, string]("x")

	assert.Equal(t, "int", variant.Match2(&a, f0, f1))
	assert.Equal(t, "string", variant.Match2(&b, f0, f1))
}

func TestMatchRefMutatesInPlace(t *testing.T) {
	v := variant.Of2A[int, string](10)

	variant.Match2Ref(&v,
		func(i *int) struct{} { *i *= 2; return struct{}{} },
		func(s *string) struct{} { return struct{}{} },
	)

	p, ok := v.GetA()
	require.True(t, ok)
	assert.Equal(t, 20, *p)
}

func TestMatchMoveTransfersBoxedPayload(t *testing.T) {
	v := variant.Of2B[int, variant.Box[buffer]](variant.NewBox(buffer{data: []int{1}}))

	got := variant.Match2Move(v,
		func(int) []int { return nil },
		variant.PiercedVal(func(b buffer) []int { return b.data }),
	)
	assert.Equal(t, []int{1}, got)
}

func TestEachVisitsExactlyOneAlternative(t *testing.T) {
	v := variant.Of2B[int, string]("only")

	var visited []string
	variant.Each2(&v,
		func(*int) { visited = append(visited, "int") },
		func(s *string) { visited = append(visited, *s) },
	)
	assert.Equal(t, []string{"only"}, visited)
}

func TestMatch3CoversEveryAlternative(t *testing.T) {
	f0 := func(int) string { return "a" }
	f1 := func(string) string { return "b" }
	f2 := func(bool) string { return "c" }

	a := variant.Of3A[int, string, bool](0)
	b := variant.Of3B[int, string, bool]("")
	c := variant.Of3C[int, string, bool](false)

	assert.Equal(t, "a", variant.Match3(&a, f0, f1, f2))
	assert.Equal(t, "b", variant.Match3(&b, f0, f1, f2))
	assert.Equal(t, "c", variant.Match3(&c, f0, f1, f2))
}

func TestMatch4CoversEveryAlternative(t *testing.T) {
	f0 := func(int) int { return 0 }
	f1 := func(string) int { return 1 }
	f2 := func(bool) int { return 2 }
	f3 := func(float64) int { return 3 }

	vs := []variant.V4[int, string, bool, float64]{
		variant.Of4A[int, string, bool, float64](0),
		variant.Of4B[int, string, bool, float64](""),
		variant.Of4C[int, string, bool, float64](false),
		variant.Of4D[int, string, bool, float64](0),
	}
	for want, v := range vs {
		assert.Equal(t, want, variant.Match4(&v, f0, f1, f2, f3))
		assert.Equal(t, want, v.Index())
	}
}

func TestMatch3RefAndMove(t *testing.T) {
	v := variant.Of3B[int, string, bool]("grow")
	variant.Match3Ref(&v,
		func(*int) struct{} { return struct{}{} },
		func(s *string) struct{} { *s += "n"; return struct{}{} },
		func(*bool) struct{} { return struct{}{} },
	)
	p, ok := v.GetB()
	require.True(t, ok)
	require.Equal(t, "grown", *p)

	got := variant.Match3Move(v,
		func(int) string { return "" },
		func(s string) string { return s },
		func(bool) string { return "" },
	)
	assert.Equal(t, "grown", got)
}

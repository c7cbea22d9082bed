// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/variant"
)

var errCtor = errors.New("constructor refused")

// throwing is an alternative whose construction can fail.
type throwing struct {
	payload string
}

func makeThrowing(payload string, fail bool) func() (throwing, error) {
	return func() (throwing, error) {
		if fail {
			return throwing{}, errCtor
		}
		return throwing{payload: payload}, nil
	}
}

func TestEmplaceSuccess(t *testing.T) {
	v := variant.Of2B[throwing, int](6)

	err := v.EmplaceA(makeThrowing("ok", false))
	require.NoError(t, err)
	require.Equal(t, 0, v.Index())
	p, ok := v.GetA()
	require.True(t, ok)
	assert.Equal(t, "ok", p.payload)
}

// TestEmplaceFailureKeepsOldValue follows the strong-guarantee
// walkthrough: a container over {throwing, int} holding 6 survives a
// failed emplace unchanged.
func TestEmplaceFailureKeepsOldValue(t *testing.T) {
	v := variant.Of2B[throwing, int](6)

	err := v.EmplaceA(makeThrowing("", true))
	require.ErrorIs(t, err, errCtor)

	require.Equal(t, 1, v.Index())
	p, ok := variant.As2[int](&v)
	require.True(t, ok)
	assert.Equal(t, 6, *p)
}

func TestEmplacePanicKeepsOldValue(t *testing.T) {
	v := variant.Of2B[throwing, int](6)

	require.Panics(t, func() {
		_ = v.EmplaceA(func() (throwing, error) { panic("mid-construction") })
	})

	require.Equal(t, 1, v.Index())
	p, ok := v.GetB()
	require.True(t, ok)
	assert.Equal(t, 6, *p)
}

func TestEmplaceByTypeStrongGuarantee(t *testing.T) {
	v := variant.Of2B[throwing, int](6)

	err := variant.Emplace2(&v, func() (throwing, error) {
		return throwing{}, errCtor
	})
	require.ErrorIs(t, err, errCtor)
	p, ok := v.GetB()
	require.True(t, ok)
	require.Equal(t, 6, *p)

	err = variant.Emplace2(&v, func() (throwing, error) {
		return throwing{payload: "built"}, nil
	})
	require.NoError(t, err)
	pt, ok := v.GetA()
	require.True(t, ok)
	assert.Equal(t, "built", pt.payload)
}

func TestEmplaceByTypeRejectsNonAlternativeBeforeConstruction(t *testing.T) {
	v := variant.Of2B[throwing, int](6)

	ran := false
	assert.Panics(t, func() {
		_ = variant.Emplace2(&v, func() (float64, error) {
			ran = true
			return 0, nil
		})
	})
	assert.False(t, ran)

	p, ok := v.GetB()
	require.True(t, ok)
	assert.Equal(t, 6, *p)
}

func TestEmplaceByTypeIntoBoxedAlternative(t *testing.T) {
	v := variant.Of2A[int, variant.Box[throwing]](1)

	err := variant.Emplace2(&v, makeThrowing("boxed", false))
	require.NoError(t, err)
	require.Equal(t, 1, v.Index())
	p, ok := variant.As2[throwing](&v)
	require.True(t, ok)
	assert.Equal(t, "boxed", p.payload)
}

func TestEmplaceV3AndV4(t *testing.T) {
	v3 := variant.Of3A[int, string, throwing](1)
	require.NoError(t, v3.EmplaceC(makeThrowing("three", false)))
	require.Equal(t, 2, v3.Index())

	require.ErrorIs(t, v3.EmplaceB(func() (string, error) { return "", errCtor }), errCtor)
	require.Equal(t, 2, v3.Index())

	v4 := variant.Of4B[int, string, bool, throwing]("keep")
	require.ErrorIs(t, v4.EmplaceD(makeThrowing("", true)), errCtor)
	p, ok := v4.GetB()
	require.True(t, ok)
	assert.Equal(t, "keep", *p)

	require.NoError(t, v4.EmplaceD(makeThrowing("four", false)))
	pd, ok := v4.GetD()
	require.True(t, ok)
	assert.Equal(t, "four", pd.payload)
}

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

// buffer owns a slice and deep-copies it on Clone.
type buffer struct {
	data []int
}

func (b buffer) Clone() buffer {
	return buffer{data: append([]int(nil), b.data...)}
}

// fragile owns a slice and can refuse to duplicate it.
type fragile struct {
	data      []int
	failClone bool
}

func (f fragile) CloneChecked() (fragile, error) {
	if f.failClone {
		return fragile{}, errors.New("duplication refused")
	}
	return fragile{data: append([]int(nil), f.data...)}, nil
}

func TestCloneCopiesValueAlternatives(t *testing.T) {
	v := variant.Of2A[int, string](41)
	c := v.Clone()

	require.Equal(t, 0, c.Index())
	p, ok := c.GetA()
	require.True(t, ok)
	assert.Equal(t, 41, *p)

	c.SetA(42)
	p, _ = v.GetA()
	assert.Equal(t, 41, *p)
}

func TestCloneUsesClonerContract(t *testing.T) {
	v := variant.Of2A[buffer, string](buffer{data: []int{1, 2, 3}})
	c := v.Clone()

	pc, ok := c.GetA()
	require.True(t, ok)
	pc.data[0] = 99

	pv, _ := v.GetA()
	assert.Equal(t, []int{1, 2, 3}, pv.data)
	assert.Equal(t, []int{99, 2, 3}, pc.data)
}

func TestCloneDeepCopiesBoxedAlternative(t *testing.T) {
	v := variant.Of2B[int, variant.Box[buffer]](variant.NewBox(buffer{data: []int{7}}))
	c := v.Clone()

	pb, ok := c.GetB()
	require.True(t, ok)
	pv, _ := v.GetB()
	require.NotSame(t, pv.Ref(), pb.Ref())

	pb.Ref().data[0] = 8
	assert.Equal(t, []int{7}, pv.Ref().data)
}

func TestCloneCheckedPropagatesFailureUntouched(t *testing.T) {
	v := variant.Of2A[fragile, int](fragile{data: []int{5}, failClone: true})

	_, err := v.CloneChecked()
	require.Error(t, err)

	// Receiver untouched.
	p, ok := v.GetA()
	require.True(t, ok)
	assert.Equal(t, []int{5}, p.data)
}

func TestCloneCheckedSucceedsOnSafeAlternative(t *testing.T) {
	v := variant.Of2B[fragile, int](17)
	c, err := v.CloneChecked()
	require.NoError(t, err)
	p, ok := c.GetB()
	require.True(t, ok)
	assert.Equal(t, 17, *p)
}

func TestCloneV3AndV4(t *testing.T) {
	v3 := variant.Of3B[int, buffer, string](buffer{data: []int{1}})
	c3 := v3.Clone()
	p3, ok := c3.GetB()
	require.True(t, ok)
	p3.data[0] = 2
	o3, _ := v3.GetB()
	assert.Equal(t, []int{1}, o3.data)

	v4 := variant.Of4C[int, string, buffer, bool](buffer{data: []int{3}})
	c4, err := v4.CloneChecked()
	require.NoError(t, err)
	p4, ok := c4.GetC()
	require.True(t, ok)
	p4.data[0] = 4
	o4, _ := v4.GetC()
	assert.Equal(t, []int{3}, o4.data)
}

// copy of a container, then probing the copy, yields an equal value
// and mutating the copy leaves the original alone for every
// alternative of the set.
func TestCopyRoundTripAllAlternatives(t *testing.T) {
	t.Run("first", func(t *testing.T) {
		v := variant.Of2A[int, variant.Box[buffer]](11)
		c := v.Clone()
		p, ok := variant.As2[int](&c)
		require.True(t, ok)
		assert.Equal(t, 11, *p)
	})
	t.Run("second", func(t *testing.T) {
		v := variant.Of2B[int, variant.Box[buffer]](variant.NewBox(buffer{data: []int{3}}))
		c := v.Clone()
		p, ok := variant.As2[buffer](&c)
		require.True(t, ok)
		assert.Equal(t, []int{3}, p.data)
		p.data[0] = 9
		orig, _ := v.GetB()
		assert.Equal(t, []int{3}, orig.Ref().data)
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// V4 is a tagged-union container over four alternatives.
// Semantics are those of [V2] at arity 4.
type V4[T0, T1, T2, T3 any] struct {
	tag uint8
	a0  T0
	a1  T1
	a2  T2
	a3  T3
}

// New4 default-constructs a container holding the zero value of the
// first alternative and validates the alternative set.
func New4[T0, T1, T2, T3 any]() V4[T0, T1, T2, T3] {
	Validate4[T0, T1, T2, T3]()
	var v V4[T0, T1, T2, T3]
	if d, ok := any(&v.a0).(interface{ boxDefault() }); ok {
		d.boxDefault()
	}
	return v
}

// Of4A constructs a container holding x as the first alternative.
func Of4A[T0, T1, T2, T3 any](x T0) V4[T0, T1, T2, T3] {
	return V4[T0, T1, T2, T3]{tag: 0, a0: x}
}

// Of4B constructs a container holding x as the second alternative.
func Of4B[T0, T1, T2, T3 any](x T1) V4[T0, T1, T2, T3] {
	return V4[T0, T1, T2, T3]{tag: 1, a1: x}
}

// Of4C constructs a container holding x as the third alternative.
func Of4C[T0, T1, T2, T3 any](x T2) V4[T0, T1, T2, T3] {
	return V4[T0, T1, T2, T3]{tag: 2, a2: x}
}

// Of4D constructs a container holding x as the fourth alternative.
func Of4D[T0, T1, T2, T3 any](x T3) V4[T0, T1, T2, T3] {
	return V4[T0, T1, T2, T3]{tag: 3, a3: x}
}

// From4 is the converting construction; see [From2].
func From4[T, T0, T1, T2, T3 any](x T) V4[T0, T1, T2, T3] {
	var v V4[T0, T1, T2, T3]
	Put4(&v, x)
	return v
}

// Index returns the discriminant of the live alternative, in [0, 4).
func (v *V4[T0, T1, T2, T3]) Index() int { return int(v.tag) }

func (v *V4[T0, T1, T2, T3]) release() {
	switch v.tag {
	case 0:
		var zero T0
		v.a0 = zero
	case 1:
		var zero T1
		v.a1 = zero
	case 2:
		var zero T2
		v.a2 = zero
	default:
		var zero T3
		v.a3 = zero
	}
}

// SetA assigns x as the live value.
func (v *V4[T0, T1, T2, T3]) SetA(x T0) {
	v.release()
	v.a0 = x
	v.tag = 0
}

// SetB assigns x as the live value.
func (v *V4[T0, T1, T2, T3]) SetB(x T1) {
	v.release()
	v.a1 = x
	v.tag = 1
}

// SetC assigns x as the live value.
func (v *V4[T0, T1, T2, T3]) SetC(x T2) {
	v.release()
	v.a2 = x
	v.tag = 2
}

// SetD assigns x as the live value.
func (v *V4[T0, T1, T2, T3]) SetD(x T3) {
	v.release()
	v.a3 = x
	v.tag = 3
}

// GetA probes for the first alternative.
func (v *V4[T0, T1, T2, T3]) GetA() (*T0, bool) {
	if v.tag != 0 {
		return nil, false
	}
	return &v.a0, true
}

// GetB probes for the second alternative.
func (v *V4[T0, T1, T2, T3]) GetB() (*T1, bool) {
	if v.tag != 1 {
		return nil, false
	}
	return &v.a1, true
}

// GetC probes for the third alternative.
func (v *V4[T0, T1, T2, T3]) GetC() (*T2, bool) {
	if v.tag != 2 {
		return nil, false
	}
	return &v.a2, true
}

// GetD probes for the fourth alternative.
func (v *V4[T0, T1, T2, T3]) GetD() (*T3, bool) {
	if v.tag != 3 {
		return nil, false
	}
	return &v.a3, true
}

// EmplaceA constructs the first alternative with the strong guarantee.
func (v *V4[T0, T1, T2, T3]) EmplaceA(ctor func() (T0, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a0 = nv
	v.tag = 0
	return nil
}

// EmplaceB constructs the second alternative with the strong guarantee.
func (v *V4[T0, T1, T2, T3]) EmplaceB(ctor func() (T1, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a1 = nv
	v.tag = 1
	return nil
}

// EmplaceC constructs the third alternative with the strong guarantee.
func (v *V4[T0, T1, T2, T3]) EmplaceC(ctor func() (T2, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a2 = nv
	v.tag = 2
	return nil
}

// EmplaceD constructs the fourth alternative with the strong guarantee.
func (v *V4[T0, T1, T2, T3]) EmplaceD(ctor func() (T3, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a3 = nv
	v.tag = 3
	return nil
}

// Clone deep-copies the container; see [V2.Clone].
func (v *V4[T0, T1, T2, T3]) Clone() V4[T0, T1, T2, T3] {
	switch v.tag {
	case 0:
		return Of4A[T0, T1, T2, T3](cloneAlt(v.a0))
	case 1:
		return Of4B[T0, T1, T2, T3](cloneAlt(v.a1))
	case 2:
		return Of4C[T0, T1, T2, T3](cloneAlt(v.a2))
	default:
		return Of4D[T0, T1, T2, T3](cloneAlt(v.a3))
	}
}

// CloneChecked deep-copies the container, reporting duplication failure.
func (v *V4[T0, T1, T2, T3]) CloneChecked() (V4[T0, T1, T2, T3], error) {
	switch v.tag {
	case 0:
		nv, err := cloneAltChecked(v.a0)
		if err != nil {
			return V4[T0, T1, T2, T3]{}, err
		}
		return Of4A[T0, T1, T2, T3](nv), nil
	case 1:
		nv, err := cloneAltChecked(v.a1)
		if err != nil {
			return V4[T0, T1, T2, T3]{}, err
		}
		return Of4B[T0, T1, T2, T3](nv), nil
	case 2:
		nv, err := cloneAltChecked(v.a2)
		if err != nil {
			return V4[T0, T1, T2, T3]{}, err
		}
		return Of4C[T0, T1, T2, T3](nv), nil
	default:
		nv, err := cloneAltChecked(v.a3)
		if err != nil {
			return V4[T0, T1, T2, T3]{}, err
		}
		return Of4D[T0, T1, T2, T3](nv), nil
	}
}

// Take4 moves the live value out of src; the source stays valid but
// hollow. See [Take2].
func Take4[T0, T1, T2, T3 any](src *V4[T0, T1, T2, T3]) V4[T0, T1, T2, T3] {
	dst := *src
	src.release()
	return dst
}

// As4 is the by-type probe; see [As2].
func As4[T, T0, T1, T2, T3 any](v *V4[T0, T1, T2, T3]) (*T, bool) {
	if p, matched := asSlot[T](&v.a0, v.tag == 0); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a1, v.tag == 1); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a2, v.tag == 2); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a3, v.tag == 3); matched {
		return p, p != nil
	}
	badAlternative("As4")
	return nil, false
}

// Put4 is the converting assignment; see [Put2].
func Put4[T, T0, T1, T2, T3 any](v *V4[T0, T1, T2, T3], x T) {
	if slotAccepts[T](&v.a0) {
		if v.tag != 0 {
			v.release()
		}
		writeSlot(&v.a0, x)
		v.tag = 0
		return
	}
	if slotAccepts[T](&v.a1) {
		if v.tag != 1 {
			v.release()
		}
		writeSlot(&v.a1, x)
		v.tag = 1
		return
	}
	if slotAccepts[T](&v.a2) {
		if v.tag != 2 {
			v.release()
		}
		writeSlot(&v.a2, x)
		v.tag = 2
		return
	}
	if slotAccepts[T](&v.a3) {
		if v.tag != 3 {
			v.release()
		}
		writeSlot(&v.a3, x)
		v.tag = 3
		return
	}
	badAlternative("Put4")
}

// Emplace4 is the by-type emplace with the strong guarantee; see [Emplace2].
func Emplace4[T, T0, T1, T2, T3 any](v *V4[T0, T1, T2, T3], ctor func() (T, error)) error {
	if !slotAccepts[T](&v.a0) && !slotAccepts[T](&v.a1) &&
		!slotAccepts[T](&v.a2) && !slotAccepts[T](&v.a3) {
		badAlternative("Emplace4")
	}
	nv, err := ctor()
	if err != nil {
		return err
	}
	Put4(v, nv)
	return nil
}

// Match4 visits the live value read-only, exhaustively.
func Match4[T0, T1, T2, T3, R any](v *V4[T0, T1, T2, T3], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R, f3 func(T3) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	case 1:
		return f1(v.a1)
	case 2:
		return f2(v.a2)
	default:
		return f3(v.a3)
	}
}

// Match4Ref visits the live value through a mutable reference.
func Match4Ref[T0, T1, T2, T3, R any](v *V4[T0, T1, T2, T3], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R, f3 func(*T3) R) R {
	switch v.tag {
	case 0:
		return f0(&v.a0)
	case 1:
		return f1(&v.a1)
	case 2:
		return f2(&v.a2)
	default:
		return f3(&v.a3)
	}
}

// Match4Move consumes the container; see [Match2Move].
func Match4Move[T0, T1, T2, T3, R any](v V4[T0, T1, T2, T3], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R, f3 func(T3) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	case 1:
		return f1(v.a1)
	case 2:
		return f2(v.a2)
	default:
		return f3(v.a3)
	}
}

// Each4 visits the live value for effect.
func Each4[T0, T1, T2, T3 any](v *V4[T0, T1, T2, T3], f0 func(*T0), f1 func(*T1), f2 func(*T2), f3 func(*T3)) {
	switch v.tag {
	case 0:
		f0(&v.a0)
	case 1:
		f1(&v.a1)
	case 2:
		f2(&v.a2)
	default:
		f3(&v.a3)
	}
}

// Equal4 reports equality of discriminant and value; see [Equal2].
func Equal4[T0, T1, T2, T3 comparable](a, b *V4[T0, T1, T2, T3]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return a.a0 == b.a0
	case 1:
		return a.a1 == b.a1
	case 2:
		return a.a2 == b.a2
	default:
		return a.a3 == b.a3
	}
}

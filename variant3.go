// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// V3 is a tagged-union container over three alternatives.
// Semantics are those of [V2] at arity 3; see the V2 documentation
// for the never-empty and strong-guarantee contracts.
type V3[T0, T1, T2 any] struct {
	tag uint8
	a0  T0
	a1  T1
	a2  T2
}

// New3 default-constructs a container holding the zero value of the
// first alternative and validates the alternative set.
func New3[T0, T1, T2 any]() V3[T0, T1, T2] {
	Validate3[T0, T1, T2]()
	var v V3[T0, T1, T2]
	if d, ok := any(&v.a0).(interface{ boxDefault() }); ok {
		d.boxDefault()
	}
	return v
}

// Of3A constructs a container holding x as the first alternative.
func Of3A[T0, T1, T2 any](x T0) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 0, a0: x}
}

// Of3B constructs a container holding x as the second alternative.
func Of3B[T0, T1, T2 any](x T1) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 1, a1: x}
}

// Of3C constructs a container holding x as the third alternative.
func Of3C[T0, T1, T2 any](x T2) V3[T0, T1, T2] {
	return V3[T0, T1, T2]{tag: 2, a2: x}
}

// From3 is the converting construction; see [From2].
func From3[T, T0, T1, T2 any](x T) V3[T0, T1, T2] {
	var v V3[T0, T1, T2]
	Put3(&v, x)
	return v
}

// Index returns the discriminant of the live alternative, in [0, 3).
func (v *V3[T0, T1, T2]) Index() int { return int(v.tag) }

func (v *V3[T0, T1, T2]) release() {
	switch v.tag {
	case 0:
		var zero T0
		v.a0 = zero
	case 1:
		var zero T1
		v.a1 = zero
	default:
		var zero T2
		v.a2 = zero
	}
}

// SetA assigns x as the live value.
func (v *V3[T0, T1, T2]) SetA(x T0) {
	v.release()
	v.a0 = x
	v.tag = 0
}

// SetB assigns x as the live value.
func (v *V3[T0, T1, T2]) SetB(x T1) {
	v.release()
	v.a1 = x
	v.tag = 1
}

// SetC assigns x as the live value.
func (v *V3[T0, T1, T2]) SetC(x T2) {
	v.release()
	v.a2 = x
	v.tag = 2
}

// GetA probes for the first alternative.
func (v *V3[T0, T1, T2]) GetA() (*T0, bool) {
	if v.tag != 0 {
		return nil, false
	}
	return &v.a0, true
}

// GetB probes for the second alternative.
func (v *V3[T0, T1, T2]) GetB() (*T1, bool) {
	if v.tag != 1 {
		return nil, false
	}
	return &v.a1, true
}

// GetC probes for the third alternative.
func (v *V3[T0, T1, T2]) GetC() (*T2, bool) {
	if v.tag != 2 {
		return nil, false
	}
	return &v.a2, true
}

// EmplaceA constructs the first alternative with the strong guarantee.
func (v *V3[T0, T1, T2]) EmplaceA(ctor func() (T0, error)) error {
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
func (v *V3[T0, T1, T2]) EmplaceB(ctor func() (T1, error)) error {
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
func (v *V3[T0, T1, T2]) EmplaceC(ctor func() (T2, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a2 = nv
	v.tag = 2
	return nil
}

// Clone deep-copies the container; see [V2.Clone].
func (v *V3[T0, T1, T2]) Clone() V3[T0, T1, T2] {
	switch v.tag {
	case 0:
		return Of3A[T0, T1, T2](cloneAlt(v.a0))
	case 1:
		return Of3B[T0, T1, T2](cloneAlt(v.a1))
	default:
		return Of3C[T0, T1, T2](cloneAlt(v.a2))
	}
}

// CloneChecked deep-copies the container, reporting duplication failure.
func (v *V3[T0, T1, T2]) CloneChecked() (V3[T0, T1, T2], error) {
	switch v.tag {
	case 0:
		nv, err := cloneAltChecked(v.a0)
		if err != nil {
			return V3[T0, T1, T2]{}, err
		}
		return Of3A[T0, T1, T2](nv), nil
	case 1:
		nv, err := cloneAltChecked(v.a1)
		if err != nil {
			return V3[T0, T1, T2]{}, err
		}
		return Of3B[T0, T1, T2](nv), nil
	default:
		nv, err := cloneAltChecked(v.a2)
		if err != nil {
			return V3[T0, T1, T2]{}, err
		}
		return Of3C[T0, T1, T2](nv), nil
	}
}

// Take3 moves the live value out of src; the source stays valid but
// hollow. See [Take2].
func Take3[T0, T1, T2 any](src *V3[T0, T1, T2]) V3[T0, T1, T2] {
	dst := *src
	src.release()
	return dst
}

// As3 is the by-type probe; see [As2].
func As3[T, T0, T1, T2 any](v *V3[T0, T1, T2]) (*T, bool) {
	if p, matched := asSlot[T](&v.a0, v.tag == 0); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a1, v.tag == 1); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a2, v.tag == 2); matched {
		return p, p != nil
	}
	badAlternative("As3")
	return nil, false
}

// Put3 is the converting assignment; see [Put2].
func Put3[T, T0, T1, T2 any](v *V3[T0, T1, T2], x T) {
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
	badAlternative("Put3")
}

// Emplace3 is the by-type emplace with the strong guarantee; see [Emplace2].
func Emplace3[T, T0, T1, T2 any](v *V3[T0, T1, T2], ctor func() (T, error)) error {
	if !slotAccepts[T](&v.a0) && !slotAccepts[T](&v.a1) && !slotAccepts[T](&v.a2) {
		badAlternative("Emplace3")
	}
	nv, err := ctor()
	if err != nil {
		return err
	}
	Put3(v, nv)
	return nil
}

// Match3 visits the live value read-only, exhaustively.
func Match3[T0, T1, T2, R any](v *V3[T0, T1, T2], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	case 1:
		return f1(v.a1)
	default:
		return f2(v.a2)
	}
}

// Match3Ref visits the live value through a mutable reference.
func Match3Ref[T0, T1, T2, R any](v *V3[T0, T1, T2], f0 func(*T0) R, f1 func(*T1) R, f2 func(*T2) R) R {
	switch v.tag {
	case 0:
		return f0(&v.a0)
	case 1:
		return f1(&v.a1)
	default:
		return f2(&v.a2)
	}
}

// Match3Move consumes the container; see [Match2Move].
func Match3Move[T0, T1, T2, R any](v V3[T0, T1, T2], f0 func(T0) R, f1 func(T1) R, f2 func(T2) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	case 1:
		return f1(v.a1)
	default:
		return f2(v.a2)
	}
}

// Each3 visits the live value for effect.
func Each3[T0, T1, T2 any](v *V3[T0, T1, T2], f0 func(*T0), f1 func(*T1), f2 func(*T2)) {
	switch v.tag {
	case 0:
		f0(&v.a0)
	case 1:
		f1(&v.a1)
	default:
		f2(&v.a2)
	}
}

// Equal3 reports equality of discriminant and value; see [Equal2].
func Equal3[T0, T1, T2 comparable](a, b *V3[T0, T1, T2]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return a.a0 == b.a0
	case 1:
		return a.a1 == b.a1
	default:
		return a.a2 == b.a2
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// V2 is a tagged-union container over two alternatives.
// It holds exactly one live value, of type T0 or T1, at all times:
// no operation sequence, including a failed type-changing emplace,
// leaves the container empty or partially constructed.
//
// The zero V2 holds the zero value of T0, which is a valid state
// whenever T0's zero value is valid; use [New2] when T0 is a [Box]
// (an empty box is not a valid live value) or when the alternative
// set should be validated.
//
// V2 is a plain value with no internal synchronization. Concurrent
// mutation of one instance must be serialized by the caller.
type V2[T0, T1 any] struct {
	tag uint8
	a0  T0
	a1  T1
}

// New2 default-constructs a container holding the zero value of the
// first alternative, allocating the payload when T0 is a [Box]. It
// also validates the alternative set (see [Validate2]); the verdict
// is cached, so the check is paid once per instantiation.
func New2[T0, T1 any]() V2[T0, T1] {
	Validate2[T0, T1]()
	var v V2[T0, T1]
	if d, ok := any(&v.a0).(interface{ boxDefault() }); ok {
		d.boxDefault()
	}
	return v
}

// Of2A constructs a container holding x as the first alternative.
func Of2A[T0, T1 any](x T0) V2[T0, T1] {
	return V2[T0, T1]{tag: 0, a0: x}
}

// Of2B constructs a container holding x as the second alternative.
func Of2B[T0, T1 any](x T1) V2[T0, T1] {
	return V2[T0, T1]{tag: 1, a1: x}
}

// From2 is the converting construction: it builds a container holding
// x in the alternative whose unwrapped type is T, boxing the value
// when that alternative is boxed.
// Panics when T names none of the alternatives.
func From2[T, T0, T1 any](x T) V2[T0, T1] {
	var v V2[T0, T1]
	Put2(&v, x)
	return v
}

// Index returns the discriminant of the live alternative, in [0, 2).
func (v *V2[T0, T1]) Index() int { return int(v.tag) }

// release destroys the live value by zeroing its slot, dropping any
// transitively owned heap. The tag is left untouched; callers either
// write a new value and then set the tag, or deliberately leave the
// container hollow (Take2).
func (v *V2[T0, T1]) release() {
	switch v.tag {
	case 0:
		var zero T0
		v.a0 = zero
	default:
		var zero T1
		v.a1 = zero
	}
}

// SetA assigns x as the live value. Assignment cannot fail: the old
// value is destroyed, x is committed, and the tag updated last.
func (v *V2[T0, T1]) SetA(x T0) {
	v.release()
	v.a0 = x
	v.tag = 0
}

// SetB assigns x as the live value.
func (v *V2[T0, T1]) SetB(x T1) {
	v.release()
	v.a1 = x
	v.tag = 1
}

// GetA returns a reference to the live value when the first
// alternative is live, else (nil, false). A non-throwing probe:
// absence is routine control flow.
func (v *V2[T0, T1]) GetA() (*T0, bool) {
	if v.tag != 0 {
		return nil, false
	}
	return &v.a0, true
}

// GetB returns a reference to the live value when the second
// alternative is live, else (nil, false).
func (v *V2[T0, T1]) GetB() (*T1, bool) {
	if v.tag != 1 {
		return nil, false
	}
	return &v.a1, true
}

// EmplaceA constructs the first alternative from ctor and installs it.
// The strong protocol: ctor runs into a temporary before the old value
// is destroyed, so on error (or panic) the container is observably
// unchanged and the error propagates to the caller as-is. The tag is
// updated last, after the infallible commit.
func (v *V2[T0, T1]) EmplaceA(ctor func() (T0, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a0 = nv
	v.tag = 0
	return nil
}

// EmplaceB constructs the second alternative from ctor and installs
// it, with the same strong guarantee as EmplaceA.
func (v *V2[T0, T1]) EmplaceB(ctor func() (T1, error)) error {
	nv, err := ctor()
	if err != nil {
		return err
	}
	v.release()
	v.a1 = nv
	v.tag = 1
	return nil
}

// Clone deep-copies the container: the live value is duplicated via
// [Cloner] when implemented ([Box] alternatives deep-copy their
// payload), by value copy otherwise. A live [FallibleCloner]
// alternative panics on failure; use CloneChecked for those sets.
func (v *V2[T0, T1]) Clone() V2[T0, T1] {
	switch v.tag {
	case 0:
		return Of2A[T0, T1](cloneAlt(v.a0))
	default:
		return Of2B[T0, T1](cloneAlt(v.a1))
	}
}

// CloneChecked deep-copies the container, reporting duplication
// failure. On error the receiver is untouched and no copy exists.
func (v *V2[T0, T1]) CloneChecked() (V2[T0, T1], error) {
	switch v.tag {
	case 0:
		nv, err := cloneAltChecked(v.a0)
		if err != nil {
			return V2[T0, T1]{}, err
		}
		return Of2A[T0, T1](nv), nil
	default:
		nv, err := cloneAltChecked(v.a1)
		if err != nil {
			return V2[T0, T1]{}, err
		}
		return Of2B[T0, T1](nv), nil
	}
}

// Take2 moves the live value out of src into the returned container.
// Boxed alternatives transfer their allocation. The source stays
// structurally valid — it may be reassigned or discarded — but is
// hollow: reading its prior value is a contract violation (an emptied
// box panics on dereference).
func Take2[T0, T1 any](src *V2[T0, T1]) V2[T0, T1] {
	dst := *src
	src.release()
	return dst
}

// As2 is the by-type probe: it returns a reference to the live value
// when T names the live alternative (unwrapped for boxed
// alternatives), else (nil, false).
// Panics when T names none of the alternatives.
func As2[T, T0, T1 any](v *V2[T0, T1]) (*T, bool) {
	if p, matched := asSlot[T](&v.a0, v.tag == 0); matched {
		return p, p != nil
	}
	if p, matched := asSlot[T](&v.a1, v.tag == 1); matched {
		return p, p != nil
	}
	badAlternative("As2")
	return nil, false
}

// Put2 is the converting assignment: it installs x into the
// alternative whose unwrapped type is T. Duplicate rejection by the
// resolver makes the choice unique. When the target alternative is
// already live and boxed, the payload is assigned in place,
// preserving the allocation.
// Panics when T names none of the alternatives.
func Put2[T, T0, T1 any](v *V2[T0, T1], x T) {
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
	badAlternative("Put2")
}

// Emplace2 is the by-type emplace: ctor constructs a value of the
// alternative whose unwrapped type is T, with the strong guarantee of
// [V2.EmplaceA]. The target alternative is resolved before ctor runs,
// so a T naming no alternative panics without side effects.
func Emplace2[T, T0, T1 any](v *V2[T0, T1], ctor func() (T, error)) error {
	if !slotAccepts[T](&v.a0) && !slotAccepts[T](&v.a1) {
		badAlternative("Emplace2")
	}
	nv, err := ctor()
	if err != nil {
		return err
	}
	Put2(v, nv)
	return nil
}

// Match2 visits the live value read-only: the handler for the live
// alternative receives a copy and its result is returned. Both
// handlers are required, so visitation is exhaustive at compile time;
// dispatch is a single tag switch. Boxed alternatives are pierced
// with [PiercedVal].
func Match2[T0, T1, R any](v *V2[T0, T1], f0 func(T0) R, f1 func(T1) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	default:
		return f1(v.a1)
	}
}

// Match2Ref visits the live value through a mutable reference.
// Boxed alternatives are pierced with [Pierced].
func Match2Ref[T0, T1, R any](v *V2[T0, T1], f0 func(*T0) R, f1 func(*T1) R) R {
	switch v.tag {
	case 0:
		return f0(&v.a0)
	default:
		return f1(&v.a1)
	}
}

// Match2Move consumes the container and hands the live value to its
// handler by move: boxed alternatives transfer their allocation into
// the handler. The argument must not be used again by the caller.
func Match2Move[T0, T1, R any](v V2[T0, T1], f0 func(T0) R, f1 func(T1) R) R {
	switch v.tag {
	case 0:
		return f0(v.a0)
	default:
		return f1(v.a1)
	}
}

// Each2 visits the live value for effect, without a result.
func Each2[T0, T1 any](v *V2[T0, T1], f0 func(*T0), f1 func(*T1)) {
	switch v.tag {
	case 0:
		f0(&v.a0)
	default:
		f1(&v.a1)
	}
}

// Equal2 reports whether two containers hold the same alternative
// with equal values. Alternatives must be comparable; boxed
// alternatives compare by allocation identity, not payload.
func Equal2[T0, T1 comparable](a, b *V2[T0, T1]) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case 0:
		return a.a0 == b.a0
	default:
		return a.a1 == b.a1
	}
}

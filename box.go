// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import "reflect"

// Box is a single-owner heap cell for one alternative's value.
//
// A Box alternative serves two purposes:
//   - it makes self-referential alternative sets expressible: the
//     container's size depends only on the pointer, so an alternative
//     may refer back to the container's own type (trees, lists, ASTs);
//   - it classifies the alternative as [Safe] regardless of the
//     payload: relocating a Box is a pointer transfer and cannot fail.
//
// The container's accessors and the Pierced adapters treat a boxed
// alternative as its payload type, so visitors and typed probes are
// written against the unwrapped type.
//
// The zero Box is empty. An empty Box is the moved-from state; reading
// it is a contract violation and panics. Reassignment and discard of
// an empty Box are valid.
type Box[T any] struct {
	p *T
}

// NewBox allocates a Box owning v.
func NewBox[T any](v T) Box[T] {
	return Box[T]{p: &v}
}

// NewBoxDefault allocates a Box owning the zero value of T.
func NewBoxDefault[T any]() Box[T] {
	return Box[T]{p: new(T)}
}

// IsZero reports whether the Box is empty (zero or moved-from).
func (b Box[T]) IsZero() bool { return b.p == nil }

// Get returns the payload value.
// Panics on an empty Box.
func (b Box[T]) Get() T {
	if b.p == nil {
		panic("variant: dereference of empty box")
	}
	return *b.p
}

// Ref returns a pointer to the payload.
// Panics on an empty Box.
func (b Box[T]) Ref() *T {
	if b.p == nil {
		panic("variant: dereference of empty box")
	}
	return b.p
}

// Set assigns v into the payload in place, preserving the identity of
// the allocation when the Box is non-empty. An empty Box allocates.
func (b *Box[T]) Set(v T) {
	if b.p == nil {
		b.p = &v
		return
	}
	*b.p = v
}

// Take transfers ownership of the allocation to the returned Box and
// leaves the receiver empty. The receiver must not be read afterwards.
func (b *Box[T]) Take() Box[T] {
	t := b.p
	b.p = nil
	return Box[T]{p: t}
}

// Clone deep-copies the Box. The payload is duplicated via [Cloner]
// when implemented, otherwise by value copy. A payload whose
// duplication can fail ([FallibleCloner]) panics here; use
// CloneChecked instead. An empty Box clones to an empty Box.
func (b Box[T]) Clone() Box[T] {
	if b.p == nil {
		return Box[T]{}
	}
	v := cloneAlt(*b.p)
	return Box[T]{p: &v}
}

// CloneChecked deep-copies the Box, reporting payload duplication
// failure. On error no new allocation is published and the receiver
// is untouched.
func (b Box[T]) CloneChecked() (Box[T], error) {
	if b.p == nil {
		return Box[T]{}, nil
	}
	v, err := cloneAltChecked(*b.p)
	if err != nil {
		return Box[T]{}, err
	}
	return Box[T]{p: &v}, nil
}

// boxMarker identifies Box instantiations to the resolver.
func (Box[T]) boxMarker() {}

// boxElem reports the payload type to the resolver.
func (Box[T]) boxElem() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// boxDefault allocates a zero payload in place. Used by the checked
// default constructors when the first alternative is boxed.
func (b *Box[T]) boxDefault() { b.p = new(T) }

// elemMatches reports whether probe, a (*U)(nil), names the payload type.
func (b *Box[T]) elemMatches(probe any) bool {
	_, ok := probe.(*T)
	return ok
}

// elemRef returns a *T to the payload as any. Panics when empty.
func (b *Box[T]) elemRef() any { return b.Ref() }

// elemSet assigns v, a value of the payload type, in place.
func (b *Box[T]) elemSet(v any) { b.Set(v.(T)) }

// Pierced adapts a handler written against the unwrapped payload type
// into a handler for the boxed alternative. Use with the Ref-form
// matchers (Match2Ref etc.):
//
//	variant.Match2Ref(&v, onLeaf, variant.Pierced(onNode))
func Pierced[U, R any](f func(*U) R) func(*Box[U]) R {
	return func(b *Box[U]) R { return f(b.Ref()) }
}

// PiercedVal adapts a by-value handler for the unwrapped payload type
// into a handler for the boxed alternative. Use with the value-form
// matchers (Match2, Match2Move). With Match2Move the payload is owned
// by the handler.
func PiercedVal[U, R any](f func(U) R) func(Box[U]) R {
	return func(b Box[U]) R { return f(b.Get()) }
}

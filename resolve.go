// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

import (
	"reflect"
	"sync"
)

// Alternative-set resolution. Each instantiated alternative set is
// validated once and the verdict cached; the checked constructors
// (New2, New3, New4) and the Validate functions run the resolver, the
// hot-path constructors and accessors do not.
//
// Rejections are definition-time failures: the container declaration
// itself is wrong, so the resolver panics rather than returning an
// error. A library cannot wrap an alternative on the caller's behalf
// (wrapping changes the alternative's static type), so where the
// resolver would need to force indirection it surfaces a diagnostic
// naming the fix instead.

// alt is the resolver's per-alternative record.
type alt struct {
	// rtype is the declared alternative type.
	rtype reflect.Type
	// unwrapped is the payload type for boxed alternatives,
	// otherwise rtype.
	unwrapped reflect.Type
	// boxed reports whether the alternative is a Box instantiation.
	boxed bool
	// class is the alternative's relocation Classification.
	class Classification
}

var boxedIface = reflect.TypeOf((*interface{ boxMarker() })(nil)).Elem()

// altInfo computes the resolver record for one alternative type.
func altInfo[T any]() alt {
	var zero T
	a := alt{
		rtype: reflect.TypeOf((*T)(nil)).Elem(),
		class: classify[T](),
	}
	a.unwrapped = a.rtype
	if b, ok := any(zero).(interface {
		boxMarker()
		boxElem() reflect.Type
	}); ok {
		a.boxed = true
		a.unwrapped = b.boxElem()
	}
	return a
}

// setKey identifies an instantiated alternative set. Unused trailing
// slots stay nil.
type setKey struct {
	t0, t1, t2, t3 reflect.Type
}

var resolved sync.Map // setKey -> struct{}

// validate checks an alternative set, once per instantiation.
// Panics on a degenerate set:
//   - two alternatives share an unwrapped type (by-type probes and
//     converting puts would be ambiguous);
//   - a Box wraps another Box;
//   - every alternative is Risky — no alternative can be relied on to
//     commit without the possibility of failure; box at least one
//     alternative to make it Safe.
func validate(alts ...alt) {
	var key setKey
	switch len(alts) {
	case 2:
		key = setKey{t0: alts[0].rtype, t1: alts[1].rtype}
	case 3:
		key = setKey{t0: alts[0].rtype, t1: alts[1].rtype, t2: alts[2].rtype}
	default:
		key = setKey{t0: alts[0].rtype, t1: alts[1].rtype, t2: alts[2].rtype, t3: alts[3].rtype}
	}
	if _, ok := resolved.Load(key); ok {
		return
	}

	safe := 0
	for i, a := range alts {
		if a.boxed && a.unwrapped.Implements(boxedIface) {
			panic("variant: alternative " + a.rtype.String() + " nests a box inside a box")
		}
		if a.class == Safe {
			safe++
		}
		for _, b := range alts[:i] {
			if a.unwrapped == b.unwrapped {
				panic("variant: duplicate alternative type " + a.unwrapped.String())
			}
		}
	}
	if safe == 0 {
		panic("variant: every alternative is Risky; box at least one alternative")
	}

	resolved.Store(key, struct{}{})
}

// Validate2 validates the alternative set {T0, T1}.
// Panics on a degenerate set; see the package documentation for the
// rejected forms. Validation is cached per instantiation.
func Validate2[T0, T1 any]() {
	validate(altInfo[T0](), altInfo[T1]())
}

// Validate3 validates the alternative set {T0, T1, T2}.
func Validate3[T0, T1, T2 any]() {
	validate(altInfo[T0](), altInfo[T1](), altInfo[T2]())
}

// Validate4 validates the alternative set {T0, T1, T2, T3}.
func Validate4[T0, T1, T2, T3 any]() {
	validate(altInfo[T0](), altInfo[T1](), altInfo[T2](), altInfo[T3]())
}

// Classify2 returns the per-alternative Classification of {T0, T1}.
func Classify2[T0, T1 any]() [2]Classification {
	return [2]Classification{classify[T0](), classify[T1]()}
}

// Classify3 returns the per-alternative Classification of {T0, T1, T2}.
func Classify3[T0, T1, T2 any]() [3]Classification {
	return [3]Classification{classify[T0](), classify[T1](), classify[T2]()}
}

// Classify4 returns the per-alternative Classification of {T0, T1, T2, T3}.
func Classify4[T0, T1, T2, T3 any]() [4]Classification {
	return [4]Classification{classify[T0](), classify[T1](), classify[T2](), classify[T3]()}
}

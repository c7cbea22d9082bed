// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Slot access machinery shared by the by-type operations (As, Put,
// Emplace). A slot is one alternative's typed field inside a
// container. Boxed slots are pierced: a probe for the payload type
// resolves through the Box transparently.

// piercer is implemented by *Box[T]. It lets the by-type operations
// resolve a probe for the unwrapped payload type against a boxed slot
// without knowing T statically.
type piercer interface {
	elemMatches(probe any) bool
	elemRef() any
	elemSet(v any)
}

// asSlot resolves a typed probe against one slot.
// matched reports whether T names this slot's type (unwrapped for
// boxed slots); p is non-nil only when matched and the slot is live.
// elemRef is only consulted on a live slot, so it never observes an
// empty box outside of a contract violation elsewhere.
func asSlot[T, F any](slot *F, live bool) (p *T, matched bool) {
	if q, ok := any(slot).(*T); ok {
		if live {
			return q, true
		}
		return nil, true
	}
	if b, ok := any(slot).(piercer); ok && b.elemMatches((*T)(nil)) {
		if live {
			return b.elemRef().(*T), true
		}
		return nil, true
	}
	return nil, false
}

// slotAccepts reports whether T names the slot's type, unwrapped for
// boxed slots.
func slotAccepts[T, F any](slot *F) bool {
	if _, ok := any(slot).(*T); ok {
		return true
	}
	if b, ok := any(slot).(piercer); ok {
		return b.elemMatches((*T)(nil))
	}
	return false
}

// writeSlot assigns x into the slot. A boxed slot assigns the payload
// in place, preserving the allocation when non-empty and allocating
// when the slot was released.
func writeSlot[T, F any](slot *F, x T) {
	if p, ok := any(slot).(*T); ok {
		*p = x
		return
	}
	any(slot).(piercer).elemSet(x)
}

// badAlternative panics for a by-type operation whose type argument
// names none of the container's alternatives. Extracted as a noinline
// function so the by-type operations remain inlineable.
//
//go:noinline
func badAlternative(op string) {
	panic("variant: " + op + ": type is not an alternative of this container")
}

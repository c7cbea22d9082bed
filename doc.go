// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package variant provides never-empty tagged-union containers
// (sum types) in Go.
//
// A container holds exactly one value whose type is one of a fixed,
// closed set of alternatives declared at the point of use. Containers
// are provided at fixed arities — [V2], [V3], [V4] — with a uniform
// operation surface. Access is type-checked: either through a
// fallible probe that reports absence, or through an exhaustive match
// whose per-alternative handlers the compiler verifies.
//
// # Design Philosophy
//
// variant provides:
//   - A never-empty guarantee: no operation sequence, including a
//     failed type-changing emplace, leaves a container empty or
//     partially constructed
//   - Strong-guarantee mutation: a fallible constructor runs into a
//     temporary before the old value is destroyed, so failure leaves
//     the container observably unchanged
//   - Heap indirection ([Box]) for self-referential alternative sets,
//     pierced transparently by typed probes and the Pierced adapters
//
// # Never-Empty Protocol
//
// The discriminant is mutated only as the last, infallible step of a
// successful transition:
//
//   - Infallible assignment (SetA, Put2): destroy the old value,
//     commit the new one, update the tag. Go assignment cannot fail,
//     so this ordering alone preserves the invariant.
//   - Fallible emplace (EmplaceA, Emplace2): construct into a
//     temporary first. On error — or a panic propagating out of the
//     constructor — the container has not been touched; only after
//     full construction is the old value destroyed, the new one
//     committed by assignment, and the tag set.
//
// Callers probing a container after a failed emplace therefore always
// find the previous live alternative, never a corrupted state.
//
// # Containers
//
// Construction:
//
//   - [New2], [New3], [New4]: Checked default construction — validates
//     the alternative set, holds the zero value of the first
//     alternative, allocating it when boxed
//   - [Of2A], [Of2B], ... [Of4D]: Construction from a value of one
//     alternative
//   - [From2], [From3], [From4]: Converting construction by type,
//     boxing the value when the selected alternative is boxed
//   - The bare zero value of a container is valid whenever the first
//     alternative's zero value is valid (not a Box)
//
// Mutation:
//
//   - SetA/SetB/...: Infallible assignment by position
//   - EmplaceA/...: Strong-guarantee construction by position
//   - [Put2], [Put3], [Put4]: Converting assignment by type; assigns
//     a live boxed payload in place, preserving its allocation
//   - [Emplace2], [Emplace3], [Emplace4]: Strong-guarantee
//     construction by type
//
// Access:
//
//   - GetA/GetB/...: Positional probe returning (ref, ok)
//   - [As2], [As3], [As4]: By-type probe, piercing boxed alternatives
//   - Index: The live discriminant
//
// Copy and move:
//
//   - Clone / CloneChecked: Deep copy through [Cloner],
//     [FallibleCloner] and [Box]; CloneChecked is strong
//   - [Take2], [Take3], [Take4]: Move the value out; the source stays
//     structurally valid but hollow and must not be read for its
//     prior value
//
// # Visitation
//
// Match dispatches on the discriminant with a single tag switch and
// requires one handler per alternative, so coverage is checked at
// compile time — growing the alternative set (moving to the next
// arity) breaks every call site until its match is updated:
//
//   - [Match2], [Match3], [Match4]: Read-only, by-value handlers
//   - [Match2Ref], ...: Mutable, by-reference handlers
//   - [Match2Move], ...: Consuming; the live value is moved into its
//     handler and the container argument must not be reused
//   - [Each2], ...: Visitation for effect, without a result
//
// Handlers for boxed alternatives are written against the unwrapped
// payload type and adapted with [Pierced] (reference form) or
// [PiercedVal] (value form).
//
// # Recursive Alternatives
//
// An alternative may refer back to the container's own type through
// [Box], which stores its payload behind a single-owner pointer and
// so keeps the container's size finite:
//
//	type branch struct {
//		left, right variant.V2[int, variant.Box[branch]]
//	}
//
// Box copies deeply on Clone, transfers ownership on move, and panics
// on a dereference of the moved-from state.
//
// # Alternative-Set Resolution
//
// Each instantiated alternative set is validated once (cached) by the
// checked constructors and the Validate functions. Rejected as
// definition-time failures, by panic:
//
//   - Duplicate alternatives after unwrapping Box
//   - A Box nested inside a Box
//   - A set whose every alternative is [Risky]; the diagnostic names
//     the fix (box an alternative — a boxed alternative is always
//     [Safe], since relocating a pointer cannot fail)
//
// [Classify2], [Classify3], [Classify4] report the per-alternative
// [Classification] computed from the [Cloner] and [FallibleCloner]
// contracts.
//
// # Concurrency
//
// Containers are plain values with no internal synchronization.
// Concurrent mutation of a shared instance must be serialized by the
// caller; per-goroutine values need nothing.
//
// # Example
//
//	v := variant.Of2A[int, string](5)
//	format := func(v *variant.V2[int, string]) string {
//		return variant.Match2(v,
//			func(i int) string { return "[" + strconv.Itoa(i) + "]" },
//			func(s string) string { return s },
//		)
//	}
//	format(&v)     // "[5]"
//	v.SetB("bar")
//	format(&v)     // "bar"
package variant

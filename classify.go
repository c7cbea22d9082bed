// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package variant

// Duplication contracts for alternative types.
//
// Containers copy by value. An alternative owning heap state it must
// not share implements Cloner (duplication cannot fail) or
// FallibleCloner (duplication can fail). Both must be implemented on
// the value receiver: alternatives are stored and probed by value.

// Cloner is implemented by alternatives requiring a deep copy whose
// duplication cannot fail.
type Cloner[T any] interface {
	Clone() T
}

// FallibleCloner is implemented by alternatives whose duplication can
// fail. A container may hold such alternatives; copying it through
// CloneChecked propagates the failure with the strong guarantee.
type FallibleCloner[T any] interface {
	CloneChecked() (T, error)
}

// Classification describes an alternative's relocation behavior: Safe
// alternatives can be committed into a container without the
// possibility of failure, Risky alternatives can fail to duplicate.
// A Box alternative is always Safe — relocating a Box moves a pointer.
type Classification uint8

const (
	// Safe: relocation and duplication cannot fail.
	Safe Classification = iota
	// Risky: duplication can fail (the type implements [FallibleCloner]).
	Risky
)

// String returns "Safe" or "Risky".
func (c Classification) String() string {
	if c == Risky {
		return "Risky"
	}
	return "Safe"
}

// classify computes the Classification of one alternative type.
// Box alternatives are Safe unconditionally.
func classify[T any]() Classification {
	var zero T
	if _, ok := any(zero).(interface{ boxMarker() }); ok {
		return Safe
	}
	if _, ok := any(zero).(FallibleCloner[T]); ok {
		return Risky
	}
	return Safe
}

// cloneAlt duplicates an alternative value: Cloner when implemented,
// FallibleCloner with a panic on failure, value copy otherwise.
func cloneAlt[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if f, ok := any(v).(FallibleCloner[T]); ok {
		nv, err := f.CloneChecked()
		if err != nil {
			panic("variant: clone of risky alternative failed: " + err.Error())
		}
		return nv
	}
	return v
}

// cloneAltChecked duplicates an alternative value, reporting failure.
func cloneAltChecked[T any](v T) (T, error) {
	if f, ok := any(v).(FallibleCloner[T]); ok {
		return f.CloneChecked()
	}
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone(), nil
	}
	return v, nil
}

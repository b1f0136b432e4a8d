// Package patch merges sparse updates onto stored entities. A patch type lists
// its fields explicitly; a nil field means "leave unchanged" and a non-nil
// field, including a pointer to the zero value, overwrites.
package patch

// Patch is implemented by per-entity patch types. Apply must only touch the
// fields the patch carries.
type Patch[E any] interface {
	Apply(e *E)
}

// Merge applies p onto a shallow copy of existing and returns the copy.
// existing itself is left untouched.
func Merge[E any](existing *E, p Patch[E]) *E {
	merged := *existing
	if p != nil {
		p.Apply(&merged)
	}
	return &merged
}

// Set copies *v into *dst when v is non-nil.
func Set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// SetOptional replaces the nullable field *dst with a fresh pointer holding
// *v when v is non-nil. The previous pointee is never written through.
func SetOptional[T any](dst **T, v *T) {
	if v != nil {
		cp := *v
		*dst = &cp
	}
}

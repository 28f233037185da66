// Package lift reads wire values out of a guest's linear memory.
//
// A guest hands the host a pointer to a value laid out by the Canonical
// ABI. Reader walks that layout, as computed from the WIT definitions in
// bindings/witdef, and builds the schema's wire type:
//
//	r := lift.NewReader(mem)
//	w, err := lift.ChainOwnership[baseruntime.ChainOwnership](r, addr)
//	if err != nil {
//		return err
//	}
//	owners := convert.ChainOwnership(w)
//
// Only the first type argument is given; the rest follow from its shape.
//
// Guest memory is untrusted. Every read is bounds checked, list lengths
// are capped, enum and variant discriminants are checked against the
// declared cases and strings must be valid UTF-8. Failures are
// *errors.Error values in PhaseLift carrying the field path, for example
// "timeout-config.fast-round-duration".
//
// A value that lifts successfully always converts: lift rejects every
// discriminant convert does not handle.
//
// A Reader is not safe for concurrent use.
package lift

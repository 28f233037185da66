// Package errors is the error type shared by every stage of the bridge.
//
// An *Error says which stage failed (Phase), what went wrong (Kind) and,
// for values read from guest memory, the WIT field path to the bad value:
//
//	lift/invalid_variant at chain-ownership.timeout-config.fast-round-duration <option<time-delta>>: tag 2, type has 2 cases
//
// Most errors come from the constructors. Builder covers the rest:
//
//	err := errors.New(errors.PhaseLift, errors.KindOverflow).
//		At("http-response", "headers").
//		Type("list<http-header>").
//		Detail("length %d exceeds %d", n, max).
//		Build()
//
// Conversions do not fail. The one error a conversion passes on comes
// from a domain constructor (PhaseValidate) and is returned unchanged. A
// wire value no conversion case covers is a build defect, and the
// conversion panics with Unreachable.
//
// errors.Is matches on Phase and Kind, and errors.As reaches the *Error
// through any wrapping.
package errors

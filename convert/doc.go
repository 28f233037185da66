// Package convert turns wire values received from a guest into base
// domain values.
//
// Every guest interface declares its own copy of the wire records. The
// functions here are generic over the record shapes in bindings/shape, so
// one body serves the service base-runtime-api, the contract
// base-runtime-api and the contract-runtime-api alike. Type arguments are
// inferred from the wire value:
//
//	owner := convert.Owner(wireOwner)
//	ownership := convert.ChainOwnership(wireOwnership)
//
// # Totality
//
// Scalar, identifier and aggregate conversions cannot fail: every wire
// field is always present and every tag is a known case. The only error
// channel belongs to http.NewHeader, whose rejection HTTPHeader and
// HTTPResponse return unchanged.
//
// Enum and variant conversions switch over every declared case. The wire
// case lists are pinned in schemas.go, so adding a case to any schema
// breaks the build until the switch here is extended. A value outside the
// declared cases can only come from a wire value built by hand and
// panics with an errors.KindUnreachable error.
//
// # Concurrency
//
// All functions are pure. They keep no state, log nothing and may be
// called from any goroutine.
package convert

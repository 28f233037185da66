// Package linerabridge converts values crossing from a sandboxed Linera
// application (the guest) into the host's domain model.
//
// Guests talk to the host through WIT interfaces. Their values arrive as
// flat records, tuples and tagged unions: a hash is four u64 parts, an
// amount is a (lower, upper) pair of u64 halves, an account owner is a
// two-case variant. The host works with CryptoHash, 128-bit Amount,
// ChainOwnership and friends. This module is the single place where one
// becomes the other.
//
// # Architecture Overview
//
//	linerabridge/         Root package with the guest Memory interface
//	├── base/             Host domain types (crypto, data, identifiers, ownership, http, vm)
//	├── bindings/         Wire types for each guest-facing WIT schema
//	│   ├── shape/        Structural constraints every schema satisfies
//	│   └── witdef/       WIT definitions of the wire records
//	├── convert/          Wire → domain conversions, generic over the schema
//	├── lift/             Reads wire values out of guest linear memory
//	├── guest/            wazero-backed guest instances
//	├── decode/           Lift + convert tables keyed by WIT type name
//	├── errors/           Structured error types
//	└── cmd/wirectl/      CLI for inspecting guest values
//
// # Quick Start
//
// Convert a wire value that a guest binding already produced:
//
//	var wire baseruntime.ChainOwnership // from a service guest
//	own := convert.ChainOwnership(wire)
//	fmt.Println(own.IsActive())
//
// Or read it straight out of guest memory first:
//
//	r := lift.NewReader(inst.Memory())
//	wire, err := lift.ChainOwnership[baseruntime.ChainOwnership](r, addr)
//	if err != nil {
//	    return err
//	}
//	own := convert.ChainOwnership(wire)
//
// # Schemas
//
// Service and contract guests each get their own generated copy of the
// base runtime API, and contracts additionally see a narrower contract
// runtime API. The copies are structurally identical but distinct Go
// types. The convert package is written once against the structure and
// instantiated for every schema; convert/schemas.go pins each instantiation
// so schema drift fails the build.
//
// # Thread Safety
//
// Conversions are pure functions and may run concurrently. lift.Reader and
// guest.Instance are NOT thread-safe and should be used by a single
// goroutine.
package linerabridge

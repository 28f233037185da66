// Package witdef holds the WIT type definitions of the wire records.
//
// The definitions are the layout source for lifting wire values out of
// guest memory. The same WIT records appear in every guest interface, so
// one set of definitions serves all schemas.
package witdef

import "go.bytecodealliance.org/wit"

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func record(fields ...wit.Field) *wit.Record {
	return &wit.Record{Fields: fields}
}

func enum(cases ...string) *wit.Enum {
	e := &wit.Enum{Cases: make([]wit.EnumCase, len(cases))}
	for i, name := range cases {
		e.Cases[i] = wit.EnumCase{Name: name}
	}
	return e
}

func list(elem wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.List{Type: elem}}
}

var (
	CryptoHash = named("crypto-hash", record(
		wit.Field{Name: "part1", Type: wit.U64{}},
		wit.Field{Name: "part2", Type: wit.U64{}},
		wit.Field{Name: "part3", Type: wit.U64{}},
		wit.Field{Name: "part4", Type: wit.U64{}},
	))

	Owner   = named("owner", record(wit.Field{Name: "inner0", Type: CryptoHash}))
	ChainID = named("chain-id", record(wit.Field{Name: "inner0", Type: CryptoHash}))

	// AmountHalves is the (lower, upper) tuple inside amount.
	AmountHalves = &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U64{}, wit.U64{}}}}
	Amount       = named("amount", record(wit.Field{Name: "inner0", Type: AmountHalves}))

	BlockHeight = named("block-height", record(wit.Field{Name: "inner0", Type: wit.U64{}}))
	Timestamp   = named("timestamp", record(wit.Field{Name: "inner0", Type: wit.U64{}}))
	TimeDelta   = named("time-delta", record(wit.Field{Name: "inner0", Type: wit.U64{}}))

	VMRuntime = named("vm-runtime", enum("wasm", "evm"))

	ModuleID = named("module-id", record(
		wit.Field{Name: "contract-blob-hash", Type: CryptoHash},
		wit.Field{Name: "service-blob-hash", Type: CryptoHash},
		wit.Field{Name: "vm-runtime", Type: VMRuntime},
	))

	ApplicationID = named("application-id", record(
		wit.Field{Name: "application-description-hash", Type: CryptoHash},
		wit.Field{Name: "module-id", Type: ModuleID},
	))

	AccountOwner = named("account-owner", &wit.Variant{Cases: []wit.Case{
		{Name: "user", Type: Owner},
		{Name: "application", Type: ApplicationID},
	}})

	MessageID = named("message-id", record(
		wit.Field{Name: "chain-id", Type: ChainID},
		wit.Field{Name: "height", Type: BlockHeight},
		wit.Field{Name: "index", Type: wit.U32{}},
	))

	// FastRoundDuration is option<time-delta>.
	FastRoundDuration = &wit.TypeDef{Kind: &wit.Option{Type: TimeDelta}}

	TimeoutConfig = named("timeout-config", record(
		wit.Field{Name: "fast-round-duration", Type: FastRoundDuration},
		wit.Field{Name: "base-timeout", Type: TimeDelta},
		wit.Field{Name: "timeout-increment", Type: TimeDelta},
		wit.Field{Name: "fallback-duration", Type: TimeDelta},
	))

	// OwnerWeight is tuple<owner, u64>.
	OwnerWeight = &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{Owner, wit.U64{}}}}

	ChainOwnership = named("chain-ownership", record(
		wit.Field{Name: "super-owners", Type: list(Owner)},
		wit.Field{Name: "owners", Type: list(OwnerWeight)},
		wit.Field{Name: "multi-leader-rounds", Type: wit.U32{}},
		wit.Field{Name: "open-multi-leader-rounds", Type: wit.Bool{}},
		wit.Field{Name: "timeout-config", Type: TimeoutConfig},
	))

	HTTPHeader = named("http-header", record(
		wit.Field{Name: "name", Type: wit.String{}},
		wit.Field{Name: "value", Type: list(wit.U8{})},
	))

	HTTPResponse = named("http-response", record(
		wit.Field{Name: "status", Type: wit.U16{}},
		wit.Field{Name: "headers", Type: list(HTTPHeader)},
		wit.Field{Name: "body", Type: list(wit.U8{})},
	))

	CloseChainError                   = named("close-chain-error", enum("not-permitted"))
	ChangeApplicationPermissionsError = named("change-application-permissions-error", enum("not-permitted"))
)

// All lists every named definition.
var All = []*wit.TypeDef{
	CryptoHash, Owner, ChainID, Amount, BlockHeight, Timestamp, TimeDelta,
	VMRuntime, ModuleID, ApplicationID, AccountOwner, MessageID,
	TimeoutConfig, ChainOwnership, HTTPHeader, HTTPResponse,
	CloseChainError, ChangeApplicationPermissionsError,
}

// Lookup returns the definition named name.
func Lookup(name string) (*wit.TypeDef, bool) {
	for _, td := range All {
		if *td.Name == name {
			return td, true
		}
	}
	return nil, false
}

// Name returns the WIT name of td, or "" for anonymous definitions.
func Name(td *wit.TypeDef) string {
	if td == nil || td.Name == nil {
		return ""
	}
	return *td.Name
}

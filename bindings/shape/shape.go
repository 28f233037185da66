// Package shape holds the structural constraints every wire schema
// satisfies.
//
// Wire schemas are declared independently per guest interface, so the
// same WIT record exists once per schema as a distinct Go type. The
// constraints here describe the record layouts those types share, which
// lets a single generic conversion serve every schema. A wire type that
// drifts from its shape (a renamed, added or retyped field, a new variant
// case) no longer satisfies the constraint and fails to compile wherever
// it is converted.
//
// Shapes match on field names and types in declaration order. Wire types
// carry no struct tags and no unexported fields.
package shape

// CryptoHash is the wire crypto-hash record: four u64 parts in order.
type CryptoHash interface {
	~struct{ Part1, Part2, Part3, Part4 uint64 }
}

// Owner is the wire owner record wrapping a crypto-hash.
type Owner[H CryptoHash] interface {
	~struct{ Inner0 H }
}

// ChainID is the wire chain-id record wrapping a crypto-hash.
type ChainID[H CryptoHash] interface {
	~struct{ Inner0 H }
}

// Amount is the wire amount record: a (lower, upper) tuple of u64 halves.
type Amount interface {
	~struct{ Inner0 struct{ F0, F1 uint64 } }
}

// Counter is any single-u64 wrapper: block-height, timestamp, time-delta.
type Counter interface {
	~struct{ Inner0 uint64 }
}

// Enum is a WIT enum lowered to its u8 discriminant.
type Enum interface {
	~uint8
}

// ModuleID is the wire module-id record.
type ModuleID[H CryptoHash, R Enum] interface {
	~struct {
		ContractBlobHash H
		ServiceBlobHash  H
		VMRuntime        R
	}
}

// ApplicationID is the wire application-id record.
type ApplicationID[H CryptoHash, M ModuleID[H, R], R Enum] interface {
	~struct {
		ApplicationDescriptionHash H
		ModuleID                   M
	}
}

// AccountOwner is the wire account-owner variant. Exactly one case
// pointer is set.
type AccountOwner[O Owner[H], A ApplicationID[H, M, R], H CryptoHash, M ModuleID[H, R], R Enum] interface {
	~struct {
		User        *O
		Application *A
	}
}

// MessageID is the wire message-id record.
type MessageID[C ChainID[H], H CryptoHash, B Counter] interface {
	~struct {
		ChainID C
		Height  B
		Index   uint32
	}
}

// TimeoutConfig is the wire timeout-config record. A nil
// FastRoundDuration is an absent option.
type TimeoutConfig[D Counter] interface {
	~struct {
		FastRoundDuration *D
		BaseTimeout       D
		TimeoutIncrement  D
		FallbackDuration  D
	}
}

// ChainOwnership is the wire chain-ownership record. Owners is the
// list<tuple<owner, u64>> of weighted owners.
type ChainOwnership[O Owner[H], H CryptoHash, T TimeoutConfig[D], D Counter] interface {
	~struct {
		SuperOwners []O
		Owners      []struct {
			F0 O
			F1 uint64
		}
		MultiLeaderRounds     uint32
		OpenMultiLeaderRounds bool
		TimeoutConfig         T
	}
}

// HTTPHeader is the wire http-header record.
type HTTPHeader interface {
	~struct {
		Name  string
		Value []byte
	}
}

// HTTPResponse is the wire http-response record.
type HTTPResponse[Hd HTTPHeader] interface {
	~struct {
		Status  uint16
		Headers []Hd
		Body    []byte
	}
}

// Wire enum discriminants, in WIT declaration order.
const (
	VMRuntimeWasm uint8 = 0
	VMRuntimeEvm  uint8 = 1

	NotPermitted uint8 = 0
)

// Package baseruntime declares the records of the base-runtime-api WIT
// interface imported by contract guests.
//
// The records are identical in layout to the service-side interface but
// are distinct Go types; convert handles both through shared shapes.
package baseruntime

import "strconv"

// CryptoHash is the WIT record crypto-hash: a 256-bit hash split into
// four u64 parts, most significant first.
type CryptoHash struct {
	Part1 uint64
	Part2 uint64
	Part3 uint64
	Part4 uint64
}

// Owner is the WIT record owner.
type Owner struct {
	Inner0 CryptoHash
}

// ChainID is the WIT record chain-id.
type ChainID struct {
	Inner0 CryptoHash
}

// AccountOwner is the WIT variant account-owner. Exactly one case is set.
type AccountOwner struct {
	User        *Owner
	Application *ApplicationID
}

// Amount is the WIT record amount. Inner0 is the tuple (lower, upper) of
// the 128-bit atto count.
type Amount struct {
	Inner0 struct{ F0, F1 uint64 }
}

// BlockHeight is the WIT record block-height.
type BlockHeight struct {
	Inner0 uint64
}

// Timestamp is the WIT record timestamp, in microseconds since the epoch.
type Timestamp struct {
	Inner0 uint64
}

// TimeDelta is the WIT record time-delta, in microseconds.
type TimeDelta struct {
	Inner0 uint64
}

// VMRuntime is the WIT enum vm-runtime.
type VMRuntime uint8

const (
	VMRuntimeWasm VMRuntime = iota
	VMRuntimeEvm
)

// VMRuntimeCases lists every vm-runtime case in declaration order.
var VMRuntimeCases = [...]VMRuntime{VMRuntimeWasm, VMRuntimeEvm}

func (e VMRuntime) String() string {
	switch e {
	case VMRuntimeWasm:
		return "wasm"
	case VMRuntimeEvm:
		return "evm"
	}
	return "vm-runtime(" + strconv.Itoa(int(e)) + ")"
}

// ModuleID is the WIT record module-id.
type ModuleID struct {
	ContractBlobHash CryptoHash
	ServiceBlobHash  CryptoHash
	VMRuntime        VMRuntime
}

// ApplicationID is the WIT record application-id.
type ApplicationID struct {
	ApplicationDescriptionHash CryptoHash
	ModuleID                   ModuleID
}

// TimeoutConfig is the WIT record timeout-config.
type TimeoutConfig struct {
	FastRoundDuration *TimeDelta
	BaseTimeout       TimeDelta
	TimeoutIncrement  TimeDelta
	FallbackDuration  TimeDelta
}

// ChainOwnership is the WIT record chain-ownership. Owners holds the
// list<tuple<owner, u64>> of weighted owners in guest order.
type ChainOwnership struct {
	SuperOwners []Owner
	Owners      []struct {
		F0 Owner
		F1 uint64
	}
	MultiLeaderRounds     uint32
	OpenMultiLeaderRounds bool
	TimeoutConfig         TimeoutConfig
}

// HTTPHeader is the WIT record http-header.
type HTTPHeader struct {
	Name  string
	Value []byte
}

// HTTPResponse is the WIT record http-response.
type HTTPResponse struct {
	Status  uint16
	Headers []HTTPHeader
	Body    []byte
}

// Package contractruntime declares the records of the contract-runtime-api
// WIT interface, the narrower interface available to contract guests for
// chain management calls.
package contractruntime

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

// BlockHeight is the WIT record block-height.
type BlockHeight struct {
	Inner0 uint64
}

// Amount is the WIT record amount. Inner0 is the tuple (lower, upper) of
// the 128-bit atto count.
type Amount struct {
	Inner0 struct{ F0, F1 uint64 }
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

// MessageID is the WIT record message-id.
type MessageID struct {
	ChainID ChainID
	Height  BlockHeight
	Index   uint32
}

// CloseChainError is the WIT enum close-chain-error.
type CloseChainError uint8

const (
	CloseChainErrorNotPermitted CloseChainError = iota
)

// CloseChainErrorCases lists every close-chain-error case in declaration order.
var CloseChainErrorCases = [...]CloseChainError{CloseChainErrorNotPermitted}

func (e CloseChainError) String() string {
	if e == CloseChainErrorNotPermitted {
		return "not-permitted"
	}
	return "close-chain-error(" + strconv.Itoa(int(e)) + ")"
}

// ChangeApplicationPermissionsError is the WIT enum
// change-application-permissions-error.
type ChangeApplicationPermissionsError uint8

const (
	ChangeApplicationPermissionsErrorNotPermitted ChangeApplicationPermissionsError = iota
)

// ChangeApplicationPermissionsErrorCases lists every
// change-application-permissions-error case in declaration order.
var ChangeApplicationPermissionsErrorCases = [...]ChangeApplicationPermissionsError{
	ChangeApplicationPermissionsErrorNotPermitted,
}

func (e ChangeApplicationPermissionsError) String() string {
	if e == ChangeApplicationPermissionsErrorNotPermitted {
		return "not-permitted"
	}
	return "change-application-permissions-error(" + strconv.Itoa(int(e)) + ")"
}

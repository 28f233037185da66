// Package identifiers holds the host-side identifiers of chains, owners,
// modules, applications and messages.
package identifiers

import (
	"fmt"

	"github.com/wippyai/linera-bridge/base/crypto"
	"github.com/wippyai/linera-bridge/base/data"
	"github.com/wippyai/linera-bridge/base/vm"
)

// Owner identifies a user by the hash of their public key.
type Owner crypto.CryptoHash

func (o Owner) String() string { return crypto.CryptoHash(o).String() }

func (o Owner) MarshalText() ([]byte, error) { return crypto.CryptoHash(o).MarshalText() }

func (o *Owner) UnmarshalText(text []byte) error {
	return (*crypto.CryptoHash)(o).UnmarshalText(text)
}

// ChainID identifies a microchain by the hash of its description.
type ChainID crypto.CryptoHash

func (c ChainID) String() string { return crypto.CryptoHash(c).String() }

func (c ChainID) MarshalText() ([]byte, error) { return crypto.CryptoHash(c).MarshalText() }

func (c *ChainID) UnmarshalText(text []byte) error {
	return (*crypto.CryptoHash)(c).UnmarshalText(text)
}

// ModuleID names the contract and service bytecode blobs of an
// application module and the runtime that executes them.
type ModuleID struct {
	ContractBlobHash crypto.CryptoHash `yaml:"contract_blob_hash"`
	ServiceBlobHash  crypto.CryptoHash `yaml:"service_blob_hash"`
	VMRuntime        vm.VMRuntime      `yaml:"vm_runtime"`
}

// NewModuleID returns the module with the given blobs and runtime.
func NewModuleID(contractBlobHash, serviceBlobHash crypto.CryptoHash, runtime vm.VMRuntime) ModuleID {
	return ModuleID{
		ContractBlobHash: contractBlobHash,
		ServiceBlobHash:  serviceBlobHash,
		VMRuntime:        runtime,
	}
}

func (m ModuleID) String() string {
	return fmt.Sprintf("%s:%s:%s", m.ContractBlobHash, m.ServiceBlobHash, m.VMRuntime)
}

// ApplicationID identifies an application instance: its description hash
// and the module it runs.
type ApplicationID struct {
	ApplicationDescriptionHash crypto.CryptoHash `yaml:"application_description_hash"`
	ModuleID                   ModuleID          `yaml:"module_id"`
}

func (a ApplicationID) String() string {
	return a.ApplicationDescriptionHash.String()
}

// MessageID locates a message by the block that created it.
type MessageID struct {
	ChainID ChainID          `yaml:"chain_id"`
	Height  data.BlockHeight `yaml:"height"`
	Index   uint32           `yaml:"index"`
}

func (m MessageID) String() string {
	return fmt.Sprintf("%s:%d:%d", m.ChainID, m.Height, m.Index)
}

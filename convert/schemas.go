package convert

import (
	contractbase "github.com/wippyai/linera-bridge/bindings/contract/baseruntime"
	"github.com/wippyai/linera-bridge/bindings/contract/contractruntime"
	servicebase "github.com/wippyai/linera-bridge/bindings/service/baseruntime"
	"github.com/wippyai/linera-bridge/bindings/shape"
)

// Every schema instantiated against every conversion it carries. A wire
// record that drifts from its shape fails to compile here.
var (
	_ = CryptoHash[servicebase.CryptoHash]
	_ = Owner[servicebase.Owner]
	_ = ChainID[servicebase.ChainID]
	_ = AccountOwner[servicebase.AccountOwner]
	_ = Amount[servicebase.Amount]
	_ = BlockHeight[servicebase.BlockHeight]
	_ = Timestamp[servicebase.Timestamp]
	_ = TimeDelta[servicebase.TimeDelta]
	_ = VMRuntime[servicebase.VMRuntime]
	_ = ModuleID[servicebase.ModuleID]
	_ = ApplicationID[servicebase.ApplicationID]
	_ = TimeoutConfig[servicebase.TimeoutConfig]
	_ = ChainOwnership[servicebase.ChainOwnership]
	_ = HTTPHeader[servicebase.HTTPHeader]
	_ = HTTPResponse[servicebase.HTTPResponse]

	_ = CryptoHash[contractbase.CryptoHash]
	_ = Owner[contractbase.Owner]
	_ = ChainID[contractbase.ChainID]
	_ = AccountOwner[contractbase.AccountOwner]
	_ = Amount[contractbase.Amount]
	_ = BlockHeight[contractbase.BlockHeight]
	_ = Timestamp[contractbase.Timestamp]
	_ = TimeDelta[contractbase.TimeDelta]
	_ = VMRuntime[contractbase.VMRuntime]
	_ = ModuleID[contractbase.ModuleID]
	_ = ApplicationID[contractbase.ApplicationID]
	_ = TimeoutConfig[contractbase.TimeoutConfig]
	_ = ChainOwnership[contractbase.ChainOwnership]
	_ = HTTPHeader[contractbase.HTTPHeader]
	_ = HTTPResponse[contractbase.HTTPResponse]

	_ = CryptoHash[contractruntime.CryptoHash]
	_ = Owner[contractruntime.Owner]
	_ = ChainID[contractruntime.ChainID]
	_ = BlockHeight[contractruntime.BlockHeight]
	_ = Amount[contractruntime.Amount]
	_ = VMRuntime[contractruntime.VMRuntime]
	_ = ModuleID[contractruntime.ModuleID]
	_ = ApplicationID[contractruntime.ApplicationID]
	_ = MessageID[contractruntime.MessageID]
	_ = CloseChainError[contractruntime.CloseChainError]
	_ = ChangeApplicationPermissionsError[contractruntime.ChangeApplicationPermissionsError]
)

// Case counts handled by the enum switches. Extending a switch means
// bumping its count here.
const (
	vmRuntimeCaseCount                         = 2
	closeChainErrorCaseCount                   = 1
	changeApplicationPermissionsErrorCaseCount = 1
)

// Each index below is a constant that must be exactly zero. A wire enum
// with more cases than its switch handles indexes past the array; fewer
// cases or a renumbered discriminant goes negative or overflows uint8.
// Either way the package stops compiling.
var (
	_ = [1]struct{}{}[len(servicebase.VMRuntimeCases)-vmRuntimeCaseCount]
	_ = [1]struct{}{}[len(contractbase.VMRuntimeCases)-vmRuntimeCaseCount]
	_ = [1]struct{}{}[len(contractruntime.VMRuntimeCases)-vmRuntimeCaseCount]
	_ = [1]struct{}{}[len(contractruntime.CloseChainErrorCases)-closeChainErrorCaseCount]
	_ = [1]struct{}{}[len(contractruntime.ChangeApplicationPermissionsErrorCases)-changeApplicationPermissionsErrorCaseCount]

	_ = [1]struct{}{}[uint8(servicebase.VMRuntimeWasm)-shape.VMRuntimeWasm]
	_ = [1]struct{}{}[uint8(servicebase.VMRuntimeEvm)-shape.VMRuntimeEvm]
	_ = [1]struct{}{}[uint8(contractbase.VMRuntimeWasm)-shape.VMRuntimeWasm]
	_ = [1]struct{}{}[uint8(contractbase.VMRuntimeEvm)-shape.VMRuntimeEvm]
	_ = [1]struct{}{}[uint8(contractruntime.VMRuntimeWasm)-shape.VMRuntimeWasm]
	_ = [1]struct{}{}[uint8(contractruntime.VMRuntimeEvm)-shape.VMRuntimeEvm]
	_ = [1]struct{}{}[uint8(contractruntime.CloseChainErrorNotPermitted)-shape.NotPermitted]
	_ = [1]struct{}{}[uint8(contractruntime.ChangeApplicationPermissionsErrorNotPermitted)-shape.NotPermitted]
)

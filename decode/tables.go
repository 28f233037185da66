package decode

import (
	contractbase "github.com/wippyai/linera-bridge/bindings/contract/baseruntime"
	"github.com/wippyai/linera-bridge/bindings/contract/contractruntime"
	servicebase "github.com/wippyai/linera-bridge/bindings/service/baseruntime"
	"github.com/wippyai/linera-bridge/convert"
	"github.com/wippyai/linera-bridge/lift"
)

func serviceTable() Table {
	return Table{
		"crypto-hash":     lifted(lift.CryptoHash[servicebase.CryptoHash], convert.CryptoHash[servicebase.CryptoHash]),
		"owner":           lifted(lift.Owner[servicebase.Owner], convert.Owner[servicebase.Owner]),
		"chain-id":        lifted(lift.ChainID[servicebase.ChainID], convert.ChainID[servicebase.ChainID]),
		"account-owner":   lifted(lift.AccountOwner[servicebase.AccountOwner], convert.AccountOwner[servicebase.AccountOwner]),
		"amount":          lifted(lift.Amount[servicebase.Amount], convert.Amount[servicebase.Amount]),
		"block-height":    lifted(lift.BlockHeight[servicebase.BlockHeight], convert.BlockHeight[servicebase.BlockHeight]),
		"timestamp":       lifted(lift.Timestamp[servicebase.Timestamp], convert.Timestamp[servicebase.Timestamp]),
		"time-delta":      lifted(lift.TimeDelta[servicebase.TimeDelta], convert.TimeDelta[servicebase.TimeDelta]),
		"vm-runtime":      lifted(lift.VMRuntime[servicebase.VMRuntime], convert.VMRuntime[servicebase.VMRuntime]),
		"module-id":       lifted(lift.ModuleID[servicebase.ModuleID], convert.ModuleID[servicebase.ModuleID]),
		"application-id":  lifted(lift.ApplicationID[servicebase.ApplicationID], convert.ApplicationID[servicebase.ApplicationID]),
		"timeout-config":  lifted(lift.TimeoutConfig[servicebase.TimeoutConfig], convert.TimeoutConfig[servicebase.TimeoutConfig]),
		"chain-ownership": lifted(lift.ChainOwnership[servicebase.ChainOwnership], convert.ChainOwnership[servicebase.ChainOwnership]),
		"http-header":     checked(lift.HTTPHeader[servicebase.HTTPHeader], convert.HTTPHeader[servicebase.HTTPHeader]),
		"http-response":   checked(lift.HTTPResponse[servicebase.HTTPResponse], convert.HTTPResponse[servicebase.HTTPResponse]),
	}
}

func contractTable() Table {
	return Table{
		"crypto-hash":     lifted(lift.CryptoHash[contractbase.CryptoHash], convert.CryptoHash[contractbase.CryptoHash]),
		"owner":           lifted(lift.Owner[contractbase.Owner], convert.Owner[contractbase.Owner]),
		"chain-id":        lifted(lift.ChainID[contractbase.ChainID], convert.ChainID[contractbase.ChainID]),
		"account-owner":   lifted(lift.AccountOwner[contractbase.AccountOwner], convert.AccountOwner[contractbase.AccountOwner]),
		"amount":          lifted(lift.Amount[contractbase.Amount], convert.Amount[contractbase.Amount]),
		"block-height":    lifted(lift.BlockHeight[contractbase.BlockHeight], convert.BlockHeight[contractbase.BlockHeight]),
		"timestamp":       lifted(lift.Timestamp[contractbase.Timestamp], convert.Timestamp[contractbase.Timestamp]),
		"time-delta":      lifted(lift.TimeDelta[contractbase.TimeDelta], convert.TimeDelta[contractbase.TimeDelta]),
		"vm-runtime":      lifted(lift.VMRuntime[contractbase.VMRuntime], convert.VMRuntime[contractbase.VMRuntime]),
		"module-id":       lifted(lift.ModuleID[contractbase.ModuleID], convert.ModuleID[contractbase.ModuleID]),
		"application-id":  lifted(lift.ApplicationID[contractbase.ApplicationID], convert.ApplicationID[contractbase.ApplicationID]),
		"timeout-config":  lifted(lift.TimeoutConfig[contractbase.TimeoutConfig], convert.TimeoutConfig[contractbase.TimeoutConfig]),
		"chain-ownership": lifted(lift.ChainOwnership[contractbase.ChainOwnership], convert.ChainOwnership[contractbase.ChainOwnership]),
		"http-header":     checked(lift.HTTPHeader[contractbase.HTTPHeader], convert.HTTPHeader[contractbase.HTTPHeader]),
		"http-response":   checked(lift.HTTPResponse[contractbase.HTTPResponse], convert.HTTPResponse[contractbase.HTTPResponse]),
	}
}

func contractRuntimeTable() Table {
	return Table{
		"crypto-hash":    lifted(lift.CryptoHash[contractruntime.CryptoHash], convert.CryptoHash[contractruntime.CryptoHash]),
		"owner":          lifted(lift.Owner[contractruntime.Owner], convert.Owner[contractruntime.Owner]),
		"chain-id":       lifted(lift.ChainID[contractruntime.ChainID], convert.ChainID[contractruntime.ChainID]),
		"block-height":   lifted(lift.BlockHeight[contractruntime.BlockHeight], convert.BlockHeight[contractruntime.BlockHeight]),
		"amount":         lifted(lift.Amount[contractruntime.Amount], convert.Amount[contractruntime.Amount]),
		"vm-runtime":     lifted(lift.VMRuntime[contractruntime.VMRuntime], convert.VMRuntime[contractruntime.VMRuntime]),
		"module-id":      lifted(lift.ModuleID[contractruntime.ModuleID], convert.ModuleID[contractruntime.ModuleID]),
		"application-id": lifted(lift.ApplicationID[contractruntime.ApplicationID], convert.ApplicationID[contractruntime.ApplicationID]),
		"message-id":     lifted(lift.MessageID[contractruntime.MessageID], convert.MessageID[contractruntime.MessageID]),
		"close-chain-error": lifted(lift.CloseChainError[contractruntime.CloseChainError],
			convert.CloseChainError[contractruntime.CloseChainError]),
		"change-application-permissions-error": lifted(lift.ChangeApplicationPermissionsError[contractruntime.ChangeApplicationPermissionsError],
			convert.ChangeApplicationPermissionsError[contractruntime.ChangeApplicationPermissionsError]),
	}
}

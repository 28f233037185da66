package convert

import (
	"github.com/wippyai/linera-bridge/base/identifiers"
	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/errors"
)

func Owner[W shape.Owner[H], H shape.CryptoHash](w W) identifiers.Owner {
	return identifiers.Owner(CryptoHash(struct{ Inner0 H }(w).Inner0))
}

func ChainID[W shape.ChainID[H], H shape.CryptoHash](w W) identifiers.ChainID {
	return identifiers.ChainID(CryptoHash(struct{ Inner0 H }(w).Inner0))
}

func ModuleID[W shape.ModuleID[H, R], H shape.CryptoHash, R shape.Enum](w W) identifiers.ModuleID {
	m := struct {
		ContractBlobHash H
		ServiceBlobHash  H
		VMRuntime        R
	}(w)
	return identifiers.NewModuleID(
		CryptoHash(m.ContractBlobHash),
		CryptoHash(m.ServiceBlobHash),
		VMRuntime(m.VMRuntime),
	)
}

func ApplicationID[W shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](w W) identifiers.ApplicationID {
	a := struct {
		ApplicationDescriptionHash H
		ModuleID                   M
	}(w)
	return identifiers.ApplicationID{
		ApplicationDescriptionHash: CryptoHash(a.ApplicationDescriptionHash),
		ModuleID:                   ModuleID[M, H, R](a.ModuleID),
	}
}

// AccountOwner keeps the variant tag and converts its payload. A value
// with both or neither case set is not a valid wire variant and panics.
func AccountOwner[W shape.AccountOwner[O, A, H, M, R], O shape.Owner[H], A shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](w W) identifiers.AccountOwner {
	v := struct {
		User        *O
		Application *A
	}(w)
	switch {
	case v.User != nil && v.Application == nil:
		return identifiers.UserAccount{Owner: Owner[O, H](*v.User)}
	case v.Application != nil && v.User == nil:
		return identifiers.ApplicationAccount{ApplicationID: ApplicationID[A, H, M, R](*v.Application)}
	}
	panic(errors.Unreachable("account-owner", "user and application both set or both unset"))
}

func MessageID[W shape.MessageID[C, H, B], C shape.ChainID[H], H shape.CryptoHash, B shape.Counter](w W) identifiers.MessageID {
	m := struct {
		ChainID C
		Height  B
		Index   uint32
	}(w)
	return identifiers.MessageID{
		ChainID: ChainID[C, H](m.ChainID),
		Height:  BlockHeight(m.Height),
		Index:   m.Index,
	}
}

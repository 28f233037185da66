package lift

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/bindings/witdef"
)

func Owner[W shape.Owner[H], H shape.CryptoHash](r *Reader, addr uint32) (W, error) {
	w, err := owner[W, H](r, addr, []string{"owner"})
	return w, r.done(witdef.Owner, addr, err)
}

func ChainID[W shape.ChainID[H], H shape.CryptoHash](r *Reader, addr uint32) (W, error) {
	w, err := chainID[W, H](r, addr, []string{"chain-id"})
	return w, r.done(witdef.ChainID, addr, err)
}

func ModuleID[W shape.ModuleID[H, R], H shape.CryptoHash, R shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := moduleID[W, H, R](r, addr, []string{"module-id"})
	return w, r.done(witdef.ModuleID, addr, err)
}

func ApplicationID[W shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := applicationID[W, H, M, R](r, addr, []string{"application-id"})
	return w, r.done(witdef.ApplicationID, addr, err)
}

func AccountOwner[W shape.AccountOwner[O, A, H, M, R], O shape.Owner[H], A shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := accountOwner[W, O, A, H, M, R](r, addr, []string{"account-owner"})
	return w, r.done(witdef.AccountOwner, addr, err)
}

func MessageID[W shape.MessageID[C, H, B], C shape.ChainID[H], H shape.CryptoHash, B shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := messageID[W, C, H, B](r, addr, []string{"message-id"})
	return w, r.done(witdef.MessageID, addr, err)
}

func hashField[H shape.CryptoHash](r *Reader, def *wit.TypeDef, name string, addr uint32, path []string) (H, error) {
	fa, fp, err := r.field(addr, def, name, path)
	if err != nil {
		return H{}, err
	}
	return cryptoHash[H](r, fa, fp)
}

func owner[W shape.Owner[H], H shape.CryptoHash](r *Reader, addr uint32, path []string) (W, error) {
	h, err := hashField[H](r, witdef.Owner, "inner0", addr, path)
	if err != nil {
		return W{}, err
	}
	return W(struct{ Inner0 H }{h}), nil
}

func chainID[W shape.ChainID[H], H shape.CryptoHash](r *Reader, addr uint32, path []string) (W, error) {
	h, err := hashField[H](r, witdef.ChainID, "inner0", addr, path)
	if err != nil {
		return W{}, err
	}
	return W(struct{ Inner0 H }{h}), nil
}

func moduleID[W shape.ModuleID[H, R], H shape.CryptoHash, R shape.Enum](r *Reader, addr uint32, path []string) (W, error) {
	contract, err := hashField[H](r, witdef.ModuleID, "contract-blob-hash", addr, path)
	if err != nil {
		return W{}, err
	}
	service, err := hashField[H](r, witdef.ModuleID, "service-blob-hash", addr, path)
	if err != nil {
		return W{}, err
	}
	fa, fp, err := r.field(addr, witdef.ModuleID, "vm-runtime", path)
	if err != nil {
		return W{}, err
	}
	runtime, err := enum[R](r, witdef.VMRuntime, fa, fp)
	if err != nil {
		return W{}, err
	}
	return W(struct {
		ContractBlobHash H
		ServiceBlobHash  H
		VMRuntime        R
	}{contract, service, runtime}), nil
}

func applicationID[W shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](r *Reader, addr uint32, path []string) (W, error) {
	desc, err := hashField[H](r, witdef.ApplicationID, "application-description-hash", addr, path)
	if err != nil {
		return W{}, err
	}
	fa, fp, err := r.field(addr, witdef.ApplicationID, "module-id", path)
	if err != nil {
		return W{}, err
	}
	module, err := moduleID[M, H, R](r, fa, fp)
	if err != nil {
		return W{}, err
	}
	return W(struct {
		ApplicationDescriptionHash H
		ModuleID                   M
	}{desc, module}), nil
}

func accountOwner[W shape.AccountOwner[O, A, H, M, R], O shape.Owner[H], A shape.ApplicationID[H, M, R], H shape.CryptoHash, M shape.ModuleID[H, R], R shape.Enum](r *Reader, addr uint32, path []string) (W, error) {
	variant := witdef.AccountOwner.Kind.(*wit.Variant)
	disc, err := r.discriminant(addr, len(variant.Cases), "account-owner", path)
	if err != nil {
		return W{}, err
	}
	payload, err := r.at(addr, r.layouts.Calculate(witdef.AccountOwner).Payload, path)
	if err != nil {
		return W{}, err
	}

	var v struct {
		User        *O
		Application *A
	}
	casePath := sub(path, variant.Cases[disc].Name)
	switch disc {
	case 0:
		o, err := owner[O, H](r, payload, casePath)
		if err != nil {
			return W{}, err
		}
		v.User = &o
	case 1:
		a, err := applicationID[A, H, M, R](r, payload, casePath)
		if err != nil {
			return W{}, err
		}
		v.Application = &a
	}
	return W(v), nil
}

func messageID[W shape.MessageID[C, H, B], C shape.ChainID[H], H shape.CryptoHash, B shape.Counter](r *Reader, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, witdef.MessageID, "chain-id", path)
	if err != nil {
		return W{}, err
	}
	chain, err := chainID[C, H](r, fa, fp)
	if err != nil {
		return W{}, err
	}
	if fa, fp, err = r.field(addr, witdef.MessageID, "height", path); err != nil {
		return W{}, err
	}
	height, err := counter[B](r, witdef.BlockHeight, fa, fp)
	if err != nil {
		return W{}, err
	}
	if fa, fp, err = r.field(addr, witdef.MessageID, "index", path); err != nil {
		return W{}, err
	}
	idx, err := r.u32(fa, fp)
	if err != nil {
		return W{}, err
	}
	return W(struct {
		ChainID C
		Height  B
		Index   uint32
	}{chain, height, idx}), nil
}

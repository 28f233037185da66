package lift

import (
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/bindings/witdef"
	"github.com/wippyai/linera-bridge/errors"
)

var cryptoHashParts = [4]string{"part1", "part2", "part3", "part4"}

func CryptoHash[W shape.CryptoHash](r *Reader, addr uint32) (W, error) {
	w, err := cryptoHash[W](r, addr, []string{"crypto-hash"})
	return w, r.done(witdef.CryptoHash, addr, err)
}

func Amount[W shape.Amount](r *Reader, addr uint32) (W, error) {
	w, err := amount[W](r, addr, []string{"amount"})
	return w, r.done(witdef.Amount, addr, err)
}

func BlockHeight[W shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := counter[W](r, witdef.BlockHeight, addr, []string{"block-height"})
	return w, r.done(witdef.BlockHeight, addr, err)
}

func Timestamp[W shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := counter[W](r, witdef.Timestamp, addr, []string{"timestamp"})
	return w, r.done(witdef.Timestamp, addr, err)
}

func TimeDelta[W shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := counter[W](r, witdef.TimeDelta, addr, []string{"time-delta"})
	return w, r.done(witdef.TimeDelta, addr, err)
}

func VMRuntime[W shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := enum[W](r, witdef.VMRuntime, addr, []string{"vm-runtime"})
	return w, r.done(witdef.VMRuntime, addr, err)
}

func CloseChainError[W shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := enum[W](r, witdef.CloseChainError, addr, []string{"close-chain-error"})
	return w, r.done(witdef.CloseChainError, addr, err)
}

func ChangeApplicationPermissionsError[W shape.Enum](r *Reader, addr uint32) (W, error) {
	w, err := enum[W](r, witdef.ChangeApplicationPermissionsError, addr, []string{"change-application-permissions-error"})
	return w, r.done(witdef.ChangeApplicationPermissionsError, addr, err)
}

func cryptoHash[W shape.CryptoHash](r *Reader, addr uint32, path []string) (W, error) {
	var parts [4]uint64
	for i, name := range cryptoHashParts {
		fa, fp, err := r.field(addr, witdef.CryptoHash, name, path)
		if err != nil {
			return W{}, err
		}
		if parts[i], err = r.u64(fa, fp); err != nil {
			return W{}, err
		}
	}
	return W(struct{ Part1, Part2, Part3, Part4 uint64 }{parts[0], parts[1], parts[2], parts[3]}), nil
}

func amount[W shape.Amount](r *Reader, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, witdef.Amount, "inner0", path)
	if err != nil {
		return W{}, err
	}
	offs := r.layouts.Calculate(witdef.AmountHalves).Elems

	var halves [2]uint64
	for i, off := range offs {
		ep := index(fp, uint32(i))
		ea, err := r.at(fa, off, ep)
		if err != nil {
			return W{}, err
		}
		if halves[i], err = r.u64(ea, ep); err != nil {
			return W{}, err
		}
	}
	return W(struct{ Inner0 struct{ F0, F1 uint64 } }{struct{ F0, F1 uint64 }{halves[0], halves[1]}}), nil
}

func counter[W shape.Counter](r *Reader, def *wit.TypeDef, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, def, "inner0", path)
	if err != nil {
		return W{}, err
	}
	v, err := r.u64(fa, fp)
	if err != nil {
		return W{}, err
	}
	return W(struct{ Inner0 uint64 }{v}), nil
}

func enum[W shape.Enum](r *Reader, def *wit.TypeDef, addr uint32, path []string) (W, error) {
	cases := len(def.Kind.(*wit.Enum).Cases)
	v, err := r.u8(addr, path)
	if err != nil {
		return 0, err
	}
	if int(v) >= cases {
		return 0, errors.InvalidEnum(errors.PhaseLift, path, v, witdef.Name(def))
	}
	return W(v), nil
}

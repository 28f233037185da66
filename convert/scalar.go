package convert

import (
	"github.com/holiman/uint256"

	"github.com/wippyai/linera-bridge/base/crypto"
	"github.com/wippyai/linera-bridge/base/data"
	"github.com/wippyai/linera-bridge/base/vm"
	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/errors"
)

// CryptoHash rebuilds a hash from its four parts, Part1 first.
func CryptoHash[W shape.CryptoHash](w W) crypto.CryptoHash {
	p := struct{ Part1, Part2, Part3, Part4 uint64 }(w)
	return crypto.CryptoHashFromU64s([4]uint64{p.Part1, p.Part2, p.Part3, p.Part4})
}

// Amount rebuilds the 128-bit atto count (upper << 64) | lower.
func Amount[W shape.Amount](w W) data.Amount {
	halves := struct{ Inner0 struct{ F0, F1 uint64 } }(w).Inner0

	// Widen before shifting.
	var attos uint256.Int
	attos.SetUint64(halves.F1)
	attos.Lsh(&attos, 64)
	attos.Or(&attos, uint256.NewInt(halves.F0))

	amount, err := data.AmountFromAttos(&attos)
	if err != nil {
		// two u64 halves never exceed 128 bits
		panic(err)
	}
	return amount
}

// BlockHeight rewraps the height ordinal.
func BlockHeight[W shape.Counter](w W) data.BlockHeight {
	return data.BlockHeight(struct{ Inner0 uint64 }(w).Inner0)
}

// Timestamp rewraps microseconds since the epoch.
func Timestamp[W shape.Counter](w W) data.Timestamp {
	return data.TimestampFromMicros(struct{ Inner0 uint64 }(w).Inner0)
}

// TimeDelta rewraps a duration in microseconds.
func TimeDelta[W shape.Counter](w W) data.TimeDelta {
	return data.TimeDeltaFromMicros(struct{ Inner0 uint64 }(w).Inner0)
}

// VMRuntime maps the vm-runtime enum.
func VMRuntime[W shape.Enum](w W) vm.VMRuntime {
	switch uint8(w) {
	case shape.VMRuntimeWasm:
		return vm.VMRuntimeWasm
	case shape.VMRuntimeEvm:
		return vm.VMRuntimeEvm
	}
	panic(errors.Unreachable("vm-runtime", uint8(w)))
}

// Package vm names the execution engines an application module can target.
package vm

import (
	"strconv"

	"github.com/wippyai/linera-bridge/errors"
)

// VMRuntime selects how a module's bytecode is executed.
type VMRuntime uint8

const (
	// VMRuntimeWasm runs WebAssembly bytecode in an interpreter or JIT.
	VMRuntimeWasm VMRuntime = iota
	// VMRuntimeEvm runs EVM bytecode.
	VMRuntimeEvm
)

var vmRuntimeNames = [...]string{
	VMRuntimeWasm: "Wasm",
	VMRuntimeEvm:  "Evm",
}

func (r VMRuntime) String() string {
	if int(r) < len(vmRuntimeNames) {
		return vmRuntimeNames[r]
	}
	return "VMRuntime(" + strconv.Itoa(int(r)) + ")"
}

// ParseVMRuntime accepts the names String produces.
func ParseVMRuntime(s string) (VMRuntime, error) {
	for i, name := range vmRuntimeNames {
		if name == s {
			return VMRuntime(i), nil
		}
	}
	return 0, errors.InvalidEnum(errors.PhaseValidate, nil, s, "vm-runtime")
}

func (r VMRuntime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *VMRuntime) UnmarshalText(text []byte) error {
	parsed, err := ParseVMRuntime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

package main

import (
	"bytes"
	"context"
	"os"
	"strconv"

	linerabridge "github.com/wippyai/linera-bridge"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/guest"
	"github.com/wippyai/linera-bridge/lift"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

// source is the memory values are decoded from: a raw dump or the linear
// memory of a running guest.
type source struct {
	name string
	mem  linerabridge.Memory
	inst *guest.Instance
}

// openSource opens path as a guest module when it starts with the wasm
// magic, otherwise as a raw memory dump.
func openSource(ctx context.Context, path string, limitPages uint32) (*source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "read "+path)
	}
	if !bytes.HasPrefix(data, wasmMagic) {
		return &source{name: path, mem: lift.ByteMemory(data)}, nil
	}

	inst, err := guest.Load(ctx, data, guest.Config{Name: path, MemoryLimitPages: limitPages})
	if err != nil {
		return nil, err
	}
	return &source{name: path, mem: inst.Memory(), inst: inst}, nil
}

func (s *source) isGuest() bool {
	return s.inst != nil
}

// exports lists the guest exports that return an address.
func (s *source) exports() []string {
	if s.inst == nil {
		return nil
	}
	return s.inst.RetptrExports()
}

// resolve turns an address argument into an address. Numbers are taken
// as is, in any base strconv accepts; any other text names a guest export
// that is called for its return pointer.
func (s *source) resolve(ctx context.Context, arg string) (uint32, error) {
	if addr, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return uint32(addr), nil
	}
	if s.inst == nil {
		return 0, errors.InvalidInput(errors.PhaseConfig, "address "+strconv.Quote(arg)+" is not a number")
	}
	return s.inst.CallRetptr(ctx, arg)
}

func (s *source) Close(ctx context.Context) error {
	if s.inst == nil {
		return nil
	}
	return s.inst.Close(ctx)
}

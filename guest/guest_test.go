package guest

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/wippyai/linera-bridge/bindings/contract/contractruntime"
	"github.com/wippyai/linera-bridge/convert"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/lift"
)

const valueAddr = 64

func section(id byte, contents ...byte) []byte {
	return append([]byte{id, byte(len(contents))}, contents...)
}

func name(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// testModule builds a core module with one page of exported memory
// holding data at valueAddr, a "value" export returning valueAddr, a
// "trap" export and an "add" export taking parameters.
func testModule(data []byte) []byte {
	i32ConstAddr := []byte{0x41, 0xc0, 0x00} // i32.const 64

	return concat(
		[]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00},
		// types: () -> i32, (i32, i32) -> i32
		section(0x01, 0x02, 0x60, 0x00, 0x01, 0x7f, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f),
		section(0x03, 0x03, 0x00, 0x00, 0x01),
		section(0x05, 0x01, 0x00, 0x01),
		section(0x07, concat(
			[]byte{0x04},
			name("memory"), []byte{0x02, 0x00},
			name("value"), []byte{0x00, 0x00},
			name("trap"), []byte{0x00, 0x01},
			name("add"), []byte{0x00, 0x02},
		)...),
		section(0x0a, concat(
			[]byte{0x03},
			[]byte{0x05, 0x00}, i32ConstAddr, []byte{0x0b},
			[]byte{0x03, 0x00, 0x00, 0x0b},
			[]byte{0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b},
		)...),
		section(0x0b, concat(
			[]byte{0x01, 0x00}, i32ConstAddr, []byte{0x0b, byte(len(data))}, data,
		)...),
	)
}

func messageIDBytes() []byte {
	data := make([]byte, 48)
	binary.LittleEndian.PutUint64(data[0:], 0xaabbccdd)
	binary.LittleEndian.PutUint64(data[32:], 17)
	binary.LittleEndian.PutUint32(data[40:], 2)
	return data
}

func TestLoadAndLift(t *testing.T) {
	ctx := context.Background()
	inst, err := Load(ctx, testModule(messageIDBytes()), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	addr, err := inst.CallRetptr(ctx, "value")
	if err != nil {
		t.Fatalf("CallRetptr: %v", err)
	}
	if addr != valueAddr {
		t.Fatalf("addr = %d, want %d", addr, valueAddr)
	}

	w, err := lift.MessageID[contractruntime.MessageID](lift.NewReader(inst.Memory()), addr)
	if err != nil {
		t.Fatalf("lift: %v", err)
	}
	id := convert.MessageID(w)
	if id.Height != 17 || id.Index != 2 {
		t.Errorf("MessageID = %+v", id)
	}
	if got := id.ChainID; got[7] != 0xdd || got[4] != 0xaa {
		t.Errorf("chain id = %s", got)
	}
}

func TestRetptrExports(t *testing.T) {
	ctx := context.Background()
	inst, err := Load(ctx, testModule(nil), Config{Name: "exports"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	got := inst.RetptrExports()
	if len(got) != 2 || got[0] != "trap" || got[1] != "value" {
		t.Errorf("RetptrExports() = %v, want [trap value]", got)
	}
}

func TestCallErrors(t *testing.T) {
	ctx := context.Background()
	inst, err := Load(ctx, testModule(nil), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	tests := []struct {
		export string
		phase  errors.Phase
		kind   errors.Kind
	}{
		{"missing", errors.PhaseRuntime, errors.KindNotFound},
		{"add", errors.PhaseRuntime, errors.KindUnsupported},
		{"trap", errors.PhaseRuntime, errors.KindInvalidData},
	}

	for _, tt := range tests {
		t.Run(tt.export, func(t *testing.T) {
			_, err := inst.CallRetptr(ctx, tt.export)
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error = %v, want *errors.Error", err)
			}
			if e.Phase != tt.phase || e.Kind != tt.kind {
				t.Errorf("error = %v, want [%s] %s", err, tt.phase, tt.kind)
			}
		})
	}
}

func TestMemoryBounds(t *testing.T) {
	ctx := context.Background()
	inst, err := Load(ctx, testModule([]byte{1, 2, 3, 4}), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer inst.Close(ctx)

	mem := inst.Memory()
	if mem.Size() != 65536 {
		t.Errorf("Size() = %d", mem.Size())
	}
	if v, err := mem.ReadU32(valueAddr); err != nil || v != 0x04030201 {
		t.Errorf("ReadU32 = %#x, %v", v, err)
	}
	if _, err := mem.ReadU64(65532); err == nil {
		t.Error("ReadU64 past end succeeded")
	}
	snap := mem.Snapshot()
	if len(snap) != 65536 || snap[valueAddr] != 1 {
		t.Errorf("snapshot len %d", len(snap))
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, []byte("not wasm"), Config{})
	if e, ok := err.(*errors.Error); !ok || e.Phase != errors.PhaseLoad {
		t.Errorf("invalid binary error = %v", err)
	}

	header := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	_, err = Load(ctx, header, Config{})
	if e, ok := err.(*errors.Error); !ok || e.Kind != errors.KindNotFound {
		t.Errorf("missing memory error = %v", err)
	}

	// Two pages requested, one allowed.
	big := concat(
		header,
		section(0x05, 0x01, 0x00, 0x02),
		section(0x07, concat([]byte{0x01}, name("memory"), []byte{0x02, 0x00})...),
	)
	if inst, err := Load(ctx, big, Config{}); err != nil {
		t.Fatalf("Load without limit: %v", err)
	} else {
		inst.Close(ctx)
	}
	_, err = Load(ctx, big, Config{MemoryLimitPages: 1})
	if e, ok := err.(*errors.Error); !ok || e.Phase != errors.PhaseLoad {
		t.Errorf("memory limit error = %v", err)
	}
}

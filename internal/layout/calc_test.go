package layout

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/linera-bridge/bindings/witdef"
)

func TestCalculatePrimitives(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		typ   wit.Type
		name  string
		size  uint32
		align uint32
	}{
		{wit.Bool{}, "bool", 1, 1},
		{wit.U8{}, "u8", 1, 1},
		{wit.U16{}, "u16", 2, 2},
		{wit.U32{}, "u32", 4, 4},
		{wit.U64{}, "u64", 8, 8},
		{wit.String{}, "string", 8, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := c.Calculate(tc.typ)
			if info.Size != tc.size {
				t.Errorf("size: got %d, want %d", info.Size, tc.size)
			}
			if info.Align != tc.align {
				t.Errorf("align: got %d, want %d", info.Align, tc.align)
			}
		})
	}
}

func TestWireRecordLayouts(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		def   *wit.TypeDef
		size  uint32
		align uint32
		offs  map[string]uint32
	}{
		{witdef.CryptoHash, 32, 8, map[string]uint32{"part1": 0, "part2": 8, "part3": 16, "part4": 24}},
		{witdef.Owner, 32, 8, map[string]uint32{"inner0": 0}},
		{witdef.Amount, 16, 8, map[string]uint32{"inner0": 0}},
		{witdef.BlockHeight, 8, 8, map[string]uint32{"inner0": 0}},
		{witdef.VMRuntime, 1, 1, nil},
		{witdef.ModuleID, 72, 8, map[string]uint32{"contract-blob-hash": 0, "service-blob-hash": 32, "vm-runtime": 64}},
		{witdef.ApplicationID, 104, 8, map[string]uint32{"application-description-hash": 0, "module-id": 32}},
		{witdef.MessageID, 48, 8, map[string]uint32{"chain-id": 0, "height": 32, "index": 40}},
		{witdef.TimeoutConfig, 40, 8, map[string]uint32{
			"fast-round-duration": 0, "base-timeout": 16, "timeout-increment": 24, "fallback-duration": 32,
		}},
		{witdef.ChainOwnership, 64, 8, map[string]uint32{
			"super-owners": 0, "owners": 8, "multi-leader-rounds": 16, "open-multi-leader-rounds": 20, "timeout-config": 24,
		}},
		{witdef.HTTPHeader, 16, 4, map[string]uint32{"name": 0, "value": 8}},
		{witdef.HTTPResponse, 20, 4, map[string]uint32{"status": 0, "headers": 4, "body": 12}},
		{witdef.CloseChainError, 1, 1, nil},
	}

	for _, tc := range tests {
		t.Run(witdef.Name(tc.def), func(t *testing.T) {
			info := c.Calculate(tc.def)
			if info.Size != tc.size || info.Align != tc.align {
				t.Errorf("size/align: got %d/%d, want %d/%d", info.Size, info.Align, tc.size, tc.align)
			}
			for name, want := range tc.offs {
				got, ok := info.Fields[name]
				if !ok {
					t.Errorf("field %s missing", name)
					continue
				}
				if got != want {
					t.Errorf("field %s offset: got %d, want %d", name, got, want)
				}
			}
		})
	}
}

func TestVariantAndOptionPayload(t *testing.T) {
	c := NewCalculator()

	owner := c.Calculate(witdef.AccountOwner)
	if owner.Tag != 1 || owner.Payload != 8 || owner.Size != 112 {
		t.Errorf("account-owner: disc %d payload %d size %d, want 1 8 112", owner.Tag, owner.Payload, owner.Size)
	}

	fast := c.Calculate(witdef.FastRoundDuration)
	if fast.Payload != 8 || fast.Size != 16 {
		t.Errorf("option<time-delta>: payload %d size %d, want 8 16", fast.Payload, fast.Size)
	}

	halves := c.Calculate(witdef.AmountHalves)
	if len(halves.Elems) != 2 || halves.Elems[0] != 0 || halves.Elems[1] != 8 {
		t.Errorf("tuple<u64, u64> offsets = %v", halves.Elems)
	}

	pair := c.Calculate(witdef.OwnerWeight)
	if pair.Size != 40 || pair.Elems[1] != 32 {
		t.Errorf("tuple<owner, u64>: size %d offsets %v", pair.Size, pair.Elems)
	}
}

func TestCalculatorCaches(t *testing.T) {
	c := NewCalculator()
	first := c.Calculate(witdef.ChainOwnership)
	if _, ok := c.seen[witdef.ChainOwnership]; !ok {
		t.Fatal("layout not cached")
	}
	second := c.Calculate(witdef.ChainOwnership)
	if first.Size != second.Size {
		t.Errorf("cached size %d != %d", second.Size, first.Size)
	}
}

func TestEdgeLayouts(t *testing.T) {
	c := NewCalculator()

	emptyRecord := &wit.TypeDef{Kind: &wit.Record{}}
	if info := c.Calculate(emptyRecord); info.Size != 0 || info.Align != 1 || len(info.Fields) != 0 {
		t.Errorf("empty record = %+v", info)
	}

	optByte := &wit.TypeDef{Kind: &wit.Option{Type: wit.U8{}}}
	if info := c.Calculate(optByte); info.Size != 2 || info.Payload != 1 || info.Tag != 1 {
		t.Errorf("option<u8> = %+v", info)
	}

	noPayload := &wit.TypeDef{Kind: &wit.Variant{Cases: []wit.Case{{Name: "a"}, {Name: "b"}}}}
	if info := c.Calculate(noPayload); info.Size != 1 || info.Align != 1 {
		t.Errorf("payload-free variant = %+v", info)
	}

	if info := c.Calculate(nil); info.Size != 0 || info.Align != 1 {
		t.Errorf("nil type = %+v", info)
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct{ off, align, want uint32 }{
		{0, 8, 0}, {1, 8, 8}, {8, 8, 8}, {5, 4, 8}, {3, 0, 3}, {21, 1, 21},
	}
	for _, tc := range tests {
		if got := AlignTo(tc.off, tc.align); got != tc.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tc.off, tc.align, got, tc.want)
		}
	}
}

func TestSafeArithmetic(t *testing.T) {
	if _, ok := SafeMulU32(1<<20, 1<<20); ok {
		t.Error("SafeMulU32 overflow not detected")
	}
	if v, ok := SafeMulU32(40, 3); !ok || v != 120 {
		t.Errorf("SafeMulU32(40, 3) = %d, %v", v, ok)
	}
	if _, ok := SafeAddU32(^uint32(0), 1); ok {
		t.Error("SafeAddU32 overflow not detected")
	}
}

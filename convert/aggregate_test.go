package convert

import (
	"testing"

	"github.com/wippyai/linera-bridge/base/identifiers"
	contractbase "github.com/wippyai/linera-bridge/bindings/contract/baseruntime"
	servicebase "github.com/wippyai/linera-bridge/bindings/service/baseruntime"
	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/errors"
)

func testTimeoutConfig[W shape.TimeoutConfig[D], D shape.Counter](t *testing.T) {
	delta := func(micros uint64) D { return D(struct{ Inner0 uint64 }{micros}) }
	wire := func(fast *D) W {
		return W(struct {
			FastRoundDuration *D
			BaseTimeout       D
			TimeoutIncrement  D
			FallbackDuration  D
		}{fast, delta(10), delta(20), delta(30)})
	}

	t.Run("absent fast round", func(t *testing.T) {
		cfg := TimeoutConfig(wire(nil))
		if cfg.FastRoundDuration != nil {
			t.Errorf("FastRoundDuration = %v, want nil", *cfg.FastRoundDuration)
		}
		if cfg.BaseTimeout.Micros() != 10 || cfg.TimeoutIncrement.Micros() != 20 || cfg.FallbackDuration.Micros() != 30 {
			t.Errorf("durations = %+v", cfg)
		}
	})

	t.Run("zero fast round", func(t *testing.T) {
		zero := delta(0)
		cfg := TimeoutConfig(wire(&zero))
		if cfg.FastRoundDuration == nil || cfg.FastRoundDuration.Micros() != 0 {
			t.Errorf("FastRoundDuration = %v, want present zero", cfg.FastRoundDuration)
		}
	})
}

func TestTimeoutConfig(t *testing.T) {
	t.Run("service", testTimeoutConfig[servicebase.TimeoutConfig])
	t.Run("contract", testTimeoutConfig[contractbase.TimeoutConfig])
}

// weighted zips owners with weights into the wire list<tuple<owner, u64>>.
func weighted[O any](owners []O, weights ...uint64) []struct {
	F0 O
	F1 uint64
} {
	pairs := make([]struct {
		F0 O
		F1 uint64
	}, len(owners))
	for i, o := range owners {
		pairs[i].F0 = o
		pairs[i].F1 = weights[i]
	}
	return pairs
}

func testChainOwnership[W shape.ChainOwnership[O, H, T, D], O shape.Owner[H], H shape.CryptoHash, T shape.TimeoutConfig[D], D shape.Counter](t *testing.T) {
	a, b := wireOwner[O, H](1), wireOwner[O, H](100)
	ownerA, ownerB := Owner[O, H](a), Owner[O, H](b)

	wire := func(supers []O, pairs []struct {
		F0 O
		F1 uint64
	}) W {
		return W(struct {
			SuperOwners []O
			Owners      []struct {
				F0 O
				F1 uint64
			}
			MultiLeaderRounds     uint32
			OpenMultiLeaderRounds bool
			TimeoutConfig         T
		}{supers, pairs, 7, true, T{}})
	}

	tests := []struct {
		name  string
		pairs []struct {
			F0 O
			F1 uint64
		}
		want map[identifiers.Owner]uint64
	}{
		{"ordered", weighted([]O{a, b}, 3, 5), map[identifiers.Owner]uint64{ownerA: 3, ownerB: 5}},
		{"reversed", weighted([]O{b, a}, 5, 3), map[identifiers.Owner]uint64{ownerA: 3, ownerB: 5}},
		{"duplicate last write wins", weighted([]O{a, a}, 3, 5), map[identifiers.Owner]uint64{ownerA: 5}},
		{"empty", nil, map[identifiers.Owner]uint64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChainOwnership(wire([]O{b}, tt.pairs))
			if len(got.Owners) != len(tt.want) {
				t.Fatalf("Owners = %v, want %v", got.Owners, tt.want)
			}
			for owner, weight := range tt.want {
				if got.Owners[owner] != weight {
					t.Errorf("Owners[%s] = %d, want %d", owner, got.Owners[owner], weight)
				}
			}
			if got.Owners == nil {
				t.Error("Owners is nil")
			}
		})
	}

	got := ChainOwnership(wire([]O{a, b, a}, nil))
	if len(got.SuperOwners) != 2 {
		t.Errorf("SuperOwners = %v, want 2 entries", got.SuperOwners)
	}
	if got.MultiLeaderRounds != 7 || !got.OpenMultiLeaderRounds {
		t.Errorf("rounds = %d, %v", got.MultiLeaderRounds, got.OpenMultiLeaderRounds)
	}
	if got.TimeoutConfig.FastRoundDuration != nil {
		t.Error("zero wire timeout config gained a fast round")
	}
}

func TestChainOwnership(t *testing.T) {
	t.Run("service", testChainOwnership[servicebase.ChainOwnership])
	t.Run("contract", testChainOwnership[contractbase.ChainOwnership])
}

func testHTTPResponse[W shape.HTTPResponse[Hd], Hd shape.HTTPHeader](t *testing.T) {
	header := func(name, value string) Hd {
		return Hd(struct {
			Name  string
			Value []byte
		}{name, []byte(value)})
	}
	response := func(headers ...Hd) W {
		return W(struct {
			Status  uint16
			Headers []Hd
			Body    []byte
		}{201, headers, []byte("body")})
	}

	t.Run("order preserved", func(t *testing.T) {
		got, err := HTTPResponse(response(header("a", "1"), header("b", "2")))
		if err != nil {
			t.Fatalf("HTTPResponse: %v", err)
		}
		if got.Status != 201 || string(got.Body) != "body" {
			t.Errorf("response = %+v", got)
		}
		if len(got.Headers) != 2 {
			t.Fatalf("headers = %+v", got.Headers)
		}
		for i, want := range [][2]string{{"a", "1"}, {"b", "2"}} {
			if got.Headers[i].Name != want[0] || string(got.Headers[i].Value) != want[1] {
				t.Errorf("header %d = %s: %s, want %s: %s", i, got.Headers[i].Name, got.Headers[i].Value, want[0], want[1])
			}
		}
	})

	t.Run("no headers", func(t *testing.T) {
		got, err := HTTPResponse(response())
		if err != nil {
			t.Fatalf("HTTPResponse: %v", err)
		}
		if len(got.Headers) != 0 {
			t.Errorf("headers = %+v", got.Headers)
		}
	})

	t.Run("header error unchanged", func(t *testing.T) {
		_, wantErr := HTTPHeader(header("bad name", "x"))
		if wantErr == nil {
			t.Fatal("HTTPHeader accepted an invalid name")
		}
		_, err := HTTPResponse(response(header("a", "1"), header("bad name", "x"), header("also bad", "y")))
		if err == nil {
			t.Fatal("HTTPResponse accepted an invalid header")
		}
		e, ok := err.(*errors.Error)
		if !ok || e.Kind != errors.KindInvalidHeader || e.Phase != errors.PhaseValidate {
			t.Fatalf("error = %v, want the header validation error", err)
		}
		if err.Error() != wantErr.Error() {
			t.Errorf("error = %q, want %q", err, wantErr)
		}
	})
}

func TestHTTPResponse(t *testing.T) {
	t.Run("service", testHTTPResponse[servicebase.HTTPResponse])
	t.Run("contract", testHTTPResponse[contractbase.HTTPResponse])
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "path and type",
			err: &Error{
				Phase:  PhaseLift,
				Kind:   KindInvalidVariant,
				Path:   []string{"chain-ownership", "timeout-config", "fast-round-duration"},
				Type:   "option<time-delta>",
				Detail: "tag 2, type has 2 cases",
			},
			want: "lift/invalid_variant at chain-ownership.timeout-config.fast-round-duration <option<time-delta>>: tag 2, type has 2 cases",
		},
		{
			name: "bare",
			err:  &Error{Phase: PhaseConvert, Kind: KindUnreachable},
			want: "convert/unreachable",
		},
		{
			name: "type only",
			err:  &Error{Phase: PhaseLift, Kind: KindOverflow, Type: "list<u8>", Detail: "too long"},
			want: "lift/overflow <list<u8>>: too long",
		},
		{
			name: "cause",
			err:  &Error{Phase: PhaseLoad, Kind: KindInvalidData, Detail: "compile module", Cause: errors.New("bad magic")},
			want: "load/invalid_data: compile module: bad magic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := OutOfBounds([]string{"owner"}, 10, 32)

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"phase and kind", &Error{Phase: PhaseLift, Kind: KindOutOfBounds}, true},
		{"kind only", &Error{Kind: KindOutOfBounds}, true},
		{"phase only", &Error{Phase: PhaseLift}, true},
		{"other phase", &Error{Phase: PhaseConvert, Kind: KindOutOfBounds}, false},
		{"other kind", &Error{Phase: PhaseLift, Kind: KindInvalidUTF8}, false},
		{"plain error", errors.New("out_of_bounds"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnwrapAndAs(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseRuntime, KindInvalidData, cause, "call value")
	if !errors.Is(err, cause) {
		t.Error("cause not found through Unwrap")
	}

	wrapped := fmt.Errorf("decode: %w", err)
	e, ok := As(wrapped)
	if !ok || e != err {
		t.Fatalf("As(%v) = %v, %v", wrapped, e, ok)
	}
	if KindOf(wrapped) != KindInvalidData {
		t.Errorf("KindOf = %q", KindOf(wrapped))
	}
	if KindOf(cause) != "" {
		t.Errorf("KindOf(plain) = %q", KindOf(cause))
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	b := New(PhaseLift, KindOverflow).
		At("http-response", "headers").
		Type("list<http-header>").
		Value(uint32(1 << 28)).
		Cause(cause).
		Detail("length %d exceeds %d", 1<<28, 1<<27)
	err := b.Build()

	if err.Phase != PhaseLift || err.Kind != KindOverflow {
		t.Errorf("Phase/Kind = %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[1] != "headers" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Type != "list<http-header>" || err.Value != uint32(1<<28) {
		t.Errorf("Type/Value = %q/%v", err.Type, err.Value)
	}
	if err.Detail != "length 268435456 exceeds 134217728" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v", err.Cause)
	}

	// Each Build returns its own copy.
	again := b.At("other").Build()
	if err.Path[0] != "http-response" || again.Path[0] != "other" {
		t.Errorf("builds share state: %v %v", err.Path, again.Path)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
		value any
	}{
		{"OutOfBounds", OutOfBounds([]string{"crypto-hash"}, 65530, 32), PhaseLift, KindOutOfBounds, uint32(65530)},
		{"InvalidUTF8", InvalidUTF8([]string{"name"}, []byte{0xff, 0xfe}), PhaseLift, KindInvalidUTF8, nil},
		{"InvalidDiscriminant", InvalidDiscriminant([]string{"account-owner"}, "account-owner", 5, 2), PhaseLift, KindInvalidVariant, uint8(5)},
		{"InvalidEnum", InvalidEnum(PhaseValidate, nil, "jvm", "vm-runtime"), PhaseValidate, KindInvalidEnum, "jvm"},
		{"Overflow", Overflow(PhaseValidate, nil, "2^130", "amount"), PhaseValidate, KindOverflow, "2^130"},
		{"InvalidHeader", InvalidHeader("bad name", "name is not a valid token"), PhaseValidate, KindInvalidHeader, "bad name"},
		{"Unreachable", Unreachable("vm-runtime", uint8(2)), PhaseConvert, KindUnreachable, uint8(2)},
		{"NotFound", NotFound(PhaseConfig, "schema", "oracle"), PhaseConfig, KindNotFound, "oracle"},
		{"Unsupported", Unsupported(PhaseRuntime, "export takes parameters"), PhaseRuntime, KindUnsupported, nil},
		{"InvalidInput", InvalidInput(PhaseConfig, "no address"), PhaseConfig, KindInvalidInput, nil},
		{"Load", Load("compile module", errors.New("bad magic")), PhaseLoad, KindInvalidData, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase || tt.err.Kind != tt.kind {
				t.Errorf("got %s/%s, want %s/%s", tt.err.Phase, tt.err.Kind, tt.phase, tt.kind)
			}
			if tt.err.Value != tt.value {
				t.Errorf("Value = %#v, want %#v", tt.err.Value, tt.value)
			}
			if tt.err.Detail == "" {
				t.Error("empty Detail")
			}
		})
	}
}

func TestConstructorDetails(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{OutOfBounds(nil, 0x10, 8), "8 bytes at 0x10 past end of memory"},
		{InvalidUTF8(nil, []byte("\xff\xfe")), "bytes fffe"},
		{InvalidUTF8(nil, make([]byte, 40)), "bytes 00000000000000000000000000000000"},
		{InvalidDiscriminant(nil, "account-owner", 7, 2), "tag 7, type has 2 cases"},
		{InvalidHeader("a b", "name is not a valid token"), `header "a b": name is not a valid token`},
		{NotFound(PhaseRuntime, "export", "run"), `no export "run"`},
		{Unsupported(PhaseConfig, "100% of %s"), "100% of %s"},
		{InvalidInput(PhaseConfig, "addr %d"), "addr %d"},
		{Wrap(PhaseLoad, KindInvalidData, nil, "50%x"), "50%x"},
		{Load("bad %v", nil), "bad %v"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.err.Detail != tt.want {
				t.Errorf("Detail = %q, want %q", tt.err.Detail, tt.want)
			}
		})
	}
}

package data

import (
	"math"
	"strings"

	"github.com/holiman/uint256"

	"github.com/wippyai/linera-bridge/errors"
)

// DecimalPlaces is the number of atto digits in one token.
const DecimalPlaces = 18

const attosPerToken = 1_000_000_000_000_000_000

// Amount is an unsigned 128-bit count of attos, the smallest indivisible
// unit of the native token.
type Amount struct {
	attos uint256.Int
}

var (
	// ZeroAmount holds no attos.
	ZeroAmount = Amount{}
	// MaxAmount is 2^128 - 1 attos.
	MaxAmount = Amount{attos: uint256.Int{math.MaxUint64, math.MaxUint64, 0, 0}}
)

// AmountFromAttos returns the amount of attos held in attos. Values that
// do not fit in 128 bits are rejected.
func AmountFromAttos(attos *uint256.Int) (Amount, error) {
	if attos.BitLen() > 128 {
		return Amount{}, errors.Overflow(errors.PhaseValidate, nil, attos.Dec(), "amount")
	}
	return Amount{attos: *attos}, nil
}

// AmountFromAttosU64 returns an amount of n attos.
func AmountFromAttosU64(n uint64) Amount {
	return Amount{attos: uint256.Int{n, 0, 0, 0}}
}

// AmountFromTokens returns an amount of n whole tokens.
func AmountFromTokens(n uint64) Amount {
	var a Amount
	a.attos.Mul(uint256.NewInt(n), uint256.NewInt(attosPerToken))
	return a
}

// Attos returns the amount as a 256-bit integer.
func (a Amount) Attos() uint256.Int {
	return a.attos
}

// Lower returns the low 64 bits of the atto count.
func (a Amount) Lower() uint64 {
	return a.attos[0]
}

// Upper returns the high 64 bits of the atto count.
func (a Amount) Upper() uint64 {
	return a.attos[1]
}

func (a Amount) IsZero() bool {
	return a.attos.IsZero()
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	return a.attos.Cmp(&b.attos)
}

// TryAdd returns a + b, or an overflow error past MaxAmount.
func (a Amount) TryAdd(b Amount) (Amount, error) {
	var sum Amount
	sum.attos.Add(&a.attos, &b.attos)
	if sum.attos.BitLen() > 128 {
		return Amount{}, errors.Overflow(errors.PhaseValidate, nil, sum.attos.Dec(), "amount")
	}
	return sum, nil
}

// TrySub returns a - b, or an overflow error when b > a.
func (a Amount) TrySub(b Amount) (Amount, error) {
	var diff Amount
	if _, underflow := diff.attos.SubOverflow(&a.attos, &b.attos); underflow {
		return Amount{}, errors.New(errors.PhaseValidate, errors.KindOverflow).
			Type("amount").
			Detail("%s - %s underflows", a, b).
			Build()
	}
	return diff, nil
}

// SaturatingAdd returns a + b clamped to MaxAmount.
func (a Amount) SaturatingAdd(b Amount) Amount {
	sum, err := a.TryAdd(b)
	if err != nil {
		return MaxAmount
	}
	return sum
}

// SaturatingSub returns a - b clamped to zero.
func (a Amount) SaturatingSub(b Amount) Amount {
	diff, err := a.TrySub(b)
	if err != nil {
		return ZeroAmount
	}
	return diff
}

// String formats the amount in tokens. Trailing zero decimals are dropped
// but the point is kept, so one token prints as "1." and half as "0.5".
func (a Amount) String() string {
	digits := a.attos.Dec()
	if len(digits) <= DecimalPlaces {
		digits = strings.Repeat("0", DecimalPlaces+1-len(digits)) + digits
	}
	cut := len(digits) - DecimalPlaces
	return digits[:cut] + "." + strings.TrimRight(digits[cut:], "0")
}

// ParseAmount parses a token amount such as "12", "0.5" or "3.".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	integral, fractional, _ := strings.Cut(s, ".")
	if integral == "" && fractional == "" {
		return Amount{}, errors.InvalidInput(errors.PhaseValidate, "empty amount")
	}
	if len(fractional) > DecimalPlaces {
		return Amount{}, errors.InvalidInput(errors.PhaseValidate, "amount has more than 18 decimal places: "+s)
	}
	if integral == "" {
		integral = "0"
	}
	digits := integral + fractional + strings.Repeat("0", DecimalPlaces-len(fractional))
	if strings.ContainsAny(digits, "+-") {
		return Amount{}, errors.InvalidInput(errors.PhaseValidate, "amount must be unsigned: "+s)
	}

	attos, err := uint256.FromDecimal(digits)
	if err != nil {
		return Amount{}, errors.Wrap(errors.PhaseValidate, errors.KindInvalidInput, err, "parse amount "+s)
	}
	return AmountFromAttos(attos)
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

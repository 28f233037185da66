package data

import (
	"math"
	"strconv"
	"time"
)

// BlockHeight is the ordinal of a block within its chain.
type BlockHeight uint64

// TryAddOne returns the next height, or false at the maximum height.
func (h BlockHeight) TryAddOne() (BlockHeight, bool) {
	if h == math.MaxUint64 {
		return h, false
	}
	return h + 1, true
}

func (h BlockHeight) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

// TimeDelta is a duration in microseconds.
type TimeDelta struct {
	micros uint64
}

// TimeDeltaFromMicros returns a delta of n microseconds.
func TimeDeltaFromMicros(n uint64) TimeDelta {
	return TimeDelta{micros: n}
}

// TimeDeltaFromMillis returns a delta of n milliseconds, saturating.
func TimeDeltaFromMillis(n uint64) TimeDelta {
	return TimeDelta{micros: saturatingMul(n, 1_000)}
}

// TimeDeltaFromSecs returns a delta of n seconds, saturating.
func TimeDeltaFromSecs(n uint64) TimeDelta {
	return TimeDelta{micros: saturatingMul(n, 1_000_000)}
}

func (d TimeDelta) Micros() uint64 {
	return d.micros
}

// Duration converts to a time.Duration, saturating at its maximum.
func (d TimeDelta) Duration() time.Duration {
	if d.micros > uint64(math.MaxInt64/int64(time.Microsecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d.micros) * time.Microsecond
}

func (d TimeDelta) String() string {
	return d.Duration().String()
}

// Timestamp is an instant in microseconds since the Unix epoch.
type Timestamp struct {
	micros uint64
}

// TimestampFromMicros returns the instant n microseconds after the epoch.
func TimestampFromMicros(n uint64) Timestamp {
	return Timestamp{micros: n}
}

// Now returns the current wall-clock time.
func Now() Timestamp {
	return Timestamp{micros: uint64(time.Now().UnixMicro())}
}

func (t Timestamp) Micros() uint64 {
	return t.micros
}

// Time converts to a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(int64(t.micros)).UTC()
}

// DeltaSince returns t - earlier, or zero if earlier is later than t.
func (t Timestamp) DeltaSince(earlier Timestamp) TimeDelta {
	if earlier.micros > t.micros {
		return TimeDelta{}
	}
	return TimeDelta{micros: t.micros - earlier.micros}
}

// SaturatingAdd returns t + d, clamped to the last representable instant.
func (t Timestamp) SaturatingAdd(d TimeDelta) Timestamp {
	if t.micros > math.MaxUint64-d.micros {
		return Timestamp{micros: math.MaxUint64}
	}
	return Timestamp{micros: t.micros + d.micros}
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339Nano)
}

func saturatingMul(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}

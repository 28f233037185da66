package lift

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	linerabridge "github.com/wippyai/linera-bridge"
	"github.com/wippyai/linera-bridge/bindings/witdef"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/internal/layout"
)

// Reader lifts wire values from one guest memory.
type Reader struct {
	mem     linerabridge.Memory
	layouts *layout.Calculator
	metrics *Metrics
}

// Option configures a Reader.
type Option func(*Reader)

// WithMetrics records every lift in m.
func WithMetrics(m *Metrics) Option {
	return func(r *Reader) {
		r.metrics = m
	}
}

func NewReader(mem linerabridge.Memory, opts ...Option) *Reader {
	r := &Reader{
		mem:     mem,
		layouts: layout.NewCalculator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Memory returns the memory the reader lifts from.
func (r *Reader) Memory() linerabridge.Memory {
	return r.mem
}

// Size returns the byte size of the canonical layout of a WIT type.
func (r *Reader) Size(def *wit.TypeDef) uint32 {
	return r.layouts.Calculate(def).Size
}

func (r *Reader) done(def *wit.TypeDef, addr uint32, err error) error {
	name := witdef.Name(def)
	r.metrics.observe(name, err)
	if err != nil {
		Logger().Debug("lift failed",
			zap.String("type", name),
			zap.Uint32("addr", addr),
			zap.Error(err))
	}
	return err
}

func sub(path []string, name string) []string {
	return append(append(make([]string, 0, len(path)+1), path...), name)
}

func index(path []string, i uint32) []string {
	out := append(make([]string, 0, len(path)), path...)
	if len(out) == 0 {
		return []string{"[" + strconv.FormatUint(uint64(i), 10) + "]"}
	}
	out[len(out)-1] += "[" + strconv.FormatUint(uint64(i), 10) + "]"
	return out
}

// withPath attaches path to a memory error.
func withPath(err error, path []string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errors.Error); ok {
		if len(e.Path) > 0 {
			return e
		}
		c := *e
		c.Path = path
		return &c
	}
	return errors.New(errors.PhaseLift, errors.KindOutOfBounds).
		At(path...).
		Cause(err).
		Build()
}

func (r *Reader) at(base, off uint32, path []string) (uint32, error) {
	addr, ok := layout.SafeAddU32(base, off)
	if !ok {
		return 0, errors.New(errors.PhaseLift, errors.KindOutOfBounds).
			At(path...).
			Detail("address %d + %d overflows", base, off).
			Value(base).
			Build()
	}
	return addr, nil
}

// field returns the address and path of a record field.
func (r *Reader) field(addr uint32, def *wit.TypeDef, name string, path []string) (uint32, []string, error) {
	fp := sub(path, name)
	off, ok := r.layouts.Calculate(def).Fields[name]
	if !ok {
		return 0, fp, errors.NotFound(errors.PhaseLift, "field", witdef.Name(def)+"."+name)
	}
	fa, err := r.at(addr, off, fp)
	return fa, fp, err
}

func (r *Reader) u8(addr uint32, path []string) (uint8, error) {
	v, err := r.mem.ReadU8(addr)
	return v, withPath(err, path)
}

func (r *Reader) u16(addr uint32, path []string) (uint16, error) {
	v, err := r.mem.ReadU16(addr)
	return v, withPath(err, path)
}

func (r *Reader) u32(addr uint32, path []string) (uint32, error) {
	v, err := r.mem.ReadU32(addr)
	return v, withPath(err, path)
}

func (r *Reader) u64(addr uint32, path []string) (uint64, error) {
	v, err := r.mem.ReadU64(addr)
	return v, withPath(err, path)
}

// list reads a (ptr, len) pair and checks that len elements of elemSize
// bytes fit in memory.
func (r *Reader) list(addr, elemSize, maxLen uint32, path []string) (uint32, uint32, error) {
	ptr, err := r.u32(addr, path)
	if err != nil {
		return 0, 0, err
	}
	lenAddr, err := r.at(addr, 4, path)
	if err != nil {
		return 0, 0, err
	}
	n, err := r.u32(lenAddr, path)
	if err != nil {
		return 0, 0, err
	}

	if n > maxLen {
		return 0, 0, errors.New(errors.PhaseLift, errors.KindOverflow).
			At(path...).
			Detail("length %d exceeds maximum %d", n, maxLen).
			Value(n).
			Build()
	}
	total, ok := layout.SafeMulU32(n, elemSize)
	if !ok {
		return 0, 0, errors.Overflow(errors.PhaseLift, path, n, "list")
	}
	end, ok := layout.SafeAddU32(ptr, total)
	if !ok {
		return 0, 0, errors.OutOfBounds(path, ptr, total)
	}
	if sizer, ok := r.mem.(linerabridge.MemorySizer); ok && end > sizer.Size() {
		return 0, 0, errors.OutOfBounds(path, ptr, total)
	}
	return ptr, n, nil
}

// byteList reads a list<u8> and copies it out of guest memory.
func (r *Reader) byteList(addr uint32, path []string) ([]byte, error) {
	ptr, n, err := r.list(addr, 1, layout.MaxStringSize, path)
	if err != nil || n == 0 {
		return nil, err
	}
	data, err := r.mem.Read(ptr, n)
	if err != nil {
		return nil, withPath(err, path)
	}
	return bytes.Clone(data), nil
}

func (r *Reader) text(addr uint32, path []string) (string, error) {
	ptr, n, err := r.list(addr, 1, layout.MaxStringSize, path)
	if err != nil || n == 0 {
		return "", err
	}
	data, err := r.mem.Read(ptr, n)
	if err != nil {
		return "", withPath(err, path)
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(path, data)
	}
	return string(data), nil
}

// discriminant reads a one-byte tag and checks it names one of cases.
func (r *Reader) discriminant(addr uint32, cases int, witType string, path []string) (uint8, error) {
	disc, err := r.u8(addr, path)
	if err != nil {
		return 0, err
	}
	if int(disc) >= cases {
		return 0, errors.InvalidDiscriminant(path, witType, disc, cases)
	}
	return disc, nil
}

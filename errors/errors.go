package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase is the stage of the bridge an error came from.
type Phase string

const (
	PhaseLift     Phase = "lift"     // guest memory to wire value
	PhaseConvert  Phase = "convert"  // wire value to domain value
	PhaseValidate Phase = "validate" // domain constructor checks
	PhaseLoad     Phase = "load"     // guest module loading
	PhaseRuntime  Phase = "runtime"  // guest calls
	PhaseConfig   Phase = "config"   // CLI and file configuration
)

// Kind is what went wrong.
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidData    Kind = "invalid_data"
	KindUnsupported    Kind = "unsupported"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindOverflow       Kind = "overflow"
	KindInvalidEnum    Kind = "invalid_enum"
	KindInvalidVariant Kind = "invalid_variant"
	KindInvalidHeader  Kind = "invalid_header"
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
	KindUnreachable    Kind = "unreachable"
)

// Error carries where a failure happened and which wire value caused it.
// Path names the WIT fields walked from the root value, e.g.
// ["chain-ownership", "owners[2]", "inner0"].
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Phase))
	b.WriteByte('/')
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}
	if e.Type != "" {
		b.WriteString(" <")
		b.WriteString(e.Type)
		b.WriteByte('>')
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches a target *Error on Phase and Kind. Empty fields in the
// target match anything, so &Error{Kind: KindNotFound} matches a
// not_found error from any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return (t.Phase == "" || t.Phase == e.Phase) && (t.Kind == "" || t.Kind == e.Kind)
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return ""
}

// Builder assembles an Error field by field.
type Builder struct {
	err Error
}

func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) At(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the WIT type the failing value was read as.
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

func (b *Builder) Detail(format string, args ...any) *Builder {
	if len(args) == 0 {
		b.err.Detail = format
		return b
	}
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// OutOfBounds reports a guest memory read of length bytes at addr that
// runs past the end of memory.
func OutOfBounds(path []string, addr, length uint32) *Error {
	return New(PhaseLift, KindOutOfBounds).
		At(path...).
		Value(addr).
		Detail("%d bytes at %#x past end of memory", length, addr).
		Build()
}

// InvalidUTF8 reports a WIT string whose bytes are not UTF-8. The detail
// shows at most the first 16 bytes.
func InvalidUTF8(path []string, data []byte) *Error {
	if len(data) > 16 {
		data = data[:16]
	}
	return New(PhaseLift, KindInvalidUTF8).
		At(path...).
		Type("string").
		Detail("bytes %x", data).
		Build()
}

// InvalidDiscriminant reports a variant or option tag with no case.
func InvalidDiscriminant(path []string, witType string, disc uint8, cases int) *Error {
	return New(PhaseLift, KindInvalidVariant).
		At(path...).
		Type(witType).
		Value(disc).
		Detail("tag %d, type has %d cases", disc, cases).
		Build()
}

// InvalidEnum reports an enum value, read from memory or parsed from
// text, that names no case.
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return New(phase, KindInvalidEnum).
		At(path...).
		Type(enumType).
		Value(value).
		Detail("no case %v", value).
		Build()
}

func Overflow(phase Phase, path []string, value any, target string) *Error {
	return New(phase, KindOverflow).
		At(path...).
		Type(target).
		Value(value).
		Detail("%v does not fit", value).
		Build()
}

// InvalidHeader reports an HTTP header rejected by its constructor.
func InvalidHeader(name, reason string) *Error {
	return New(PhaseValidate, KindInvalidHeader).
		Value(name).
		Detail("header %q: %s", name, reason).
		Build()
}

func Unsupported(phase Phase, what string) *Error {
	return New(phase, KindUnsupported).Detail("%s", what).Build()
}

func NotFound(phase Phase, what, name string) *Error {
	return New(phase, KindNotFound).Value(name).Detail("no %s %q", what, name).Build()
}

func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).Detail("%s", detail).Build()
}

// Unreachable is the panic value of a conversion handed a wire value it
// has no case for. It means the wire schema and the conversion were built
// from different definitions.
func Unreachable(witType string, value any) *Error {
	return New(PhaseConvert, KindUnreachable).
		Type(witType).
		Value(value).
		Detail("no conversion for %v", value).
		Build()
}

func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).Cause(cause).Detail("%s", detail).Build()
}

// Load reports a guest module that failed to compile or instantiate.
func Load(detail string, cause error) *Error {
	return Wrap(PhaseLoad, KindInvalidData, cause, detail)
}

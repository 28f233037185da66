package layout

import "go.bytecodealliance.org/wit"

// Info is where a value of one type sits in linear memory.
type Info struct {
	// Fields holds record field offsets by WIT field name.
	Fields map[string]uint32
	// Elems holds tuple element offsets in order.
	Elems []uint32
	Size  uint32
	Align uint32
	// Payload is the case payload offset of a variant or option.
	Payload uint32
	// Tag is the discriminant width of an enum, variant or option.
	Tag uint32
}

var empty = Info{Align: 1}

// Calculator computes layouts and remembers them per type definition.
// It is not safe for concurrent use.
type Calculator struct {
	seen map[*wit.TypeDef]Info
}

func NewCalculator() *Calculator {
	return &Calculator{seen: make(map[*wit.TypeDef]Info)}
}

// Calculate returns the layout of t. Types the wire records never use,
// such as resources and futures, get an empty layout.
func (c *Calculator) Calculate(t wit.Type) Info {
	switch t := t.(type) {
	case *wit.TypeDef:
		return c.def(t)
	case wit.String:
		return pointerPair
	}
	if n := primitiveSize(t); n > 0 {
		return Info{Size: n, Align: n}
	}
	return empty
}

// pointerPair is the (ptr, len) pair of strings and lists.
var pointerPair = Info{Size: 8, Align: 4}

func primitiveSize(t wit.Type) uint32 {
	switch t.(type) {
	case wit.Bool, wit.U8, wit.S8:
		return 1
	case wit.U16, wit.S16:
		return 2
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return 4
	case wit.U64, wit.S64, wit.F64:
		return 8
	}
	return 0
}

func (c *Calculator) def(t *wit.TypeDef) Info {
	if info, ok := c.seen[t]; ok {
		return info
	}

	info := empty
	switch k := t.Kind.(type) {
	case *wit.Record:
		names := make([]string, len(k.Fields))
		types := make([]wit.Type, len(k.Fields))
		for i, f := range k.Fields {
			names[i], types[i] = f.Name, f.Type
		}
		info = c.sequence(types)
		info.Fields = make(map[string]uint32, len(names))
		for i, name := range names {
			info.Fields[name] = info.Elems[i]
		}
		info.Elems = nil
	case *wit.Tuple:
		info = c.sequence(k.Types)
	case *wit.Enum:
		tag := DiscriminantSize(len(k.Cases))
		info = Info{Size: tag, Align: tag, Tag: tag}
	case *wit.Variant:
		payloads := make([]wit.Type, len(k.Cases))
		for i, cs := range k.Cases {
			payloads[i] = cs.Type
		}
		info = c.tagged(payloads)
	case *wit.Option:
		info = c.tagged([]wit.Type{nil, k.Type})
	case *wit.List:
		info = pointerPair
	case wit.Type:
		info = c.Calculate(k)
	}

	c.seen[t] = info
	return info
}

// sequence lays members out in order, each at its own alignment, and
// pads the whole to the widest alignment.
func (c *Calculator) sequence(members []wit.Type) Info {
	info := Info{Align: 1, Elems: make([]uint32, len(members))}
	var end uint32
	for i, m := range members {
		ml := c.Calculate(m)
		end = AlignTo(end, ml.Align)
		info.Elems[i] = end
		end += ml.Size
		info.Align = max(info.Align, ml.Align)
	}
	info.Size = AlignTo(end, info.Align)
	return info
}

// tagged lays out a discriminant followed by the largest payload. A nil
// payload is a case without one.
func (c *Calculator) tagged(payloads []wit.Type) Info {
	if len(payloads) == 0 {
		return empty
	}
	tag := DiscriminantSize(len(payloads))
	align, size := tag, uint32(0)
	for _, p := range payloads {
		if p == nil {
			continue
		}
		pl := c.Calculate(p)
		align = max(align, pl.Align)
		size = max(size, pl.Size)
	}
	payload := AlignTo(tag, align)
	return Info{
		Size:    AlignTo(payload+size, align),
		Align:   align,
		Payload: payload,
		Tag:     tag,
	}
}

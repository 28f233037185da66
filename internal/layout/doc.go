// Package layout computes Canonical ABI sizes, alignments and offsets for
// WIT types.
//
// # Layout Rules
//
//   - Primitives: size equals alignment (u8=1, u32=4, u64=8, etc.)
//   - Records and tuples: members laid out in order, each aligned
//   - Enums: a discriminant sized by case count
//   - Variants and options: discriminant, then the payload at the
//     largest case alignment
//   - Lists and strings: a (pointer, length) pair, content elsewhere
//
// # Usage
//
//	c := layout.NewCalculator()
//	info := c.Calculate(witdef.ChainOwnership)
//	off := info.Fields["timeout-config"]
package layout

// Package data holds scalar domain values: amounts, block heights,
// timestamps and time deltas.
//
// Timestamps and time deltas count microseconds. Amounts count attos, with
// 10^18 attos to the token.
package data

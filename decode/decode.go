// Package decode binds lifting and conversion per schema, so a wire value
// can be turned into its domain value by WIT type name alone.
package decode

import (
	"sort"

	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/lift"
)

// Schema names accepted by ForSchema.
const (
	SchemaService         = "service"
	SchemaContract        = "contract"
	SchemaContractRuntime = "contract-runtime"
)

// Func lifts the wire value at addr and converts it to its domain value.
type Func func(r *lift.Reader, addr uint32) (any, error)

// Table maps WIT type names to decoders.
type Table map[string]Func

// Types returns the type names in t, sorted.
func (t Table) Types() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode decodes the value of type typeName at addr.
func (t Table) Decode(r *lift.Reader, typeName string, addr uint32) (any, error) {
	fn, ok := t[typeName]
	if !ok {
		return nil, errors.NotFound(errors.PhaseConvert, "type", typeName)
	}
	return fn(r, addr)
}

var schemas = map[string]Table{
	SchemaService:         serviceTable(),
	SchemaContract:        contractTable(),
	SchemaContractRuntime: contractRuntimeTable(),
}

// Schemas returns the known schema names, sorted.
func Schemas() []string {
	return []string{SchemaContract, SchemaContractRuntime, SchemaService}
}

// ForSchema returns the decode table of the named schema.
func ForSchema(name string) (Table, error) {
	t, ok := schemas[name]
	if !ok {
		return nil, errors.NotFound(errors.PhaseConfig, "schema", name)
	}
	return t, nil
}

func lifted[W, D any](liftFn func(*lift.Reader, uint32) (W, error), convFn func(W) D) Func {
	return func(r *lift.Reader, addr uint32) (any, error) {
		w, err := liftFn(r, addr)
		if err != nil {
			return nil, err
		}
		return convFn(w), nil
	}
}

func checked[W, D any](liftFn func(*lift.Reader, uint32) (W, error), convFn func(W) (D, error)) Func {
	return func(r *lift.Reader, addr uint32) (any, error) {
		w, err := liftFn(r, addr)
		if err != nil {
			return nil, err
		}
		d, err := convFn(w)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Package guest runs a core WebAssembly module under wazero so that wire
// values can be lifted straight out of its memory.
//
// Only the pieces needed to reach a wire value are provided: the exported
// linear memory and calls to nullary exports that return a pointer to a
// value in that memory. Instances are not safe for concurrent use.
package guest

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/errors"
)

// MemoryExport is the name of the exported linear memory.
const MemoryExport = "memory"

// Config controls guest instantiation.
type Config struct {
	// Name of the instantiated module. Defaults to "guest".
	Name string
	// MemoryLimitPages caps guest memory in 64 KiB pages. Zero keeps
	// wazero's default.
	MemoryLimitPages uint32
}

// Instance is an instantiated guest module.
type Instance struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	module   api.Module
	memory   *Memory
}

// Load compiles and instantiates wasm. The module must export its memory
// as "memory".
func Load(ctx context.Context, wasm []byte, cfg Config) (*Instance, error) {
	rcfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)
	if cfg.MemoryLimitPages > 0 {
		rcfg = rcfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	name := cfg.Name
	if name == "" {
		name = "guest"
	}

	rt := wazero.NewRuntimeWithConfig(ctx, rcfg)

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("compile module", err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load("instantiate module", err)
	}

	mem := mod.ExportedMemory(MemoryExport)
	if mem == nil {
		_ = rt.Close(ctx)
		return nil, errors.NotFound(errors.PhaseLoad, "memory export", MemoryExport)
	}

	Logger().Debug("guest loaded",
		zap.String("name", name),
		zap.Int("bytes", len(wasm)),
		zap.Uint32("memory", mem.Size()))

	return &Instance{
		runtime:  rt,
		compiled: compiled,
		module:   mod,
		memory:   &Memory{mem: mem},
	}, nil
}

// Memory returns the guest's linear memory.
func (i *Instance) Memory() *Memory {
	return i.memory
}

// RetptrExports lists the exported functions CallRetptr can call, sorted.
func (i *Instance) RetptrExports() []string {
	var names []string
	for name, def := range i.compiled.ExportedFunctions() {
		if isRetptr(def) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func isRetptr(def api.FunctionDefinition) bool {
	results := def.ResultTypes()
	return len(def.ParamTypes()) == 0 && len(results) == 1 && results[0] == api.ValueTypeI32
}

// CallRetptr calls a nullary export returning an i32 and returns that
// value as a memory address.
func (i *Instance) CallRetptr(ctx context.Context, name string) (uint32, error) {
	fn := i.module.ExportedFunction(name)
	if fn == nil {
		return 0, errors.NotFound(errors.PhaseRuntime, "export", name)
	}
	if !isRetptr(fn.Definition()) {
		return 0, errors.Unsupported(errors.PhaseRuntime, "export "+name+" is not a nullary function returning i32")
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseRuntime, errors.KindInvalidData, err, "call "+name)
	}

	addr := api.DecodeU32(results[0])
	Logger().Debug("guest call", zap.String("export", name), zap.Uint32("addr", addr))
	return addr, nil
}

// Close releases the module and its runtime.
func (i *Instance) Close(ctx context.Context) error {
	return i.runtime.Close(ctx)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/linera-bridge/decode"
	"github.com/wippyai/linera-bridge/errors"
	"github.com/wippyai/linera-bridge/lift"
)

func (a *app) decodeCmd() *cobra.Command {
	var (
		typeName string
		addr     string
		dump     string
		wasm     string
		call     string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode one wire value from a memory dump or a guest",
		Example: `  wirectl decode --type amount --dump mem.bin --addr 0x100
  wirectl decode --schema contract-runtime --type message-id --wasm app.wasm --call message_id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := decodeInput(dump, wasm, addr, call)
			if err != nil {
				return err
			}
			table, err := decode.ForSchema(a.cfg.Schema)
			if err != nil {
				return err
			}
			if _, ok := table[typeName]; !ok {
				return errors.NotFound(errors.PhaseConfig, a.cfg.Schema+" type", typeName)
			}

			ctx := cmd.Context()
			src, err := openSource(ctx, path, a.cfg.MemoryLimitPages)
			if err != nil {
				return err
			}
			defer src.Close(ctx)

			if call != "" {
				if !src.isGuest() {
					return errors.InvalidInput(errors.PhaseConfig, "--call needs a wasm module, "+path+" is a memory dump")
				}
				addr = call
			}
			at, err := src.resolve(ctx, addr)
			if err != nil {
				return err
			}

			a.log.Debug("decoding", zap.String("type", typeName), zap.Uint32("addr", at), zap.String("source", src.name))
			v, err := table.Decode(lift.NewReader(src.mem), typeName, at)
			if err != nil {
				return err
			}
			out, err := render(v, a.cfg.Format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&typeName, "type", "t", "", "WIT type name, see 'wirectl types'")
	flags.StringVarP(&addr, "addr", "a", "", "address of the value")
	flags.StringVar(&dump, "dump", "", "raw memory dump")
	flags.StringVar(&wasm, "wasm", "", "guest module exporting its memory")
	flags.StringVar(&call, "call", "", "guest export returning the address of the value")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// decodeInput checks the source flags and returns the file to open.
func decodeInput(dump, wasm, addr, call string) (string, error) {
	switch {
	case dump != "" && wasm != "":
		return "", errors.InvalidInput(errors.PhaseConfig, "--dump and --wasm are mutually exclusive")
	case dump == "" && wasm == "":
		return "", errors.InvalidInput(errors.PhaseConfig, "one of --dump or --wasm is required")
	case addr != "" && call != "":
		return "", errors.InvalidInput(errors.PhaseConfig, "--addr and --call are mutually exclusive")
	case addr == "" && call == "":
		return "", errors.InvalidInput(errors.PhaseConfig, "one of --addr or --call is required")
	case dump != "" && call != "":
		return "", errors.InvalidInput(errors.PhaseConfig, "--call needs --wasm")
	}
	if dump != "" {
		return dump, nil
	}
	return wasm, nil
}

package lift

import (
	"github.com/wippyai/linera-bridge/bindings/shape"
	"github.com/wippyai/linera-bridge/bindings/witdef"
	"github.com/wippyai/linera-bridge/internal/layout"
)

func TimeoutConfig[W shape.TimeoutConfig[D], D shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := timeoutConfig[W, D](r, addr, []string{"timeout-config"})
	return w, r.done(witdef.TimeoutConfig, addr, err)
}

func ChainOwnership[W shape.ChainOwnership[O, H, T, D], O shape.Owner[H], H shape.CryptoHash, T shape.TimeoutConfig[D], D shape.Counter](r *Reader, addr uint32) (W, error) {
	w, err := chainOwnership[W, O, H, T, D](r, addr, []string{"chain-ownership"})
	return w, r.done(witdef.ChainOwnership, addr, err)
}

func HTTPHeader[W shape.HTTPHeader](r *Reader, addr uint32) (W, error) {
	w, err := httpHeader[W](r, addr, []string{"http-header"})
	return w, r.done(witdef.HTTPHeader, addr, err)
}

func HTTPResponse[W shape.HTTPResponse[Hd], Hd shape.HTTPHeader](r *Reader, addr uint32) (W, error) {
	w, err := httpResponse[W, Hd](r, addr, []string{"http-response"})
	return w, r.done(witdef.HTTPResponse, addr, err)
}

func timeoutConfig[W shape.TimeoutConfig[D], D shape.Counter](r *Reader, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, witdef.TimeoutConfig, "fast-round-duration", path)
	if err != nil {
		return W{}, err
	}
	disc, err := r.discriminant(fa, 2, "option<time-delta>", fp)
	if err != nil {
		return W{}, err
	}
	var fast *D
	if disc == 1 {
		pa, err := r.at(fa, r.layouts.Calculate(witdef.FastRoundDuration).Payload, fp)
		if err != nil {
			return W{}, err
		}
		d, err := counter[D](r, witdef.TimeDelta, pa, fp)
		if err != nil {
			return W{}, err
		}
		fast = &d
	}

	var durations [3]D
	for i, name := range [3]string{"base-timeout", "timeout-increment", "fallback-duration"} {
		fa, fp, err := r.field(addr, witdef.TimeoutConfig, name, path)
		if err != nil {
			return W{}, err
		}
		if durations[i], err = counter[D](r, witdef.TimeDelta, fa, fp); err != nil {
			return W{}, err
		}
	}

	return W(struct {
		FastRoundDuration *D
		BaseTimeout       D
		TimeoutIncrement  D
		FallbackDuration  D
	}{fast, durations[0], durations[1], durations[2]}), nil
}

func chainOwnership[W shape.ChainOwnership[O, H, T, D], O shape.Owner[H], H shape.CryptoHash, T shape.TimeoutConfig[D], D shape.Counter](r *Reader, addr uint32, path []string) (W, error) {
	var c struct {
		SuperOwners []O
		Owners      []struct {
			F0 O
			F1 uint64
		}
		MultiLeaderRounds     uint32
		OpenMultiLeaderRounds bool
		TimeoutConfig         T
	}

	fa, fp, err := r.field(addr, witdef.ChainOwnership, "super-owners", path)
	if err != nil {
		return W{}, err
	}
	ownerSize := r.layouts.Calculate(witdef.Owner).Size
	ptr, n, err := r.list(fa, ownerSize, layout.MaxListLength, fp)
	if err != nil {
		return W{}, err
	}
	c.SuperOwners = make([]O, n)
	for i := uint32(0); i < n; i++ {
		if c.SuperOwners[i], err = owner[O, H](r, ptr+i*ownerSize, index(fp, i)); err != nil {
			return W{}, err
		}
	}

	if fa, fp, err = r.field(addr, witdef.ChainOwnership, "owners", path); err != nil {
		return W{}, err
	}
	pair := r.layouts.Calculate(witdef.OwnerWeight)
	if ptr, n, err = r.list(fa, pair.Size, layout.MaxListLength, fp); err != nil {
		return W{}, err
	}
	c.Owners = make([]struct {
		F0 O
		F1 uint64
	}, n)
	for i := uint32(0); i < n; i++ {
		ea, ep := ptr+i*pair.Size, index(fp, i)
		if c.Owners[i].F0, err = owner[O, H](r, ea+pair.Elems[0], sub(ep, "0")); err != nil {
			return W{}, err
		}
		if c.Owners[i].F1, err = r.u64(ea+pair.Elems[1], sub(ep, "1")); err != nil {
			return W{}, err
		}
	}

	if fa, fp, err = r.field(addr, witdef.ChainOwnership, "multi-leader-rounds", path); err != nil {
		return W{}, err
	}
	if c.MultiLeaderRounds, err = r.u32(fa, fp); err != nil {
		return W{}, err
	}

	if fa, fp, err = r.field(addr, witdef.ChainOwnership, "open-multi-leader-rounds", path); err != nil {
		return W{}, err
	}
	open, err := r.u8(fa, fp)
	if err != nil {
		return W{}, err
	}
	c.OpenMultiLeaderRounds = open != 0

	if fa, fp, err = r.field(addr, witdef.ChainOwnership, "timeout-config", path); err != nil {
		return W{}, err
	}
	if c.TimeoutConfig, err = timeoutConfig[T, D](r, fa, fp); err != nil {
		return W{}, err
	}

	return W(c), nil
}

func httpHeader[W shape.HTTPHeader](r *Reader, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, witdef.HTTPHeader, "name", path)
	if err != nil {
		return W{}, err
	}
	name, err := r.text(fa, fp)
	if err != nil {
		return W{}, err
	}
	if fa, fp, err = r.field(addr, witdef.HTTPHeader, "value", path); err != nil {
		return W{}, err
	}
	value, err := r.byteList(fa, fp)
	if err != nil {
		return W{}, err
	}
	return W(struct {
		Name  string
		Value []byte
	}{name, value}), nil
}

func httpResponse[W shape.HTTPResponse[Hd], Hd shape.HTTPHeader](r *Reader, addr uint32, path []string) (W, error) {
	fa, fp, err := r.field(addr, witdef.HTTPResponse, "status", path)
	if err != nil {
		return W{}, err
	}
	status, err := r.u16(fa, fp)
	if err != nil {
		return W{}, err
	}

	if fa, fp, err = r.field(addr, witdef.HTTPResponse, "headers", path); err != nil {
		return W{}, err
	}
	headerSize := r.layouts.Calculate(witdef.HTTPHeader).Size
	ptr, n, err := r.list(fa, headerSize, layout.MaxListLength, fp)
	if err != nil {
		return W{}, err
	}
	headers := make([]Hd, n)
	for i := uint32(0); i < n; i++ {
		if headers[i], err = httpHeader[Hd](r, ptr+i*headerSize, index(fp, i)); err != nil {
			return W{}, err
		}
	}

	if fa, fp, err = r.field(addr, witdef.HTTPResponse, "body", path); err != nil {
		return W{}, err
	}
	body, err := r.byteList(fa, fp)
	if err != nil {
		return W{}, err
	}

	return W(struct {
		Status  uint16
		Headers []Hd
		Body    []byte
	}{status, headers, body}), nil
}

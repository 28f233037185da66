package convert

import (
	"github.com/wippyai/linera-bridge/base/http"
	"github.com/wippyai/linera-bridge/base/identifiers"
	"github.com/wippyai/linera-bridge/base/ownership"
	"github.com/wippyai/linera-bridge/bindings/shape"
)

// TimeoutConfig converts each duration. An absent fast round stays absent.
func TimeoutConfig[W shape.TimeoutConfig[D], D shape.Counter](w W) ownership.TimeoutConfig {
	c := struct {
		FastRoundDuration *D
		BaseTimeout       D
		TimeoutIncrement  D
		FallbackDuration  D
	}(w)

	cfg := ownership.TimeoutConfig{
		BaseTimeout:      TimeDelta(c.BaseTimeout),
		TimeoutIncrement: TimeDelta(c.TimeoutIncrement),
		FallbackDuration: TimeDelta(c.FallbackDuration),
	}
	if c.FastRoundDuration != nil {
		fast := TimeDelta(*c.FastRoundDuration)
		cfg.FastRoundDuration = &fast
	}
	return cfg
}

// ChainOwnership collects super owners into a set and weighted owners
// into a map. Guest order is not kept; for a repeated owner the last
// weight wins.
func ChainOwnership[W shape.ChainOwnership[O, H, T, D], O shape.Owner[H], H shape.CryptoHash, T shape.TimeoutConfig[D], D shape.Counter](w W) ownership.ChainOwnership {
	c := struct {
		SuperOwners []O
		Owners      []struct {
			F0 O
			F1 uint64
		}
		MultiLeaderRounds     uint32
		OpenMultiLeaderRounds bool
		TimeoutConfig         T
	}(w)

	superOwners := make(map[identifiers.Owner]struct{}, len(c.SuperOwners))
	for _, o := range c.SuperOwners {
		superOwners[Owner[O, H](o)] = struct{}{}
	}

	owners := make(map[identifiers.Owner]uint64, len(c.Owners))
	for _, pair := range c.Owners {
		owners[Owner[O, H](pair.F0)] = pair.F1
	}

	return ownership.ChainOwnership{
		SuperOwners:           superOwners,
		Owners:                owners,
		MultiLeaderRounds:     c.MultiLeaderRounds,
		OpenMultiLeaderRounds: c.OpenMultiLeaderRounds,
		TimeoutConfig:         TimeoutConfig[T, D](c.TimeoutConfig),
	}
}

// HTTPHeader builds a header through http.NewHeader. Its error is
// returned as is.
func HTTPHeader[W shape.HTTPHeader](w W) (http.Header, error) {
	h := struct {
		Name  string
		Value []byte
	}(w)
	return http.NewHeader(h.Name, h.Value)
}

// HTTPResponse converts headers in guest order. The first header
// rejected by http.NewHeader aborts the conversion with that error.
func HTTPResponse[W shape.HTTPResponse[Hd], Hd shape.HTTPHeader](w W) (http.Response, error) {
	r := struct {
		Status  uint16
		Headers []Hd
		Body    []byte
	}(w)

	headers := make([]http.Header, 0, len(r.Headers))
	for _, wh := range r.Headers {
		h, err := HTTPHeader(wh)
		if err != nil {
			return http.Response{}, err
		}
		headers = append(headers, h)
	}

	return http.Response{
		Status:  r.Status,
		Headers: headers,
		Body:    r.Body,
	}, nil
}

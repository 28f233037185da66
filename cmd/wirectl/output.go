package main

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/linera-bridge/base/http"
	"github.com/wippyai/linera-bridge/base/identifiers"
	"github.com/wippyai/linera-bridge/base/ownership"
	"github.com/wippyai/linera-bridge/errors"
)

type headerView struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type responseView struct {
	Status  uint16       `yaml:"status"`
	Headers []headerView `yaml:"headers"`
	Body    string       `yaml:"body"`
}

type ownershipView struct {
	SuperOwners           []string                `yaml:"super_owners"`
	Owners                map[string]uint64       `yaml:"owners"`
	MultiLeaderRounds     uint32                  `yaml:"multi_leader_rounds"`
	OpenMultiLeaderRounds bool                    `yaml:"open_multi_leader_rounds"`
	TimeoutConfig         ownership.TimeoutConfig `yaml:"timeout_config"`
}

// present reshapes domain values whose Go form reads poorly as YAML.
func present(v any) any {
	switch v := v.(type) {
	case http.Header:
		return headerView{Name: v.Name, Value: string(v.Value)}
	case http.Response:
		view := responseView{Status: v.Status, Body: string(v.Body), Headers: []headerView{}}
		for _, h := range v.Headers {
			view.Headers = append(view.Headers, headerView{Name: h.Name, Value: string(h.Value)})
		}
		return view
	case ownership.ChainOwnership:
		view := ownershipView{
			SuperOwners:           []string{},
			Owners:                make(map[string]uint64, len(v.Owners)),
			MultiLeaderRounds:     v.MultiLeaderRounds,
			OpenMultiLeaderRounds: v.OpenMultiLeaderRounds,
			TimeoutConfig:         v.TimeoutConfig,
		}
		for o := range v.SuperOwners {
			view.SuperOwners = append(view.SuperOwners, o.String())
		}
		slices.Sort(view.SuperOwners)
		for o, w := range v.Owners {
			view.Owners[o.String()] = w
		}
		return view
	case identifiers.AccountOwner:
		return v.String()
	default:
		return v
	}
}

func render(v any, format string) (string, error) {
	switch format {
	case formatYAML:
		out, err := yaml.Marshal(present(v))
		if err != nil {
			return "", errors.Wrap(errors.PhaseConvert, errors.KindInvalidData, err, "yaml output")
		}
		return string(out), nil
	case formatText:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String() + "\n", nil
		}
		return strings.TrimSuffix(fmt.Sprintf("%+v", present(v)), "\n") + "\n", nil
	default:
		return "", errors.InvalidInput(errors.PhaseConfig, "unknown format "+format)
	}
}

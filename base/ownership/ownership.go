// Package ownership describes who may propose blocks on a chain and how
// rounds time out.
package ownership

import (
	"bytes"
	"slices"
	"time"

	"github.com/wippyai/linera-bridge/base/data"
	"github.com/wippyai/linera-bridge/base/identifiers"
)

// DefaultMultiLeaderRounds is the number of multi-leader rounds a newly
// created single-owner chain allows.
const DefaultMultiLeaderRounds uint32 = 2

// DefaultOwnerWeight is the weight given to the sole owner by Single.
const DefaultOwnerWeight uint64 = 100

// TimeoutConfig controls round timeouts on a chain.
type TimeoutConfig struct {
	// FastRoundDuration is nil when the chain has no fast round.
	FastRoundDuration *data.TimeDelta `yaml:"fast_round_duration,omitempty"`
	BaseTimeout       data.TimeDelta  `yaml:"base_timeout"`
	TimeoutIncrement  data.TimeDelta  `yaml:"timeout_increment"`
	FallbackDuration  data.TimeDelta  `yaml:"fallback_duration"`
}

// DefaultTimeoutConfig has no fast round, a ten second base timeout
// growing by one second per round, and a one day fallback.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		BaseTimeout:      data.TimeDeltaFromSecs(10),
		TimeoutIncrement: data.TimeDeltaFromSecs(1),
		FallbackDuration: data.TimeDeltaFromSecs(uint64(24 * time.Hour / time.Second)),
	}
}

// ChainOwnership lists the owners of a chain.
//
// SuperOwners may propose in fast and multi-leader rounds. Owners carry
// the weight used for leader election in single-leader rounds.
type ChainOwnership struct {
	SuperOwners           map[identifiers.Owner]struct{} `yaml:"super_owners"`
	Owners                map[identifiers.Owner]uint64   `yaml:"owners"`
	MultiLeaderRounds     uint32                         `yaml:"multi_leader_rounds"`
	OpenMultiLeaderRounds bool                           `yaml:"open_multi_leader_rounds"`
	TimeoutConfig         TimeoutConfig                  `yaml:"timeout_config"`
}

// OwnerWeight pairs an owner with its leader election weight.
type OwnerWeight struct {
	Owner  identifiers.Owner
	Weight uint64
}

// SingleSuper returns an ownership with one super owner and no regular owners.
func SingleSuper(owner identifiers.Owner) ChainOwnership {
	return ChainOwnership{
		SuperOwners:       map[identifiers.Owner]struct{}{owner: {}},
		Owners:            map[identifiers.Owner]uint64{},
		MultiLeaderRounds: DefaultMultiLeaderRounds,
		TimeoutConfig:     DefaultTimeoutConfig(),
	}
}

// Single returns an ownership with one regular owner.
func Single(owner identifiers.Owner) ChainOwnership {
	return ChainOwnership{
		SuperOwners:       map[identifiers.Owner]struct{}{},
		Owners:            map[identifiers.Owner]uint64{owner: DefaultOwnerWeight},
		MultiLeaderRounds: DefaultMultiLeaderRounds,
		TimeoutConfig:     DefaultTimeoutConfig(),
	}
}

// Multiple returns an ownership over the weighted owners. A later entry
// for an owner replaces an earlier one.
func Multiple(owners []OwnerWeight, multiLeaderRounds uint32, timeouts TimeoutConfig) ChainOwnership {
	weights := make(map[identifiers.Owner]uint64, len(owners))
	for _, ow := range owners {
		weights[ow.Owner] = ow.Weight
	}
	return ChainOwnership{
		SuperOwners:       map[identifiers.Owner]struct{}{},
		Owners:            weights,
		MultiLeaderRounds: multiLeaderRounds,
		TimeoutConfig:     timeouts,
	}
}

// IsActive reports whether anyone may still propose blocks.
func (o ChainOwnership) IsActive() bool {
	return len(o.SuperOwners) > 0 || len(o.Owners) > 0
}

// IsOwner reports whether owner is a super owner or a regular owner.
func (o ChainOwnership) IsOwner(owner identifiers.Owner) bool {
	if _, ok := o.SuperOwners[owner]; ok {
		return true
	}
	_, ok := o.Owners[owner]
	return ok
}

// AllOwners returns super owners and regular owners, deduplicated and
// sorted by hash bytes.
func (o ChainOwnership) AllOwners() []identifiers.Owner {
	all := make([]identifiers.Owner, 0, len(o.SuperOwners)+len(o.Owners))
	for owner := range o.SuperOwners {
		all = append(all, owner)
	}
	for owner := range o.Owners {
		if _, dup := o.SuperOwners[owner]; !dup {
			all = append(all, owner)
		}
	}
	slices.SortFunc(all, func(a, b identifiers.Owner) int {
		return bytes.Compare(a[:], b[:])
	})
	return all
}

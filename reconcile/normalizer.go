package reconcile

import (
	"bytes"

	"golang.org/x/exp/slices"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// Normalize returns the canonical form of a configuration tree, so that two
// semantically equal configurations compare equal regardless of source
// formatting:
//   - validator sets are sorted and deduplicated (they are sets, order is
//     presentation only; aggregation members are an ordered list and keep
//     their order)
//   - derived-only data (deployed addresses of read-back trees) is stripped
//   - the transformation applies recursively to nested configs
//
// Normalize is pure: the input is never modified, nested maps and slices
// are copied. The only expected error is a ValidationError for a malformed
// shape.
func Normalize(c mesh.Config) (mesh.Config, error) {
	switch cfg := c.(type) {
	case nil:
		return nil, mesh.NewValidationErrorf("cannot normalize nil config")

	case *mesh.DerivedConfig:
		// the address is derived-only; canonical form is the underlying
		// structural config
		return Normalize(cfg.Config)

	case mesh.OpaqueReference:
		return cfg, nil

	case mesh.MultisigConfig:
		validators := make([]mesh.Identifier, len(cfg.Validators))
		copy(validators, cfg.Validators)
		slices.SortFunc(validators, func(a, b mesh.Identifier) int {
			return bytes.Compare(a[:], b[:])
		})
		validators = slices.Compact(validators)
		return mesh.MultisigConfig{
			Validators: validators,
			Threshold:  cfg.Threshold,
		}, nil

	case mesh.RoutingConfig:
		routes := make(map[mesh.EndpointID]mesh.Config, len(cfg.Routes))
		for endpoint, route := range cfg.Routes {
			normalized, err := Normalize(route)
			if err != nil {
				return nil, err
			}
			routes[endpoint] = normalized
		}
		return mesh.RoutingConfig{
			Owner:  cfg.Owner,
			Routes: routes,
		}, nil

	case mesh.AggregationConfig:
		members := make([]mesh.Config, 0, len(cfg.Members))
		for _, member := range cfg.Members {
			normalized, err := Normalize(member)
			if err != nil {
				return nil, err
			}
			members = append(members, normalized)
		}
		return mesh.AggregationConfig{
			Threshold: cfg.Threshold,
			Members:   members,
		}, nil

	case mesh.GasOracleHookConfig:
		perEndpoint := make(map[mesh.EndpointID]mesh.GasParams, len(cfg.PerEndpoint))
		for endpoint, params := range cfg.PerEndpoint {
			perEndpoint[endpoint] = params
		}
		return mesh.GasOracleHookConfig{
			Owner:       cfg.Owner,
			PerEndpoint: perEndpoint,
		}, nil

	case mesh.PausableConfig, mesh.TrustedRelayerConfig, mesh.NoopConfig:
		return cfg, nil

	default:
		return nil, mesh.NewValidationErrorf("cannot normalize config of unknown type %T", c)
	}
}

// normalizedID returns the ConfigID of the normalized form of c, the value
// the engine compares configurations by.
func normalizedID(c mesh.Config) (mesh.Identifier, error) {
	normalized, err := Normalize(c)
	if err != nil {
		return mesh.ZeroIdentifier, err
	}
	return mesh.ConfigID(normalized)
}

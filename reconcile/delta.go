package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
)

// Delta is the outcome of diffing two routing tables. ToEnroll holds
// endpoints whose route must be (re)resolved and written: endpoints new in
// the desired table plus endpoints whose sub-config changed. ToUnenroll
// holds endpoints present only in the actual table. Both slices are sorted
// and contain only endpoints known to the local registry.
type Delta struct {
	ToEnroll   []mesh.EndpointID
	ToUnenroll []mesh.EndpointID
}

// IsEmpty reports whether the delta requires no mutations.
func (d Delta) IsEmpty() bool {
	return len(d.ToEnroll) == 0 && len(d.ToUnenroll) == 0
}

// RoutingDelta computes the set difference between an actual and a desired
// routing table. A changed existing route is treated as a re-enroll: the
// new sub-config is resolved and the entry overwritten. Endpoints unknown
// to the registry are dropped from both sets with a warning, never an
// error; partial topology knowledge must not block reconciliation of the
// known subset.
//
// Expected errors during normal operations:
//   - ValidationError if a route's config is malformed and cannot be
//     normalized for comparison.
func RoutingDelta(
	log zerolog.Logger,
	registry module.Registry,
	actual map[mesh.EndpointID]mesh.Config,
	desired map[mesh.EndpointID]mesh.Config,
) (Delta, error) {

	var delta Delta
	for _, endpoint := range mesh.SortedEndpoints(desired) {
		if !registry.IsKnown(endpoint) {
			log.Warn().
				Str("endpoint", string(endpoint)).
				Msg("skipping desired route for endpoint unknown to local registry")
			continue
		}
		current, exists := actual[endpoint]
		if !exists {
			delta.ToEnroll = append(delta.ToEnroll, endpoint)
			continue
		}
		equal, err := routesEqual(current, desired[endpoint])
		if err != nil {
			return Delta{}, err
		}
		if !equal {
			delta.ToEnroll = append(delta.ToEnroll, endpoint)
		}
	}
	for _, endpoint := range mesh.SortedEndpoints(actual) {
		if _, keep := desired[endpoint]; keep {
			continue
		}
		if !registry.IsKnown(endpoint) {
			log.Warn().
				Str("endpoint", string(endpoint)).
				Msg("skipping stale route for endpoint unknown to local registry")
			continue
		}
		delta.ToUnenroll = append(delta.ToUnenroll, endpoint)
	}
	return delta, nil
}

// routesEqual compares one actual route value against its desired
// counterpart. When the desired value is an opaque reference, the route is
// converged exactly when the deployed sub-instance already sits at the
// referenced address; structural comparison is impossible and unnecessary.
// Otherwise both sides are compared by normalized fingerprint.
func routesEqual(actual mesh.Config, desired mesh.Config) (bool, error) {
	if opaque, ok := desired.(mesh.OpaqueReference); ok {
		switch current := actual.(type) {
		case *mesh.DerivedConfig:
			return current.Address == opaque.Address, nil
		case mesh.OpaqueReference:
			return current.Address == opaque.Address, nil
		default:
			return false, nil
		}
	}
	actualID, err := normalizedID(actual)
	if err != nil {
		return false, err
	}
	desiredID, err := normalizedID(desired)
	if err != nil {
		return false, err
	}
	return actualID == desiredID, nil
}

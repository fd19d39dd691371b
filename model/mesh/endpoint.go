package mesh

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EndpointID names a remote execution environment (a chain/domain) that
// routing tables are keyed by. An EndpointID may be unknown to the local
// registry; unknown endpoints are preserved in desired configuration but
// are never resolved or mutated.
type EndpointID string

// SortedEndpoints returns the keys of a routing-style map in lexicographic
// order. All plan assembly iterates endpoints in this order so that plans
// are deterministic for a given input.
func SortedEndpoints[V any](m map[EndpointID]V) []EndpointID {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

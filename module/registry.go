package module

import (
	"github.com/crossmesh/crossmesh/model/mesh"
)

// Registry exposes the locally known endpoint topology. Endpoints absent
// from the registry are tolerated everywhere: routing entries referencing
// them are skipped with a warning, never an error, so partial topology
// knowledge cannot block reconciliation of the known subset.
type Registry interface {
	// IsKnown reports whether metadata for the endpoint is available locally.
	IsKnown(endpoint mesh.EndpointID) bool

	// Resolve returns the numeric domain of a known endpoint.
	// Expected errors during normal operations:
	//   - ErrUnknownEndpoint if the endpoint is not known to the registry.
	Resolve(endpoint mesh.EndpointID) (uint32, error)
}

package deploy

import (
	"fmt"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/reconcile"
)

// ContentAddress returns the deterministic deploy address of a static
// module configuration: a pure function of (type, canonical constructor
// parameters). Deploying the same canonical parameters twice therefore
// yields the same address, which is what makes retried deploys safe no-ops.
//
// For aggregation configs, the members must already be resolved to opaque
// references; the address is then a function of (threshold, ordered member
// addresses).
func ContentAddress(c mesh.Config) (mesh.Identifier, error) {
	if !reconcile.IsStatic(c.Type()) {
		return mesh.ZeroIdentifier, fmt.Errorf("module type %s does not deploy to a content-derived address", c.Type())
	}
	canonical, err := reconcile.Normalize(c)
	if err != nil {
		return mesh.ZeroIdentifier, fmt.Errorf("could not canonicalize constructor parameters: %w", err)
	}
	return mesh.ConfigID(canonical)
}

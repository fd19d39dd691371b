package module

import (
	"context"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// Deployer recursively resolves or deploys every leaf and composite module
// of a configuration bottom-up, returning the resulting instance.
//
// Deployments happen eagerly; they are a side effect of the call, never
// queued mutations. Implementations must be idempotent for
// deterministic-address module types: resolving an identical static config
// twice returns the existing instance without a duplicate deployment. A
// failed sub-deploy aborts the whole call; already deployed leaves are not
// cleaned up, they remain as harmless content-addressed instances reusable
// on retry.
type Deployer interface {
	Deploy(ctx context.Context, config mesh.Config) (mesh.Instance, error)
}

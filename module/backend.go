package module

import (
	"context"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// DeployBackend is the transport hook through which the deployer
// instantiates modules and performs first-time initialization. It is the
// only collaborator that submits anything; the reconciliation engine itself
// never signs or broadcasts.
//
// Implementations must be idempotent for deterministic-address module
// types: deploying the same canonical parameters twice returns the existing
// address without emitting a duplicate deployment. The deployer relies on
// HasCode to short-circuit before calling Deploy at all.
//
// Calls for sub-deploys of a single composite module are issued
// sequentially by the deployer, because they typically share a submission
// identity whose pending-mutation ordering (nonce sequencing) is violated
// by concurrent submission.
type DeployBackend interface {
	// Deploy instantiates a module from its configuration and returns the
	// address of the new (or, for deterministic-address types, existing)
	// instance.
	Deploy(ctx context.Context, config mesh.Config) (mesh.Identifier, error)

	// HasCode reports whether an instance already exists at the address.
	HasCode(ctx context.Context, address mesh.Identifier) (bool, error)

	// EnrollRoute initializes a routing table entry on a freshly deployed
	// routing instance. This is first-time initialization inlined into
	// deployment; updates to existing instances go through a MutationPlan
	// instead.
	EnrollRoute(ctx context.Context, router mesh.Identifier, endpoint mesh.EndpointID, instance mesh.Identifier) error
}

package module

import (
	"context"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// ConfigReader derives the observable configuration of a deployed instance.
//
// Read must return a structurally complete tree: for module types that
// contain nested configs (routing, aggregation), the nested entries are
// resolved *DerivedConfig values, not bare instance references. When the
// reader cannot destructure an instance (an unrecognized on-chain module
// type), it returns a DerivedConfig wrapping an OpaqueReference.
//
// Expected errors during normal operations:
//   - ReadFailureError if actual state could not be fetched; the caller
//     must abort reconciliation since no diff is possible.
type ConfigReader interface {
	Read(ctx context.Context, address mesh.Identifier) (*mesh.DerivedConfig, error)
}

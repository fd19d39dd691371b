package reconcile

import (
	"github.com/crossmesh/crossmesh/model/mesh"
)

// IsMutable reports whether instances of the given module type can be
// reconfigured in place. Immutable types are converged by replacing the
// instance wholesale.
func IsMutable(t mesh.ModuleType) bool {
	switch t {
	case mesh.ModuleTypeRouting, mesh.ModuleTypePausable, mesh.ModuleTypeGasOracleHook:
		return true
	case mesh.ModuleTypeMultisig, mesh.ModuleTypeAggregation, mesh.ModuleTypeTrustedRelayer,
		mesh.ModuleTypeNoop, mesh.ModuleTypeOpaque, mesh.ModuleTypeUnknown:
		return false
	default:
		return false
	}
}

// IsStatic reports whether the given module type deploys to a
// content-derived deterministic address, making redeploy-with-same-params a
// safe no-op.
func IsStatic(t mesh.ModuleType) bool {
	switch t {
	case mesh.ModuleTypeMultisig, mesh.ModuleTypeAggregation, mesh.ModuleTypeTrustedRelayer, mesh.ModuleTypeNoop:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether the configuration value is a bare externally
// managed instance reference rather than a structured config.
func IsOpaque(c mesh.Config) bool {
	switch cfg := c.(type) {
	case mesh.OpaqueReference:
		return true
	case *mesh.DerivedConfig:
		return cfg.IsOpaque()
	default:
		return false
	}
}

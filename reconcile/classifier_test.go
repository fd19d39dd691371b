package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/reconcile"
	"github.com/crossmesh/crossmesh/utils/unittest"
)

func TestIsMutable(t *testing.T) {
	mutable := []mesh.ModuleType{
		mesh.ModuleTypeRouting,
		mesh.ModuleTypePausable,
		mesh.ModuleTypeGasOracleHook,
	}
	replaceOnly := []mesh.ModuleType{
		mesh.ModuleTypeMultisig,
		mesh.ModuleTypeAggregation,
		mesh.ModuleTypeTrustedRelayer,
		mesh.ModuleTypeNoop,
		mesh.ModuleTypeOpaque,
		mesh.ModuleTypeUnknown,
	}
	for _, moduleType := range mutable {
		assert.True(t, reconcile.IsMutable(moduleType), "%s must be mutable in place", moduleType)
	}
	for _, moduleType := range replaceOnly {
		assert.False(t, reconcile.IsMutable(moduleType), "%s must be replace-only", moduleType)
	}
}

func TestIsStatic(t *testing.T) {
	static := []mesh.ModuleType{
		mesh.ModuleTypeMultisig,
		mesh.ModuleTypeAggregation,
		mesh.ModuleTypeTrustedRelayer,
		mesh.ModuleTypeNoop,
	}
	for _, moduleType := range static {
		assert.True(t, reconcile.IsStatic(moduleType), "%s must be content-addressed", moduleType)
	}
	assert.False(t, reconcile.IsStatic(mesh.ModuleTypeRouting))
	assert.False(t, reconcile.IsStatic(mesh.ModuleTypePausable))
	assert.False(t, reconcile.IsStatic(mesh.ModuleTypeGasOracleHook))
	assert.False(t, reconcile.IsStatic(mesh.ModuleTypeOpaque))
}

func TestIsOpaque(t *testing.T) {
	opaque := mesh.OpaqueReference{Address: unittest.IdentifierFixture()}
	assert.True(t, reconcile.IsOpaque(opaque))
	assert.True(t, reconcile.IsOpaque(unittest.DerivedConfigFixture(opaque)))
	assert.False(t, reconcile.IsOpaque(mesh.NoopConfig{}))
	assert.False(t, reconcile.IsOpaque(unittest.DerivedConfigFixture(mesh.NoopConfig{})))
}

package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
	modulemock "github.com/crossmesh/crossmesh/module/mock"
	"github.com/crossmesh/crossmesh/reconcile"
	"github.com/crossmesh/crossmesh/utils/unittest"
)

// allKnownRegistry treats every endpoint as locally known.
type allKnownRegistry struct{}

var _ module.Registry = allKnownRegistry{}

func (allKnownRegistry) IsKnown(mesh.EndpointID) bool           { return true }
func (allKnownRegistry) Resolve(mesh.EndpointID) (uint32, error) { return 0, nil }

func TestRoutingDelta_AddedRoute(t *testing.T) {
	m1 := unittest.MultisigConfigFixture(3, 2)
	m2 := unittest.MultisigConfigFixture(3, 2)

	delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
		map[mesh.EndpointID]mesh.Config{"chain-1": m1},
		map[mesh.EndpointID]mesh.Config{"chain-1": m1, "chain-2": m2},
	)
	require.NoError(t, err)
	assert.Equal(t, []mesh.EndpointID{"chain-2"}, delta.ToEnroll)
	assert.Empty(t, delta.ToUnenroll)
}

func TestRoutingDelta_RemovedRoute(t *testing.T) {
	m1 := unittest.MultisigConfigFixture(3, 2)
	m2 := unittest.MultisigConfigFixture(3, 2)

	delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
		map[mesh.EndpointID]mesh.Config{"chain-1": m1, "chain-2": m2},
		map[mesh.EndpointID]mesh.Config{"chain-1": m1},
	)
	require.NoError(t, err)
	assert.Empty(t, delta.ToEnroll)
	assert.Equal(t, []mesh.EndpointID{"chain-2"}, delta.ToUnenroll)
}

// TestRoutingDelta_ChangedRoute checks that a changed existing route shows
// up as a re-enroll, never as an unenroll.
func TestRoutingDelta_ChangedRoute(t *testing.T) {
	delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
		map[mesh.EndpointID]mesh.Config{"chain-1": unittest.MultisigConfigFixture(3, 2)},
		map[mesh.EndpointID]mesh.Config{"chain-1": unittest.MultisigConfigFixture(3, 2)},
	)
	require.NoError(t, err)
	assert.Equal(t, []mesh.EndpointID{"chain-1"}, delta.ToEnroll)
	assert.Empty(t, delta.ToUnenroll)
}

// TestRoutingDelta_NormalizedComparison checks that formatting-only
// differences do not produce spurious re-enrolls.
func TestRoutingDelta_NormalizedComparison(t *testing.T) {
	validators := unittest.IdentifierListFixture(3)
	shuffled := []mesh.Identifier{validators[2], validators[0], validators[1]}

	delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
		map[mesh.EndpointID]mesh.Config{"chain-1": mesh.MultisigConfig{Validators: validators, Threshold: 2}},
		map[mesh.EndpointID]mesh.Config{"chain-1": mesh.MultisigConfig{Validators: shuffled, Threshold: 2}},
	)
	require.NoError(t, err)
	assert.True(t, delta.IsEmpty())
}

// TestRoutingDelta_OpaqueDesired checks that an opaque desired route is
// converged exactly when the deployed sub-instance sits at the referenced
// address.
func TestRoutingDelta_OpaqueDesired(t *testing.T) {
	deployed := unittest.DerivedConfigFixture(unittest.MultisigConfigFixture(3, 2))

	t.Run("matching address", func(t *testing.T) {
		delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
			map[mesh.EndpointID]mesh.Config{"chain-1": deployed},
			map[mesh.EndpointID]mesh.Config{"chain-1": mesh.OpaqueReference{Address: deployed.Address}},
		)
		require.NoError(t, err)
		assert.True(t, delta.IsEmpty())
	})
	t.Run("different address", func(t *testing.T) {
		delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{},
			map[mesh.EndpointID]mesh.Config{"chain-1": deployed},
			map[mesh.EndpointID]mesh.Config{"chain-1": mesh.OpaqueReference{Address: unittest.IdentifierFixture()}},
		)
		require.NoError(t, err)
		assert.Equal(t, []mesh.EndpointID{"chain-1"}, delta.ToEnroll)
	})
}

// TestRoutingDelta_UnknownEndpointsSkipped checks that endpoints absent from
// the registry are dropped from both sets with a warning instead of failing.
func TestRoutingDelta_UnknownEndpointsSkipped(t *testing.T) {
	registry := modulemock.NewRegistry(t)
	registry.On("IsKnown", mesh.EndpointID("known-a")).Return(true)
	registry.On("IsKnown", mesh.EndpointID("unknown-z")).Return(false)
	registry.On("IsKnown", mesh.EndpointID("unknown-y")).Return(false)

	delta, err := reconcile.RoutingDelta(unittest.Logger(), registry,
		map[mesh.EndpointID]mesh.Config{"unknown-y": unittest.MultisigConfigFixture(3, 2)},
		map[mesh.EndpointID]mesh.Config{
			"known-a":   unittest.MultisigConfigFixture(3, 2),
			"unknown-z": unittest.MultisigConfigFixture(3, 2),
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []mesh.EndpointID{"known-a"}, delta.ToEnroll)
	assert.Empty(t, delta.ToUnenroll)
}

// TestRoutingDeltaRapid_SetCorrectness checks the set properties of the
// delta for arbitrary routing tables: enroll and unenroll sets are
// disjoint, every added key enrolls, every removed key unenrolls.
func TestRoutingDeltaRapid_SetCorrectness(t *testing.T) {
	endpointGen := rapid.StringMatching(`chain-[a-d]`)
	tableGen := rapid.MapOfN(endpointGen, rapid.IntRange(0, 3), 0, 4)

	rapid.Check(t, func(t *rapid.T) {
		configs := []mesh.Config{
			mesh.NoopConfig{},
			unittest.MultisigConfigFixture(3, 2),
			unittest.MultisigConfigFixture(3, 3),
			mesh.TrustedRelayerConfig{Relayer: unittest.IdentifierFixture()},
		}
		toTable := func(raw map[string]int) map[mesh.EndpointID]mesh.Config {
			table := make(map[mesh.EndpointID]mesh.Config, len(raw))
			for endpoint, pick := range raw {
				table[mesh.EndpointID(endpoint)] = configs[pick]
			}
			return table
		}
		actual := toTable(tableGen.Draw(t, "actual"))
		desired := toTable(tableGen.Draw(t, "desired"))

		delta, err := reconcile.RoutingDelta(unittest.Logger(), allKnownRegistry{}, actual, desired)
		require.NoError(t, err)

		enrolled := make(map[mesh.EndpointID]struct{}, len(delta.ToEnroll))
		for _, endpoint := range delta.ToEnroll {
			enrolled[endpoint] = struct{}{}
			_, inDesired := desired[endpoint]
			require.True(t, inDesired, "enrolled endpoint must be desired")
		}
		for _, endpoint := range delta.ToUnenroll {
			_, clash := enrolled[endpoint]
			require.False(t, clash, "enroll and unenroll must be disjoint")
			_, inActual := actual[endpoint]
			_, inDesired := desired[endpoint]
			require.True(t, inActual && !inDesired, "unenrolled endpoint must be stale")
		}
		for endpoint := range desired {
			if _, exists := actual[endpoint]; !exists {
				require.Contains(t, enrolled, endpoint, "added endpoint must enroll")
			}
		}
		for endpoint := range actual {
			if _, kept := desired[endpoint]; !kept {
				require.Contains(t, delta.ToUnenroll, endpoint, "removed endpoint must unenroll")
			}
		}
	})
}

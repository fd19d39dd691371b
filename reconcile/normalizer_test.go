package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/reconcile"
	"github.com/crossmesh/crossmesh/utils/unittest"
)

// TestNormalize_MultisigValidatorSet checks that validator sets are sorted
// and deduplicated, so differently formatted sources compare equal.
func TestNormalize_MultisigValidatorSet(t *testing.T) {
	a := unittest.IdentifierFixture()
	b := unittest.IdentifierFixture()
	c := unittest.IdentifierFixture()

	first, err := reconcile.Normalize(mesh.MultisigConfig{
		Validators: []mesh.Identifier{c, a, b, a},
		Threshold:  2,
	})
	require.NoError(t, err)
	second, err := reconcile.Normalize(mesh.MultisigConfig{
		Validators: []mesh.Identifier{a, b, c},
		Threshold:  2,
	})
	require.NoError(t, err)

	firstID, err := mesh.ConfigID(first)
	require.NoError(t, err)
	secondID, err := mesh.ConfigID(second)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
}

// TestNormalize_Pure checks that normalization copies rather than mutates
// its input.
func TestNormalize_Pure(t *testing.T) {
	validators := unittest.IdentifierListFixture(3)
	original := make([]mesh.Identifier, len(validators))
	copy(original, validators)

	_, err := reconcile.Normalize(mesh.MultisigConfig{Validators: validators, Threshold: 2})
	require.NoError(t, err)
	assert.Equal(t, original, validators, "input validator slice must not be reordered")

	routes := map[mesh.EndpointID]mesh.Config{
		"remote": mesh.MultisigConfig{Validators: validators, Threshold: 2},
	}
	routing := unittest.RoutingConfigFixture(routes)
	normalized, err := reconcile.Normalize(routing)
	require.NoError(t, err)
	normalizedRouting, ok := normalized.(mesh.RoutingConfig)
	require.True(t, ok)
	// the normalized tree holds fresh maps
	normalizedRouting.Routes["added"] = mesh.NoopConfig{}
	assert.NotContains(t, routes, mesh.EndpointID("added"))
}

// TestNormalize_StripsDerivedAddresses checks that a read-back tree and the
// desired tree it was deployed from normalize to the same canonical form.
func TestNormalize_StripsDerivedAddresses(t *testing.T) {
	multisig := unittest.MultisigConfigFixture(3, 2)
	desired := unittest.RoutingConfigFixture(map[mesh.EndpointID]mesh.Config{
		"remote": multisig,
	})
	actual := &mesh.DerivedConfig{
		Address: unittest.IdentifierFixture(),
		Config: mesh.RoutingConfig{
			Owner: desired.Owner,
			Routes: map[mesh.EndpointID]mesh.Config{
				"remote": unittest.DerivedConfigFixture(multisig),
			},
		},
	}

	desiredNorm, err := reconcile.Normalize(desired)
	require.NoError(t, err)
	actualNorm, err := reconcile.Normalize(actual)
	require.NoError(t, err)

	desiredID, err := mesh.ConfigID(desiredNorm)
	require.NoError(t, err)
	actualID, err := mesh.ConfigID(actualNorm)
	require.NoError(t, err)
	assert.Equal(t, desiredID, actualID)
}

func TestNormalize_Malformed(t *testing.T) {
	_, err := reconcile.Normalize(nil)
	require.Error(t, err)
	assert.True(t, mesh.IsValidationError(err))
}

// TestNormalizeRapid_Idempotent checks that normalization is idempotent for
// arbitrary config trees: normalizing a normalized tree is a no-op.
func TestNormalizeRapid_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		config := drawConfig(t, 2)

		once, err := reconcile.Normalize(config)
		require.NoError(t, err)
		twice, err := reconcile.Normalize(once)
		require.NoError(t, err)

		onceID, err := mesh.ConfigID(once)
		require.NoError(t, err)
		twiceID, err := mesh.ConfigID(twice)
		require.NoError(t, err)
		require.Equal(t, onceID, twiceID)
	})
}

// drawConfig draws a random config tree with nesting bounded by depth.
func drawConfig(t *rapid.T, depth int) mesh.Config {
	maxKind := 5
	if depth <= 0 {
		maxKind = 3 // leaves only
	}
	switch rapid.IntRange(0, maxKind).Draw(t, "kind") {
	case 0:
		return mesh.NoopConfig{}
	case 1:
		return mesh.TrustedRelayerConfig{Relayer: drawIdentifier(t)}
	case 2:
		return mesh.PausableConfig{Owner: drawIdentifier(t)}
	case 3:
		validators := rapid.SliceOfN(rapid.Custom(drawIdentifier), 1, 5).Draw(t, "validators")
		threshold := rapid.Uint64Range(1, uint64(len(validators))).Draw(t, "threshold")
		return mesh.MultisigConfig{Validators: validators, Threshold: threshold}
	case 4:
		count := rapid.IntRange(1, 3).Draw(t, "members")
		members := make([]mesh.Config, 0, count)
		for i := 0; i < count; i++ {
			members = append(members, drawConfig(t, depth-1))
		}
		threshold := rapid.Uint64Range(1, uint64(count)).Draw(t, "agg-threshold")
		return mesh.AggregationConfig{Threshold: threshold, Members: members}
	default:
		endpoints := rapid.SliceOfNDistinct(rapid.StringMatching(`chain-[a-z]{1,4}`), 0, 3, rapid.ID[string]).Draw(t, "endpoints")
		routes := make(map[mesh.EndpointID]mesh.Config, len(endpoints))
		for _, endpoint := range endpoints {
			routes[mesh.EndpointID(endpoint)] = drawConfig(t, depth-1)
		}
		return mesh.RoutingConfig{Owner: drawIdentifier(t), Routes: routes}
	}
}

func drawIdentifier(t *rapid.T) mesh.Identifier {
	var id mesh.Identifier
	raw := rapid.SliceOfN(rapid.Byte(), mesh.IdentifierLen, mesh.IdentifierLen).Draw(t, "identifier")
	copy(id[:], raw)
	return id
}

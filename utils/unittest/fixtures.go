package unittest

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/crossmesh/crossmesh/model/mesh"
)

// IdentifierFixture returns a random identifier.
func IdentifierFixture() mesh.Identifier {
	var id mesh.Identifier
	_, err := rand.Read(id[:])
	if err != nil {
		panic(err)
	}
	return id
}

// IdentifierListFixture returns n random identifiers.
func IdentifierListFixture(n int) []mesh.Identifier {
	ids := make([]mesh.Identifier, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, IdentifierFixture())
	}
	return ids
}

// EndpointIDFixture returns a random endpoint id.
func EndpointIDFixture() mesh.EndpointID {
	return mesh.EndpointID(fmt.Sprintf("endpoint-%x", IdentifierFixture().Bytes()[:4]))
}

// MultisigConfigFixture returns a multisig config with n random validators
// and the given threshold.
func MultisigConfigFixture(n int, threshold uint64) mesh.MultisigConfig {
	return mesh.MultisigConfig{
		Validators: IdentifierListFixture(n),
		Threshold:  threshold,
	}
}

// RoutingConfigFixture returns a routing config with a random owner and the
// given routes.
func RoutingConfigFixture(routes map[mesh.EndpointID]mesh.Config) mesh.RoutingConfig {
	return mesh.RoutingConfig{
		Owner:  IdentifierFixture(),
		Routes: routes,
	}
}

// GasParamsFixture returns a populated set of gas oracle parameters.
func GasParamsFixture() mesh.GasParams {
	return mesh.GasParams{
		ExchangeRate: big.NewInt(1_000_000),
		GasPrice:     big.NewInt(30),
		Overhead:     150_000,
	}
}

// DerivedConfigFixture wraps a structural config in a derived read-back
// form at a random address.
func DerivedConfigFixture(config mesh.Config) *mesh.DerivedConfig {
	return &mesh.DerivedConfig{
		Address: IdentifierFixture(),
		Config:  config,
	}
}

// InstanceFixture returns an instance for the given type at a random
// address.
func InstanceFixture(t mesh.ModuleType, mutable bool) *mesh.Instance {
	return &mesh.Instance{
		Address: IdentifierFixture(),
		Type:    t,
		Mutable: mutable,
	}
}

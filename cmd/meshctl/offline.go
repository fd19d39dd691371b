package main

import (
	"context"
	"encoding/binary"
	"fmt"

	gethCrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
)

// offlineBackend is the dry-run transport: it never submits anything. Fresh
// deployments are assigned deterministic placeholder addresses and logged
// as would-be actions, so a plan can be previewed without touching any
// endpoint.
type offlineBackend struct {
	log   zerolog.Logger
	nonce uint64
}

var _ module.DeployBackend = (*offlineBackend)(nil)

func newOfflineBackend(log zerolog.Logger) *offlineBackend {
	return &offlineBackend{log: log.With().Str("component", "offline_backend").Logger()}
}

// Deploy assigns the content address to static configs so that the dry run
// matches what an on-chain deploy would produce, and a sequential
// placeholder address to everything else.
func (b *offlineBackend) Deploy(_ context.Context, config mesh.Config) (mesh.Identifier, error) {
	address, err := placeholderAddress(config, b.nonce)
	if err != nil {
		return mesh.ZeroIdentifier, err
	}
	b.nonce++
	b.log.Info().
		Str("type", config.Type().String()).
		Str("address", address.String()).
		Msg("would deploy")
	return address, nil
}

// HasCode always reports false: the dry run assumes a blank slate and
// previews the full set of deployments.
func (b *offlineBackend) HasCode(context.Context, mesh.Identifier) (bool, error) {
	return false, nil
}

func (b *offlineBackend) EnrollRoute(_ context.Context, router mesh.Identifier, endpoint mesh.EndpointID, instance mesh.Identifier) error {
	b.log.Info().
		Str("router", router.String()).
		Str("endpoint", string(endpoint)).
		Str("instance", instance.String()).
		Msg("would enroll route")
	return nil
}

func placeholderAddress(config mesh.Config, nonce uint64) (mesh.Identifier, error) {
	// static types must land on their real content address, the deployer
	// checks for the mismatch
	switch config.Type() {
	case mesh.ModuleTypeMultisig, mesh.ModuleTypeAggregation, mesh.ModuleTypeTrustedRelayer, mesh.ModuleTypeNoop:
		id, err := mesh.ConfigID(config)
		if err != nil {
			return mesh.ZeroIdentifier, fmt.Errorf("could not derive placeholder address: %w", err)
		}
		return id, nil
	default:
		var seed [9]byte
		seed[0] = byte(config.Type())
		binary.BigEndian.PutUint64(seed[1:], nonce)
		digest := gethCrypto.Keccak256(seed[:])
		var id mesh.Identifier
		copy(id[:], digest[len(digest)-mesh.IdentifierLen:])
		return id, nil
	}
}

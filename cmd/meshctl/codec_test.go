package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crossmesh/crossmesh/model/mesh"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigDoc_DesiredRouting(t *testing.T) {
	path := writeDoc(t, `
type: routing
owner: "0x52908400098527886E0F7030069857D2E4169EE7"
routes:
  testchain:
    type: multisig
    validators:
      - "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
      - "0xde709f2102306220921060314715629080e2fb77"
    threshold: 2
  mainnet:
    type: opaque
    address: "0x27b1fdb04752bbc536007a920d24acb045561c26"
`)
	doc, err := loadConfigDoc(path)
	require.NoError(t, err)
	config, err := doc.toConfig()
	require.NoError(t, err)

	routing, ok := config.(mesh.RoutingConfig)
	require.True(t, ok)
	// identifiers normalize regardless of source case
	assert.Equal(t, mesh.MustHexToIdentifier("0x52908400098527886e0f7030069857d2e4169ee7"), routing.Owner)
	require.Len(t, routing.Routes, 2)

	multisig, ok := routing.Routes["testchain"].(mesh.MultisigConfig)
	require.True(t, ok)
	assert.Equal(t, uint64(2), multisig.Threshold)
	require.Len(t, multisig.Validators, 2)

	opaque, ok := routing.Routes["mainnet"].(mesh.OpaqueReference)
	require.True(t, ok)
	assert.Equal(t, mesh.MustHexToIdentifier("0x27b1fdb04752bbc536007a920d24acb045561c26"), opaque.Address)
}

func TestConfigDoc_GasOracleHook(t *testing.T) {
	path := writeDoc(t, `
type: gas-oracle-hook
owner: "0x52908400098527886e0f7030069857d2e4169ee7"
gasParams:
  testchain:
    exchangeRate: "1000000"
    gasPrice: "30"
    overhead: 150000
`)
	doc, err := loadConfigDoc(path)
	require.NoError(t, err)
	config, err := doc.toConfig()
	require.NoError(t, err)

	hook, ok := config.(mesh.GasOracleHookConfig)
	require.True(t, ok)
	params := hook.PerEndpoint["testchain"]
	assert.Equal(t, "1000000", params.ExchangeRate.String())
	assert.Equal(t, "30", params.GasPrice.String())
	assert.Equal(t, uint64(150000), params.Overhead)
}

func TestConfigDoc_Snapshot(t *testing.T) {
	path := writeDoc(t, `
type: routing
address: "0x27b1fdb04752bbc536007a920d24acb045561c26"
owner: "0x52908400098527886e0f7030069857d2e4169ee7"
routes:
  testchain:
    type: multisig
    address: "0x8617e340b3d01fa5f11f306f4090fd50e238070d"
    validators:
      - "0xde709f2102306220921060314715629080e2fb77"
    threshold: 1
`)
	doc, err := loadConfigDoc(path)
	require.NoError(t, err)
	derived, err := doc.toDerived()
	require.NoError(t, err)

	assert.Equal(t, mesh.MustHexToIdentifier("0x27b1fdb04752bbc536007a920d24acb045561c26"), derived.Address)
	routing, ok := derived.Config.(mesh.RoutingConfig)
	require.True(t, ok)

	sub, ok := routing.Routes["testchain"].(*mesh.DerivedConfig)
	require.True(t, ok)
	assert.Equal(t, mesh.MustHexToIdentifier("0x8617e340b3d01fa5f11f306f4090fd50e238070d"), sub.Address)
	assert.Equal(t, mesh.ModuleTypeMultisig, sub.Type())
}

func TestConfigDoc_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		doc := &configDoc{Type: "quantum"}
		_, err := doc.toConfig()
		require.Error(t, err)
	})
	t.Run("snapshot node without address", func(t *testing.T) {
		doc := &configDoc{Type: "noop"}
		_, err := doc.toDerived()
		require.Error(t, err)
	})
	t.Run("bad gas params", func(t *testing.T) {
		doc := &configDoc{
			Type:      "gas-oracle-hook",
			Owner:     "0x52908400098527886e0f7030069857d2e4169ee7",
			GasParams: map[string]gasDoc{"testchain": {ExchangeRate: "lots", GasPrice: "30"}},
		}
		_, err := doc.toConfig()
		require.Error(t, err)
	})
}

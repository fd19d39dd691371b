package mesh

import (
	"math/big"
)

// ModuleType enumerates the closed set of module variants the engine knows
// how to reconcile. Adding a new type requires updating the classifier
// tables and the reconciler's patch dispatch, which the exhaustive switches
// in those packages enforce at compile time.
type ModuleType uint8

const (
	ModuleTypeUnknown ModuleType = iota
	ModuleTypeOpaque
	ModuleTypeMultisig
	ModuleTypeRouting
	ModuleTypeAggregation
	ModuleTypeGasOracleHook
	ModuleTypePausable
	ModuleTypeTrustedRelayer
	ModuleTypeNoop
)

func (t ModuleType) String() string {
	switch t {
	case ModuleTypeOpaque:
		return "opaque"
	case ModuleTypeMultisig:
		return "multisig"
	case ModuleTypeRouting:
		return "routing"
	case ModuleTypeAggregation:
		return "aggregation"
	case ModuleTypeGasOracleHook:
		return "gas-oracle-hook"
	case ModuleTypePausable:
		return "pausable"
	case ModuleTypeTrustedRelayer:
		return "trusted-relayer"
	case ModuleTypeNoop:
		return "noop"
	default:
		return "unknown"
	}
}

// Config is the desired configuration of a single module: either an opaque
// reference to an externally managed instance, or one of the structured
// variants below. Configs form acyclic trees; Routing and Aggregation
// configs nest further Configs.
type Config interface {
	// Type returns the module type tag of this configuration.
	Type() ModuleType
}

// OpaqueReference is a bare instance identifier for a module whose
// configuration is managed outside this engine. The engine never descends
// into it; it is resolved by address alone.
type OpaqueReference struct {
	Address Identifier
}

func (OpaqueReference) Type() ModuleType { return ModuleTypeOpaque }

// MultisigConfig describes a static validator set with a signing threshold.
// Instances are content-addressed: the deployed address is a pure function
// of (sorted validators, threshold).
type MultisigConfig struct {
	Validators []Identifier
	Threshold  uint64
}

func (MultisigConfig) Type() ModuleType { return ModuleTypeMultisig }

// RoutingConfig describes an owned module that dispatches per remote
// endpoint to a nested sub-module.
type RoutingConfig struct {
	Owner  Identifier
	Routes map[EndpointID]Config
}

func (RoutingConfig) Type() ModuleType { return ModuleTypeRouting }

// AggregationConfig describes a static threshold over an ordered list of
// member modules. Like Multisig, instances are content-addressed over the
// resolved member addresses and the threshold.
type AggregationConfig struct {
	Threshold uint64
	Members   []Config
}

func (AggregationConfig) Type() ModuleType { return ModuleTypeAggregation }

// GasParams are the per-endpoint gas oracle parameters of a gas oracle hook.
type GasParams struct {
	ExchangeRate *big.Int
	GasPrice     *big.Int
	Overhead     uint64
}

// Equal compares two parameter sets by value.
func (p GasParams) Equal(other GasParams) bool {
	return bigEqual(p.ExchangeRate, other.ExchangeRate) &&
		bigEqual(p.GasPrice, other.GasPrice) &&
		p.Overhead == other.Overhead
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}

// GasOracleHookConfig describes an owned hook holding gas oracle parameters
// for a set of remote endpoints.
type GasOracleHookConfig struct {
	Owner       Identifier
	PerEndpoint map[EndpointID]GasParams
}

func (GasOracleHookConfig) Type() ModuleType { return ModuleTypeGasOracleHook }

// PausableConfig describes an owned module whose only mutable state is its
// owner (pause/unpause is an operational action outside reconciliation).
type PausableConfig struct {
	Owner Identifier
}

func (PausableConfig) Type() ModuleType { return ModuleTypePausable }

// TrustedRelayerConfig designates a single relayer identity. Static: a
// change of relayer is a replacement, not a mutation.
type TrustedRelayerConfig struct {
	Relayer Identifier
}

func (TrustedRelayerConfig) Type() ModuleType { return ModuleTypeTrustedRelayer }

// NoopConfig is a module that accepts everything. It has no parameters.
type NoopConfig struct{}

func (NoopConfig) Type() ModuleType { return ModuleTypeNoop }

// ConfigOwner returns the on-chain authority of an owned config variant.
// The second return is false for variants that carry no owner.
func ConfigOwner(c Config) (Identifier, bool) {
	switch cfg := c.(type) {
	case RoutingConfig:
		return cfg.Owner, true
	case GasOracleHookConfig:
		return cfg.Owner, true
	case PausableConfig:
		return cfg.Owner, true
	default:
		return ZeroIdentifier, false
	}
}

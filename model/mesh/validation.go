package mesh

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// maxConfigDepth bounds recursion while validating nested configuration
// trees. Configs are required to be acyclic; legitimate trees are shallow
// (routing over aggregations over leaves), so hitting this bound means the
// input aliases itself.
const maxConfigDepth = 32

// ValidateConfig checks a desired configuration tree for structural
// soundness before any collaborator interaction:
//   - Multisig: 1 <= threshold <= |validators|
//   - Aggregation: 1 <= threshold <= |members|
//   - Routing: no route may target the local endpoint itself
//   - nesting depth is bounded (configs must be acyclic trees)
//
// local is the endpoint the module under reconciliation lives on. All
// violations found are aggregated into a single ValidationError.
func ValidateConfig(local EndpointID, c Config) error {
	var result *multierror.Error
	validateConfig(local, c, 0, &result)
	if err := result.ErrorOrNil(); err != nil {
		return NewValidationErrorf("invalid module config: %w", err)
	}
	return nil
}

func validateConfig(local EndpointID, c Config, depth int, result **multierror.Error) {
	if c == nil {
		*result = multierror.Append(*result, fmt.Errorf("nil config at depth %d", depth))
		return
	}
	if depth > maxConfigDepth {
		*result = multierror.Append(*result,
			fmt.Errorf("config tree exceeds maximum depth %d, tree must be acyclic", maxConfigDepth))
		return
	}
	switch cfg := c.(type) {
	case OpaqueReference:
		if cfg.Address.IsZero() {
			*result = multierror.Append(*result, fmt.Errorf("opaque reference has zero address"))
		}
	case MultisigConfig:
		if cfg.Threshold == 0 || cfg.Threshold > uint64(len(cfg.Validators)) {
			*result = multierror.Append(*result,
				fmt.Errorf("multisig threshold %d outside [1, %d validators]", cfg.Threshold, len(cfg.Validators)))
		}
	case AggregationConfig:
		if cfg.Threshold == 0 || cfg.Threshold > uint64(len(cfg.Members)) {
			*result = multierror.Append(*result,
				fmt.Errorf("aggregation threshold %d outside [1, %d members]", cfg.Threshold, len(cfg.Members)))
		}
		for _, member := range cfg.Members {
			validateConfig(local, member, depth+1, result)
		}
	case RoutingConfig:
		if _, selfRoute := cfg.Routes[local]; selfRoute && local != "" {
			*result = multierror.Append(*result,
				fmt.Errorf("routing table contains self-referential route to local endpoint %s", local))
		}
		for _, endpoint := range SortedEndpoints(cfg.Routes) {
			validateConfig(local, cfg.Routes[endpoint], depth+1, result)
		}
	case GasOracleHookConfig, PausableConfig, TrustedRelayerConfig, NoopConfig:
		// no structural invariants beyond the shape itself
	case *DerivedConfig:
		*result = multierror.Append(*result,
			fmt.Errorf("derived config is not a valid desired config"))
	default:
		*result = multierror.Append(*result, fmt.Errorf("unknown config variant %T", c))
	}
}

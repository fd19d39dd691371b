package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crossmesh/crossmesh/model/mesh"
	"github.com/crossmesh/crossmesh/module"
)

// Status is the reconciliation outcome of the most recent Update call.
// Per call, the state machine moves Uninitialized → Deployed →
// {Unchanged | Redeployed | Patched}.
type Status int

const (
	// StatusUninitialized means no instance exists yet.
	StatusUninitialized Status = iota
	// StatusDeployed means the last Update performed the initial deployment.
	StatusDeployed
	// StatusUnchanged means actual and desired configuration already agree.
	StatusUnchanged
	// StatusRedeployed means the instance was replaced wholesale.
	StatusRedeployed
	// StatusPatched means the last Update produced in-place mutations.
	StatusPatched
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusDeployed:
		return "deployed"
	case StatusUnchanged:
		return "unchanged"
	case StatusRedeployed:
		return "redeployed"
	case StatusPatched:
		return "patched"
	default:
		return "unknown"
	}
}

// ModuleReconciler converges one deployed module instance towards a desired
// configuration. It owns the read/diff/plan cycle: deployments happen
// eagerly through the Deployer, while in-place changes are returned as an
// ordered MutationPlan for the caller to encode and submit. The reconciler
// never talks to a transport layer itself and never retries; the caller is
// expected to re-invoke Update after submitting a plan to confirm
// convergence.
//
// A ModuleReconciler is synchronous and not safe for concurrent use.
// Reconcilers for different module instances are independent and may run
// concurrently with each other.
type ModuleReconciler struct {
	log      zerolog.Logger
	local    mesh.EndpointID
	reader   module.ConfigReader
	registry module.Registry
	deployer module.Deployer
	instance *mesh.Instance
	status   Status
}

// NewModuleReconciler creates a reconciler for a module living on the local
// endpoint. existing is the currently deployed instance, or nil if the
// module has never been deployed.
func NewModuleReconciler(
	log zerolog.Logger,
	local mesh.EndpointID,
	reader module.ConfigReader,
	registry module.Registry,
	deployer module.Deployer,
	existing *mesh.Instance,
) *ModuleReconciler {
	status := StatusUninitialized
	if existing != nil {
		status = StatusDeployed
	}
	return &ModuleReconciler{
		log: log.With().
			Str("component", "module_reconciler").
			Str("endpoint", string(local)).
			Logger(),
		local:    local,
		reader:   reader,
		registry: registry,
		deployer: deployer,
		instance: existing,
		status:   status,
	}
}

// Instance returns the currently tracked instance, or nil before the first
// deployment.
func (r *ModuleReconciler) Instance() *mesh.Instance {
	return r.instance
}

// Status returns the outcome of the most recent Update call.
func (r *ModuleReconciler) Status() Status {
	return r.status
}

// Update converges the instance towards the desired configuration and
// returns the ordered mutation plan the caller must submit. An empty plan
// means no submission is needed: either nothing changed, or the convergence
// was achieved eagerly by (re)deployment.
//
// Ordering guarantees of a returned plan: every SetRoute precedes every
// RemoveRoute (a route being replaced must never be transiently absent),
// and TransferOwnership, when present, is last (the previous owner retains
// the authority to retry if an earlier step of the plan fails partway).
//
// Expected errors during normal operations:
//   - ValidationError if the desired config is malformed
//   - UnsupportedTransitionError if a structured instance would be narrowed
//     to an opaque reference
//   - ReadFailureError if actual state could not be fetched
func (r *ModuleReconciler) Update(ctx context.Context, desired mesh.Config) (mesh.MutationPlan, error) {
	err := mesh.ValidateConfig(r.local, desired)
	if err != nil {
		return nil, err
	}

	// initial deployment: the deploy is the side effect, nothing to submit
	if r.instance == nil {
		instance, err := r.deployer.Deploy(ctx, desired)
		if err != nil {
			return nil, fmt.Errorf("could not perform initial deployment: %w", err)
		}
		r.instance = &instance
		r.status = StatusDeployed
		r.log.Info().
			Str("address", instance.Address.String()).
			Str("type", instance.Type.String()).
			Msg("deployed new module instance")
		return mesh.MutationPlan{}, nil
	}

	actual, err := r.reader.Read(ctx, r.instance.Address)
	if err != nil {
		return nil, fmt.Errorf("could not read actual config of instance %s: %w", r.instance.Address, err)
	}

	// a desired opaque reference is converged exactly when the tracked
	// instance already is that address; anything else would narrow a
	// structured module to an externally managed reference
	if opaque, ok := desired.(mesh.OpaqueReference); ok {
		if r.instance.Address == opaque.Address {
			r.status = StatusUnchanged
			return mesh.MutationPlan{}, nil
		}
		return nil, NewUnsupportedTransitionErrorf(
			"cannot narrow structured instance %s to opaque reference %s", r.instance.Address, opaque.Address)
	}

	actualID, err := normalizedID(actual)
	if err != nil {
		return nil, fmt.Errorf("could not normalize actual config: %w", err)
	}
	desiredID, err := normalizedID(desired)
	if err != nil {
		return nil, fmt.Errorf("could not normalize desired config: %w", err)
	}
	if actualID == desiredID {
		r.status = StatusUnchanged
		return mesh.MutationPlan{}, nil
	}

	// structural change: replace the instance wholesale and abandon the old
	// one; the swap itself is the convergence, not a queued mutation
	if actual.Type() != desired.Type() || actual.IsOpaque() || !IsMutable(desired.Type()) {
		instance, err := r.deployer.Deploy(ctx, desired)
		if err != nil {
			return nil, fmt.Errorf("could not redeploy module: %w", err)
		}
		r.log.Info().
			Str("old_address", r.instance.Address.String()).
			Str("new_address", instance.Address.String()).
			Str("type", instance.Type.String()).
			Msg("redeployed module instance")
		r.instance = &instance
		r.status = StatusRedeployed
		return mesh.MutationPlan{}, nil
	}

	plan, err := r.patch(ctx, actual, desired)
	if err != nil {
		return nil, err
	}
	r.status = StatusPatched
	r.log.Info().
		Int("mutations", len(plan)).
		Str("plan", plan.String()).
		Msg("assembled mutation plan")
	return plan, nil
}

// patch assembles the in-place mutation plan for two configs of the same
// mutable type.
func (r *ModuleReconciler) patch(ctx context.Context, actual *mesh.DerivedConfig, desired mesh.Config) (mesh.MutationPlan, error) {
	plan := mesh.MutationPlan{}

	switch desiredCfg := desired.(type) {
	case mesh.RoutingConfig:
		actualCfg, ok := actual.Config.(mesh.RoutingConfig)
		if !ok {
			return nil, fmt.Errorf("actual config has unexpected shape %T for routing instance", actual.Config)
		}
		delta, err := RoutingDelta(r.log, r.registry, actualCfg.Routes, desiredCfg.Routes)
		if err != nil {
			return nil, err
		}
		// all enrolls strictly before all unenrolls
		for _, endpoint := range delta.ToEnroll {
			instance, err := r.deployer.Deploy(ctx, desiredCfg.Routes[endpoint])
			if err != nil {
				return nil, fmt.Errorf("could not resolve route for endpoint %s: %w", endpoint, err)
			}
			plan = append(plan, mesh.SetRoute{Endpoint: endpoint, Instance: instance.Address})
		}
		for _, endpoint := range delta.ToUnenroll {
			plan = append(plan, mesh.RemoveRoute{Endpoint: endpoint})
		}

	case mesh.GasOracleHookConfig:
		actualCfg, ok := actual.Config.(mesh.GasOracleHookConfig)
		if !ok {
			return nil, fmt.Errorf("actual config has unexpected shape %T for gas oracle hook instance", actual.Config)
		}
		for _, endpoint := range mesh.SortedEndpoints(desiredCfg.PerEndpoint) {
			if !r.registry.IsKnown(endpoint) {
				r.log.Warn().
					Str("endpoint", string(endpoint)).
					Msg("skipping gas params for endpoint unknown to local registry")
				continue
			}
			desiredParams := desiredCfg.PerEndpoint[endpoint]
			actualParams, exists := actualCfg.PerEndpoint[endpoint]
			if !exists || !actualParams.Equal(desiredParams) {
				plan = append(plan, mesh.SetGasParams{Endpoint: endpoint, Params: desiredParams})
			}
		}

	case mesh.PausableConfig:
		// no structural sub-mutations; only ownership below

	default:
		return nil, fmt.Errorf("no patch strategy for mutable module type %s", desired.Type())
	}

	// ownership transfer always comes after all structural changes
	actualOwner, _ := mesh.ConfigOwner(actual.Config)
	desiredOwner, owned := mesh.ConfigOwner(desired)
	if owned && actualOwner != desiredOwner {
		plan = append(plan, mesh.TransferOwnership{NewOwner: desiredOwner})
	}
	return plan, nil
}
